package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/core/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindQuotes(ctx context.Context, filter portsrepo.DocumentListFilter) ([]domain.Quote, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) UpdateQuoteStatus(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	args := m.Called(ctx, quoteID)
	return args.Error(0)
}

// --- Mock SalesOrderRepository ---
type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error) {
	args := m.Called(ctx, salesOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindSalesOrders(ctx context.Context, filter portsrepo.DocumentListFilter) ([]domain.SalesOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) SaveSalesOrder(ctx context.Context, order *domain.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) UpdateSalesOrder(ctx context.Context, order domain.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomers(ctx context.Context, nameFilter string, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, nameFilter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeactivateCustomer(ctx context.Context, customerID string, userID string, now time.Time) error {
	args := m.Called(ctx, customerID, userID, now)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProducts(ctx context.Context, nameFilter string, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, nameFilter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeactivateProduct(ctx context.Context, productID string, userID string, now time.Time) error {
	args := m.Called(ctx, productID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type QuoteServiceTestSuite struct {
	suite.Suite
	mockQuoteRepo      *MockQuoteRepository
	mockSalesOrderRepo *MockSalesOrderRepository
	mockCustomerRepo   *MockCustomerRepository
	mockProductRepo    *MockProductRepository
	service            portssvc.QuoteSvcFacade
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockQuoteRepo = new(MockQuoteRepository)
	suite.mockSalesOrderRepo = new(MockSalesOrderRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewQuoteService(
		suite.mockQuoteRepo,
		suite.mockSalesOrderRepo,
		suite.mockCustomerRepo,
		suite.mockProductRepo,
	)
}

func testProduct() *domain.Product {
	return &domain.Product{
		ProductID: uuid.NewString(),
		Name:      "MS Angle 50x50x5",
		HSNCode:   "7216",
		Unit:      "Kg",
		Rate:      decimal.NewFromInt(62),
		GSTRate:   decimal.NewFromInt(18),
		IsActive:  true,
	}
}

func testQuote(status domain.DocumentStatus) *domain.Quote {
	return &domain.Quote{
		QuoteID:     uuid.NewString(),
		QuoteNumber: "QT-0007/25",
		Revision:    1,
		Customer: domain.CustomerSnapshot{
			CustomerID:   uuid.NewString(),
			CustomerName: "Apex Fabricators",
		},
		Items: []domain.LineItem{{
			LineItemID:  uuid.NewString(),
			ProductID:   uuid.NewString(),
			ProductName: "MS Angle 50x50x5",
			Quantity:    decimal.NewFromInt(100),
			Rate:        decimal.NewFromInt(62),
			GSTRate:     decimal.NewFromInt(18),
			Amount:      decimal.NewFromInt(6200),
			TaxAmount:   decimal.NewFromInt(1116),
		}},
		Totals: domain.DocumentTotals{
			Subtotal:   decimal.NewFromInt(6200),
			TotalTax:   decimal.NewFromInt(1116),
			GrandTotal: decimal.NewFromInt(7316),
		},
		Status:    status,
		QuoteDate: time.Now(),
	}
}

// --- CreateQuote Tests ---

func (suite *QuoteServiceTestSuite) TestCreateQuote_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	product := testProduct()
	customer := &domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Apex Fabricators",
		IsActive:   true,
	}
	req := dto.CreateQuoteRequest{
		CustomerID: customer.CustomerID,
		QuoteDate:  time.Now(),
		Items: []dto.LineItemRequest{{
			ProductID: product.ProductID,
			Quantity:  decimal.NewFromInt(100),
		}},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customer.CustomerID).Return(customer, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	// The quote reaches the repository without a number; the repository
	// reserves one inside the insert transaction.
	suite.mockQuoteRepo.On("SaveQuote", ctx, mock.MatchedBy(func(q *domain.Quote) bool {
		return q.QuoteNumber == "" &&
			q.Revision == 1 &&
			q.Status == domain.StatusDraft &&
			len(q.Items) == 1 &&
			q.Items[0].Rate.Equal(product.Rate) && // rate defaulted from the product
			q.Totals.Subtotal.Equal(decimal.NewFromInt(6200)) &&
			q.Totals.GrandTotal.Equal(decimal.NewFromInt(7316))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Quote).QuoteNumber = "QT-0001/25"
	}).Return(nil).Once()

	quote, err := suite.service.CreateQuote(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	suite.Equal("QT-0001/25", quote.QuoteNumber)
	suite.Equal(domain.StatusDraft, quote.Status)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_InactiveCustomerRejected() {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: uuid.NewString(), IsActive: false}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customer.CustomerID).Return(customer, nil).Once()

	quote, err := suite.service.CreateQuote(ctx, dto.CreateQuoteRequest{
		CustomerID: customer.CustomerID,
		QuoteDate:  time.Now(),
		Items:      []dto.LineItemRequest{{ProductID: uuid.NewString(), Quantity: decimal.NewFromInt(1)}},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(quote)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "SaveQuote", mock.Anything, mock.Anything)
}

// --- Status Tests ---

func (suite *QuoteServiceTestSuite) TestChangeQuoteStatus_InvalidTransition() {
	ctx := context.Background()
	quote := testQuote(domain.StatusDraft)

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quote.QuoteID).Return(quote, nil).Once()

	updated, err := suite.service.ChangeQuoteStatus(ctx, quote.QuoteID, domain.StatusApproved, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "UpdateQuoteStatus", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestChangeQuoteStatus_DraftToSent() {
	ctx := context.Background()
	quote := testQuote(domain.StatusDraft)

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quote.QuoteID).Return(quote, nil).Once()
	suite.mockQuoteRepo.On("UpdateQuoteStatus", ctx, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Status == domain.StatusSent
	})).Return(nil).Once()

	updated, err := suite.service.ChangeQuoteStatus(ctx, quote.QuoteID, domain.StatusSent, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSent, updated.Status)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

// --- DeleteQuote Tests ---

func (suite *QuoteServiceTestSuite) TestDeleteQuote_DraftOnly() {
	ctx := context.Background()
	quote := testQuote(domain.StatusSent)

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quote.QuoteID).Return(quote, nil).Once()

	err := suite.service.DeleteQuote(ctx, quote.QuoteID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "DeleteQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestDeleteQuote_Success() {
	ctx := context.Background()
	quote := testQuote(domain.StatusDraft)

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quote.QuoteID).Return(quote, nil).Once()
	suite.mockQuoteRepo.On("DeleteQuote", ctx, quote.QuoteID).Return(nil).Once()

	err := suite.service.DeleteQuote(ctx, quote.QuoteID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

// --- ReviseQuote Tests ---

func (suite *QuoteServiceTestSuite) TestReviseQuote_SupersedesAndBumpsRevision() {
	ctx := context.Background()
	quote := testQuote(domain.StatusSent)

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quote.QuoteID).Return(quote, nil).Once()
	// Revisions carry the number forward, so no fresh number is reserved.
	suite.mockQuoteRepo.On("SaveQuote", ctx, mock.MatchedBy(func(q *domain.Quote) bool {
		return q.QuoteID != quote.QuoteID &&
			q.QuoteNumber == quote.QuoteNumber &&
			q.Revision == 2 &&
			q.Status == domain.StatusDraft
	})).Return(nil).Once()
	suite.mockQuoteRepo.On("UpdateQuoteStatus", ctx, mock.MatchedBy(func(q domain.Quote) bool {
		return q.QuoteID == quote.QuoteID &&
			q.Status == domain.StatusSuperseded &&
			q.SupersededByQuote != ""
	})).Return(nil).Once()

	revision, err := suite.service.ReviseQuote(ctx, quote.QuoteID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(2, revision.Revision)
	suite.Equal(quote.QuoteNumber, revision.QuoteNumber)
	suite.Equal(domain.StatusDraft, revision.Status)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestReviseQuote_DraftRejected() {
	ctx := context.Background()
	quote := testQuote(domain.StatusDraft)

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quote.QuoteID).Return(quote, nil).Once()

	revision, err := suite.service.ReviseQuote(ctx, quote.QuoteID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(revision)
}

// --- ConvertQuoteToSalesOrder Tests ---

func (suite *QuoteServiceTestSuite) TestConvertQuote_Success() {
	ctx := context.Background()
	quote := testQuote(domain.StatusApproved)

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quote.QuoteID).Return(quote, nil).Once()
	suite.mockSalesOrderRepo.On("SaveSalesOrder", ctx, mock.MatchedBy(func(so *domain.SalesOrder) bool {
		return so.OrderNumber == "" &&
			so.SourceQuoteID == quote.QuoteID &&
			so.ClientPONum == "PO/1234" &&
			so.Status == domain.StatusApproved &&
			len(so.Items) == 1 &&
			so.Items[0].DeliveredQuantity.IsZero() &&
			so.Totals.GrandTotal.Equal(quote.Totals.GrandTotal)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.SalesOrder).OrderNumber = "SO-0001/25"
	}).Return(nil).Once()
	suite.mockQuoteRepo.On("UpdateQuoteStatus", ctx, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Status == domain.StatusClosed && q.LinkedSalesOrder != ""
	})).Return(nil).Once()

	order, err := suite.service.ConvertQuoteToSalesOrder(ctx, quote.QuoteID, dto.ConvertQuoteRequest{
		ClientPONumber: "PO/1234",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal("SO-0001/25", order.OrderNumber)
	suite.Equal(quote.QuoteID, order.SourceQuoteID)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
	suite.mockSalesOrderRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestConvertQuote_NotApprovedRejected() {
	ctx := context.Background()
	quote := testQuote(domain.StatusSent)

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quote.QuoteID).Return(quote, nil).Once()

	order, err := suite.service.ConvertQuoteToSalesOrder(ctx, quote.QuoteID, dto.ConvertQuoteRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(order)
	suite.mockSalesOrderRepo.AssertNotCalled(suite.T(), "SaveSalesOrder", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestConvertQuote_AlreadyConvertedRejected() {
	ctx := context.Background()
	quote := testQuote(domain.StatusApproved)
	quote.LinkedSalesOrder = uuid.NewString()

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quote.QuoteID).Return(quote, nil).Once()

	order, err := suite.service.ConvertQuoteToSalesOrder(ctx, quote.QuoteID, dto.ConvertQuoteRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(order)
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
