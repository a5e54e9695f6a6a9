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

// --- Mock DeliveryOrderRepository ---
type MockDeliveryOrderRepository struct {
	mock.Mock
}

func (m *MockDeliveryOrderRepository) FindDeliveryOrderByID(ctx context.Context, deliveryOrderID string) (*domain.DeliveryOrder, error) {
	args := m.Called(ctx, deliveryOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) FindDeliveryOrders(ctx context.Context, filter portsrepo.DocumentListFilter) ([]domain.DeliveryOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) FindDeliveryOrdersBySalesOrder(ctx context.Context, salesOrderID string) ([]domain.DeliveryOrder, error) {
	args := m.Called(ctx, salesOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) SaveDeliveryOrder(ctx context.Context, do *domain.DeliveryOrder) error {
	args := m.Called(ctx, do)
	return args.Error(0)
}

func (m *MockDeliveryOrderRepository) UpdateDeliveryOrderStatus(ctx context.Context, do domain.DeliveryOrder) error {
	args := m.Called(ctx, do)
	return args.Error(0)
}

// --- Test Suite ---
type DeliveryOrderServiceTestSuite struct {
	suite.Suite
	mockDORepo         *MockDeliveryOrderRepository
	mockSalesOrderRepo *MockSalesOrderRepository
	service            portssvc.DeliveryOrderSvcFacade
}

func (suite *DeliveryOrderServiceTestSuite) SetupTest() {
	suite.mockDORepo = new(MockDeliveryOrderRepository)
	suite.mockSalesOrderRepo = new(MockSalesOrderRepository)
	suite.service = services.NewDeliveryOrderService(
		suite.mockDORepo,
		suite.mockSalesOrderRepo,
	)
}

// openSalesOrder returns an APPROVED order with a single line of quantity 10,
// of which `delivered` has already shipped.
func openSalesOrder(delivered int64) *domain.SalesOrder {
	status := domain.StatusApproved
	if delivered > 0 {
		status = domain.StatusPartial
	}
	return &domain.SalesOrder{
		SalesOrderID: uuid.NewString(),
		OrderNumber:  "SO-0003/25",
		Customer: domain.CustomerSnapshot{
			CustomerID:   uuid.NewString(),
			CustomerName: "Apex Fabricators",
			Address:      "Plot 12, MIDC, Pune, Maharashtra 411019",
		},
		Items: []domain.LineItem{{
			LineItemID:        uuid.NewString(),
			ProductName:       "MS Angle 50x50x5",
			HSNCode:           "7216",
			Quantity:          decimal.NewFromInt(10),
			Unit:              "Kg",
			DeliveredQuantity: decimal.NewFromInt(delivered),
		}},
		Status: status,
	}
}

// --- CreateDeliveryOrder Tests ---

func (suite *DeliveryOrderServiceTestSuite) TestCreateDeliveryOrder_PartialDelivery() {
	ctx := context.Background()
	order := openSalesOrder(0)
	req := dto.CreateDeliveryOrderRequest{
		SalesOrderID: order.SalesOrderID,
		DeliveryDate: time.Now(),
		Items: []dto.DeliveryItemRequest{{
			SourceLineID: order.Items[0].LineItemID,
			Quantity:     decimal.NewFromInt(4),
		}},
	}

	suite.mockSalesOrderRepo.On("FindSalesOrderByID", ctx, order.SalesOrderID).Return(order, nil).Once()
	// The DO number is reserved by the repository inside the insert transaction.
	suite.mockDORepo.On("SaveDeliveryOrder", ctx, mock.MatchedBy(func(do *domain.DeliveryOrder) bool {
		return do.DONumber == "" &&
			do.Status == domain.StatusDraft &&
			do.ShippingAddress == order.Customer.Address && // defaulted
			len(do.Items) == 1 &&
			do.Items[0].Quantity.Equal(decimal.NewFromInt(4))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.DeliveryOrder).DONumber = "DO-0001/25"
	}).Return(nil).Once()
	suite.mockSalesOrderRepo.On("UpdateSalesOrder", ctx, mock.MatchedBy(func(so domain.SalesOrder) bool {
		return so.Status == domain.StatusPartial &&
			so.Items[0].DeliveredQuantity.Equal(decimal.NewFromInt(4))
	})).Return(nil).Once()

	do, err := suite.service.CreateDeliveryOrder(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(do)
	suite.Equal("DO-0001/25", do.DONumber)
	suite.mockDORepo.AssertExpectations(suite.T())
	suite.mockSalesOrderRepo.AssertExpectations(suite.T())
}

func (suite *DeliveryOrderServiceTestSuite) TestCreateDeliveryOrder_FinalDeliveryClosesOrder() {
	ctx := context.Background()
	order := openSalesOrder(6)
	req := dto.CreateDeliveryOrderRequest{
		SalesOrderID: order.SalesOrderID,
		DeliveryDate: time.Now(),
		Items: []dto.DeliveryItemRequest{{
			SourceLineID: order.Items[0].LineItemID,
			Quantity:     decimal.NewFromInt(4),
		}},
	}

	suite.mockSalesOrderRepo.On("FindSalesOrderByID", ctx, order.SalesOrderID).Return(order, nil).Once()
	suite.mockDORepo.On("SaveDeliveryOrder", ctx, mock.AnythingOfType("*domain.DeliveryOrder")).Return(nil).Once()
	suite.mockSalesOrderRepo.On("UpdateSalesOrder", ctx, mock.MatchedBy(func(so domain.SalesOrder) bool {
		return so.Status == domain.StatusClosed &&
			so.Items[0].DeliveredQuantity.Equal(decimal.NewFromInt(10))
	})).Return(nil).Once()

	do, err := suite.service.CreateDeliveryOrder(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(do)
	suite.mockSalesOrderRepo.AssertExpectations(suite.T())
}

func (suite *DeliveryOrderServiceTestSuite) TestCreateDeliveryOrder_OverDeliveryRejected() {
	ctx := context.Background()
	order := openSalesOrder(6)
	req := dto.CreateDeliveryOrderRequest{
		SalesOrderID: order.SalesOrderID,
		DeliveryDate: time.Now(),
		Items: []dto.DeliveryItemRequest{{
			SourceLineID: order.Items[0].LineItemID,
			Quantity:     decimal.NewFromInt(5), // pending is only 4
		}},
	}

	suite.mockSalesOrderRepo.On("FindSalesOrderByID", ctx, order.SalesOrderID).Return(order, nil).Once()

	do, err := suite.service.CreateDeliveryOrder(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(do)
	suite.mockDORepo.AssertNotCalled(suite.T(), "SaveDeliveryOrder", mock.Anything, mock.Anything)
}

func (suite *DeliveryOrderServiceTestSuite) TestCreateDeliveryOrder_UnknownLineRejected() {
	ctx := context.Background()
	order := openSalesOrder(0)
	req := dto.CreateDeliveryOrderRequest{
		SalesOrderID: order.SalesOrderID,
		DeliveryDate: time.Now(),
		Items: []dto.DeliveryItemRequest{{
			SourceLineID: uuid.NewString(),
			Quantity:     decimal.NewFromInt(1),
		}},
	}

	suite.mockSalesOrderRepo.On("FindSalesOrderByID", ctx, order.SalesOrderID).Return(order, nil).Once()

	do, err := suite.service.CreateDeliveryOrder(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(do)
}

func (suite *DeliveryOrderServiceTestSuite) TestCreateDeliveryOrder_ClosedOrderRejected() {
	ctx := context.Background()
	order := openSalesOrder(0)
	order.Status = domain.StatusClosed

	suite.mockSalesOrderRepo.On("FindSalesOrderByID", ctx, order.SalesOrderID).Return(order, nil).Once()

	do, err := suite.service.CreateDeliveryOrder(ctx, dto.CreateDeliveryOrderRequest{
		SalesOrderID: order.SalesOrderID,
		DeliveryDate: time.Now(),
		Items: []dto.DeliveryItemRequest{{
			SourceLineID: order.Items[0].LineItemID,
			Quantity:     decimal.NewFromInt(1),
		}},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(do)
}

// --- Dispatch Tests ---

func (suite *DeliveryOrderServiceTestSuite) TestDispatchDeliveryOrder_Success() {
	ctx := context.Background()
	do := &domain.DeliveryOrder{
		DeliveryOrderID: uuid.NewString(),
		DONumber:        "DO-0001/25",
		Status:          domain.StatusDraft,
	}

	suite.mockDORepo.On("FindDeliveryOrderByID", ctx, do.DeliveryOrderID).Return(do, nil).Once()
	suite.mockDORepo.On("UpdateDeliveryOrderStatus", ctx, mock.MatchedBy(func(d domain.DeliveryOrder) bool {
		return d.Status == domain.StatusDispatched
	})).Return(nil).Once()

	updated, err := suite.service.DispatchDeliveryOrder(ctx, do.DeliveryOrderID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDispatched, updated.Status)
	suite.mockDORepo.AssertExpectations(suite.T())
}

func (suite *DeliveryOrderServiceTestSuite) TestDispatchDeliveryOrder_AlreadyDispatched() {
	ctx := context.Background()
	do := &domain.DeliveryOrder{
		DeliveryOrderID: uuid.NewString(),
		Status:          domain.StatusDispatched,
	}

	suite.mockDORepo.On("FindDeliveryOrderByID", ctx, do.DeliveryOrderID).Return(do, nil).Once()

	updated, err := suite.service.DispatchDeliveryOrder(ctx, do.DeliveryOrderID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
}

func TestDeliveryOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryOrderServiceTestSuite))
}
