package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/core/services"
)

// --- Test Suite ---
type ExportServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo   *MockCustomerRepository
	mockProductRepo    *MockProductRepository
	mockQuoteRepo      *MockQuoteRepository
	mockSalesOrderRepo *MockSalesOrderRepository
	mockPayrollRepo    *MockPayrollRepository
	service            portssvc.ExportSvc
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockQuoteRepo = new(MockQuoteRepository)
	suite.mockSalesOrderRepo = new(MockSalesOrderRepository)
	suite.mockPayrollRepo = new(MockPayrollRepository)
	// Imports go through the real product/customer services so upsert
	// semantics stay honest.
	productSvc := services.NewProductService(suite.mockProductRepo)
	customerSvc := services.NewCustomerService(suite.mockCustomerRepo)
	suite.service = services.NewExportService(
		suite.mockCustomerRepo,
		suite.mockProductRepo,
		suite.mockQuoteRepo,
		suite.mockSalesOrderRepo,
		suite.mockPayrollRepo,
		productSvc,
		customerSvc,
	)
}

// --- Export Tests ---

func (suite *ExportServiceTestSuite) TestExportProductsCSV() {
	ctx := context.Background()
	products := []domain.Product{
		{
			Name:     "MS Angle 50x50x5",
			HSNCode:  "7216",
			Unit:     "Kg",
			Rate:     decimal.NewFromInt(62),
			GSTRate:  decimal.NewFromInt(18),
			IsActive: true,
		},
	}

	suite.mockProductRepo.On("FindProducts", ctx, "", mock.AnythingOfType("int"), 0).Return(products, nil).Once()

	data, err := suite.service.ExportProductsCSV(ctx)

	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	suite.Require().Len(lines, 2)
	suite.Equal("name,description,hsn_code,unit,rate,gst_rate,is_active", lines[0])
	suite.Contains(lines[1], "MS Angle 50x50x5")
	suite.Contains(lines[1], "62")
	suite.Contains(lines[1], "true")
}

func (suite *ExportServiceTestSuite) TestExportCustomersCSV_PrimaryContactAndBillingAddress() {
	ctx := context.Background()
	customers := []domain.Customer{{
		CustomerID: uuid.NewString(),
		Name:       "Apex Fabricators",
		GSTIN:      "27AABCU9603R1ZM",
		Contacts: []domain.Contact{
			{Name: "Suresh", Email: "suresh@apex.example", IsPrimary: true},
			{Name: "Meena"},
		},
		Addresses: []domain.Address{
			{Kind: domain.AddressBilling, Line1: "Plot 12", City: "Pune", IsDefault: true},
		},
		IsActive: true,
	}}

	suite.mockCustomerRepo.On("FindCustomers", ctx, "", mock.AnythingOfType("int"), 0).Return(customers, nil).Once()

	data, err := suite.service.ExportCustomersCSV(ctx)

	suite.Require().NoError(err)
	out := string(data)
	suite.Contains(out, "Suresh")
	suite.Contains(out, "Plot 12")
	suite.NotContains(out, "Meena") // only the primary contact is exported
}

// --- Import Tests ---

func (suite *ExportServiceTestSuite) TestImportProductsCSV_CreatesAndUpdates() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.Product{
		ProductID: uuid.NewString(),
		Name:      "MS Angle 50x50x5",
		Unit:      "Kg",
		Rate:      decimal.NewFromInt(60),
		IsActive:  true,
	}
	csvData := []byte("name,description,hsn_code,unit,rate,gst_rate\n" +
		"MS Angle 50x50x5,Structural angle,7216,Kg,62,18\n" +
		"MS Flat 40x6,Structural flat,7216,Kg,58,18\n")

	// Row 1 matches an existing product and updates it.
	suite.mockProductRepo.On("FindProductByName", ctx, "MS Angle 50x50x5").Return(existing, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ProductID == existing.ProductID && p.Rate.Equal(decimal.NewFromInt(62))
	})).Return(nil).Once()

	// Row 2 is new and gets created.
	suite.mockProductRepo.On("FindProductByName", ctx, "MS Flat 40x6").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "MS Flat 40x6" && p.Rate.Equal(decimal.NewFromInt(58)) && p.IsActive
	})).Return(nil).Once()

	summary, err := suite.service.ImportProductsCSV(ctx, csvData, userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Created)
	suite.Equal(1, summary.Updated)
	suite.Empty(summary.Errors)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestImportCustomersCSV_CreatesWithPrimaryContact() {
	ctx := context.Background()
	csvData := []byte("name,gstin,primary_contact,primary_email\n" +
		"Apex Fabricators,27AABCU9603R1ZM,Suresh,suresh@apex.example\n")

	suite.mockCustomerRepo.On("FindCustomers", ctx, "", mock.AnythingOfType("int"), 0).
		Return([]domain.Customer{}, nil).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Apex Fabricators" &&
			len(c.Contacts) == 1 && c.Contacts[0].IsPrimary && c.Contacts[0].Name == "Suresh"
	})).Return(nil).Once()

	summary, err := suite.service.ImportCustomersCSV(ctx, csvData, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(1, summary.Created)
	suite.Zero(summary.Updated)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestImportCustomersCSV_UpdatesExistingByName() {
	ctx := context.Background()
	existing := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Apex Fabricators",
		GSTIN:      "27AABCU9603R1ZM",
		Contacts:   []domain.Contact{{ContactID: uuid.NewString(), Name: "Suresh", IsPrimary: true}},
		IsActive:   true,
	}
	csvData := []byte("name,gstin,primary_contact\nApex Fabricators,27AABCU9603R1ZX,Meena\n")

	suite.mockCustomerRepo.On("FindCustomers", ctx, "", mock.AnythingOfType("int"), 0).
		Return([]domain.Customer{existing}, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(&existing, nil).Once()
	suite.mockCustomerRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerID == existing.CustomerID &&
			c.GSTIN == "27AABCU9603R1ZX" &&
			len(c.Contacts) == 1 && c.Contacts[0].Name == "Meena" && c.Contacts[0].IsPrimary
	})).Return(nil).Once()

	summary, err := suite.service.ImportCustomersCSV(ctx, csvData, uuid.NewString())

	suite.Require().NoError(err)
	suite.Zero(summary.Created)
	suite.Equal(1, summary.Updated)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestImportProductsCSV_MissingColumnRejected() {
	ctx := context.Background()
	csvData := []byte("name,description\nMS Flat 40x6,whatever\n")

	summary, err := suite.service.ImportProductsCSV(ctx, csvData, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summary)
}

func (suite *ExportServiceTestSuite) TestImportProductsCSV_BadRowReportedRestApplied() {
	ctx := context.Background()
	csvData := []byte("name,unit,rate\n" +
		"MS Flat 40x6,Kg,not-a-number\n" +
		"MS Angle 50x50x5,Kg,62\n")

	// Only the valid second row reaches the product service.
	suite.mockProductRepo.On("FindProductByName", ctx, "MS Angle 50x50x5").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "MS Angle 50x50x5" && p.Rate.Equal(decimal.NewFromInt(62))
	})).Return(nil).Once()

	summary, err := suite.service.ImportProductsCSV(ctx, csvData, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(1, summary.Created)
	suite.Zero(summary.Updated)
	suite.Require().Len(summary.Errors, 1)
	suite.Contains(summary.Errors[0], "row 2")
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestImportCustomersCSV_EmptyNameReportedRestApplied() {
	ctx := context.Background()
	csvData := []byte("name,gstin\n" +
		",27AABCU9603R1ZM\n" +
		"Apex Fabricators,27AABCU9603R1ZM\n")

	suite.mockCustomerRepo.On("FindCustomers", ctx, "", mock.AnythingOfType("int"), 0).
		Return([]domain.Customer{}, nil).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Apex Fabricators"
	})).Return(nil).Once()

	summary, err := suite.service.ImportCustomersCSV(ctx, csvData, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(1, summary.Created)
	suite.Require().Len(summary.Errors, 1)
	suite.Contains(summary.Errors[0], "row 2")
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestImportProductsCSV_EmptyFileRejected() {
	ctx := context.Background()

	summary, err := suite.service.ImportProductsCSV(ctx, []byte("name,unit,rate\n"), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summary)
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
