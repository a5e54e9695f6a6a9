package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/core/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// --- Test Suite ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateCustomerRequest{
		Name:  "Apex Fabricators",
		GSTIN: "27AABCU9603R1ZM",
		Contacts: []dto.ContactRequest{
			{Name: "Suresh", Email: "suresh@apex.example", IsPrimary: true},
		},
		Addresses: []dto.AddressRequest{
			{Kind: "BILLING", Line1: "Plot 12, MIDC", City: "Pune", IsDefault: true},
		},
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == req.Name && c.IsActive && len(c.Contacts) == 1 && c.Contacts[0].IsPrimary
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.True(customer.IsActive)
	suite.NotEmpty(customer.CustomerID)
	suite.Equal(userID, customer.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

// Two contacts both claiming primary: only the first keeps the flag.
func (suite *CustomerServiceTestSuite) TestCreateCustomer_SinglePrimaryContact() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name: "Apex Fabricators",
		Contacts: []dto.ContactRequest{
			{Name: "Suresh", IsPrimary: true},
			{Name: "Meena", IsPrimary: true},
		},
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(customer.Contacts[0].IsPrimary)
	suite.False(customer.Contacts[1].IsPrimary)
}

// No contact claims primary: the first becomes primary.
func (suite *CustomerServiceTestSuite) TestCreateCustomer_FirstContactDefaultsToPrimary() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name: "Apex Fabricators",
		Contacts: []dto.ContactRequest{
			{Name: "Suresh"},
			{Name: "Meena"},
		},
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(customer.Contacts[0].IsPrimary)
	suite.False(customer.Contacts[1].IsPrimary)
}

// Two defaults of the same kind collapse to one; different kinds keep theirs.
func (suite *CustomerServiceTestSuite) TestCreateCustomer_OneDefaultAddressPerKind() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name: "Apex Fabricators",
		Addresses: []dto.AddressRequest{
			{Kind: "BILLING", Line1: "Plot 12", IsDefault: true},
			{Kind: "BILLING", Line1: "Plot 14", IsDefault: true},
			{Kind: "SHIPPING", Line1: "Warehouse 3", IsDefault: true},
		},
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(customer.Addresses[0].IsDefault)
	suite.False(customer.Addresses[1].IsDefault)
	suite.True(customer.Addresses[2].IsDefault)

	billing := customer.DefaultAddress(domain.AddressBilling)
	suite.Require().NotNil(billing)
	suite.Equal("Plot 12", billing.Line1)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_ReplacesChildren() {
	ctx := context.Background()
	customerID := uuid.NewString()
	existing := &domain.Customer{
		CustomerID: customerID,
		Name:       "Apex Fabricators",
		Contacts:   []domain.Contact{{ContactID: uuid.NewString(), Name: "Old Contact", IsPrimary: true}},
		IsActive:   true,
	}
	req := dto.UpdateCustomerRequest{
		Name: "Apex Fabricators Pvt Ltd",
		Contacts: []dto.ContactRequest{
			{Name: "New Contact", IsPrimary: true},
		},
	}

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == req.Name && len(c.Contacts) == 1 && c.Contacts[0].Name == "New Contact"
	})).Return(nil).Once()

	customer, err := suite.service.UpdateCustomer(ctx, customerID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("Apex Fabricators Pvt Ltd", customer.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateCustomer(ctx, customerID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestListCustomers_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindCustomers", ctx, "", 20, 0).Return(nil, expectedErr).Once()

	customers, err := suite.service.ListCustomers(ctx, "", 20, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(customers)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
