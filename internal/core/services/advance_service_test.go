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
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/core/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// --- Mock AdvanceRepository ---
type MockAdvanceRepository struct {
	mock.Mock
}

func (m *MockAdvanceRepository) FindAdvanceByID(ctx context.Context, advanceID string) (*domain.AdvancePayment, error) {
	args := m.Called(ctx, advanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvancePayment), args.Error(1)
}

func (m *MockAdvanceRepository) FindActiveAdvanceByEmployee(ctx context.Context, employeeID string) (*domain.AdvancePayment, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvancePayment), args.Error(1)
}

func (m *MockAdvanceRepository) FindAdvancesByEmployee(ctx context.Context, employeeID string) ([]domain.AdvancePayment, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdvancePayment), args.Error(1)
}

func (m *MockAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.AdvancePayment) error {
	args := m.Called(ctx, advance)
	return args.Error(0)
}

func (m *MockAdvanceRepository) AppendTransaction(ctx context.Context, advance domain.AdvancePayment, txn domain.AdvanceTransaction) error {
	args := m.Called(ctx, advance, txn)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByCode(ctx context.Context, employeeCode string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error {
	args := m.Called(ctx, employeeID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type AdvanceServiceTestSuite struct {
	suite.Suite
	mockAdvanceRepo  *MockAdvanceRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.AdvanceSvcFacade
}

func (suite *AdvanceServiceTestSuite) SetupTest() {
	suite.mockAdvanceRepo = new(MockAdvanceRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewAdvanceService(suite.mockAdvanceRepo, suite.mockEmployeeRepo)
}

func activeAdvance(employeeID string, amount, balance int64) *domain.AdvancePayment {
	advanceID := uuid.NewString()
	return &domain.AdvancePayment{
		AdvanceID:     advanceID,
		EmployeeID:    employeeID,
		Amount:        decimal.NewFromInt(amount),
		BalanceAmount: decimal.NewFromInt(balance),
		Status:        domain.AdvanceActive,
		Transactions: []domain.AdvanceTransaction{
			{
				TransactionID: uuid.NewString(),
				AdvanceID:     advanceID,
				Type:          domain.AdvanceDisbursement,
				Amount:        decimal.NewFromInt(amount),
			},
			{
				TransactionID: uuid.NewString(),
				AdvanceID:     advanceID,
				Type:          domain.AdvanceDeduction,
				Amount:        decimal.NewFromInt(amount - balance),
			},
		},
	}
}

// --- CreateAdvance Tests ---

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.CreateAdvanceRequest{
		EmployeeID: employeeID,
		Amount:     decimal.NewFromInt(10000),
		Date:       time.Now(),
		Reason:     "medical emergency",
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).
		Return(&domain.Employee{EmployeeID: employeeID, IsActive: true}, nil).Once()
	suite.mockAdvanceRepo.On("FindActiveAdvanceByEmployee", ctx, employeeID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAdvanceRepo.On("SaveAdvance", ctx, mock.MatchedBy(func(a domain.AdvancePayment) bool {
		return a.EmployeeID == employeeID &&
			a.BalanceAmount.Equal(req.Amount) &&
			a.Status == domain.AdvanceActive &&
			len(a.Transactions) == 1 &&
			a.Transactions[0].Type == domain.AdvanceDisbursement
	})).Return(nil).Once()

	advance, err := suite.service.CreateAdvance(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(advance)
	suite.True(advance.BalanceAmount.Equal(req.Amount))
	suite.Equal(domain.AdvanceActive, advance.Status)
	suite.Len(advance.Transactions, 1)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_SecondActiveRejected() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	req := dto.CreateAdvanceRequest{
		EmployeeID: employeeID,
		Amount:     decimal.NewFromInt(5000),
		Date:       time.Now(),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).
		Return(&domain.Employee{EmployeeID: employeeID, IsActive: true}, nil).Once()
	suite.mockAdvanceRepo.On("FindActiveAdvanceByEmployee", ctx, employeeID).
		Return(activeAdvance(employeeID, 10000, 4000), nil).Once()

	advance, err := suite.service.CreateAdvance(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(advance)
	suite.mockAdvanceRepo.AssertNotCalled(suite.T(), "SaveAdvance", mock.Anything, mock.Anything)
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateAdvanceRequest{
		EmployeeID: uuid.NewString(),
		Amount:     decimal.Zero,
		Date:       time.Now(),
	}

	advance, err := suite.service.CreateAdvance(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(advance)
}

// --- Ledger Tests ---

func (suite *AdvanceServiceTestSuite) TestRecordRepayment_ReducesBalance() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	advance := activeAdvance(employeeID, 10000, 4000)

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, advance.AdvanceID).Return(advance, nil).Once()
	suite.mockAdvanceRepo.On("AppendTransaction", ctx, mock.MatchedBy(func(a domain.AdvancePayment) bool {
		return a.BalanceAmount.Equal(decimal.NewFromInt(1000)) && a.Status == domain.AdvanceActive
	}), mock.MatchedBy(func(txn domain.AdvanceTransaction) bool {
		return txn.Type == domain.AdvanceRepayment && txn.Amount.Equal(decimal.NewFromInt(3000))
	})).Return(nil).Once()

	updated, err := suite.service.RecordRepayment(ctx, advance.AdvanceID, dto.AdvanceRepaymentRequest{
		Amount: decimal.NewFromInt(3000),
		Date:   time.Now(),
		Note:   "cash repayment",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.BalanceAmount.Equal(decimal.NewFromInt(1000)))
	suite.Equal(domain.AdvanceActive, updated.Status)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestRecordRepayment_FullRepaymentClosesAdvance() {
	ctx := context.Background()
	advance := activeAdvance(uuid.NewString(), 10000, 4000)

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, advance.AdvanceID).Return(advance, nil).Once()
	suite.mockAdvanceRepo.On("AppendTransaction", ctx, mock.MatchedBy(func(a domain.AdvancePayment) bool {
		return a.BalanceAmount.IsZero() && a.Status == domain.AdvanceFullyDeducted
	}), mock.AnythingOfType("domain.AdvanceTransaction")).Return(nil).Once()

	updated, err := suite.service.RecordRepayment(ctx, advance.AdvanceID, dto.AdvanceRepaymentRequest{
		Amount: decimal.NewFromInt(4000),
		Date:   time.Now(),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.BalanceAmount.IsZero())
	suite.Equal(domain.AdvanceFullyDeducted, updated.Status)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestRecordRepayment_OverBalanceRejected() {
	ctx := context.Background()
	advance := activeAdvance(uuid.NewString(), 10000, 4000)

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, advance.AdvanceID).Return(advance, nil).Once()

	updated, err := suite.service.RecordRepayment(ctx, advance.AdvanceID, dto.AdvanceRepaymentRequest{
		Amount: decimal.NewFromInt(4001),
		Date:   time.Now(),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockAdvanceRepo.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AdvanceServiceTestSuite) TestRecordTopUp_RaisesTotalAndBalance() {
	ctx := context.Background()
	advance := activeAdvance(uuid.NewString(), 10000, 4000)

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, advance.AdvanceID).Return(advance, nil).Once()
	suite.mockAdvanceRepo.On("AppendTransaction", ctx, mock.MatchedBy(func(a domain.AdvancePayment) bool {
		return a.Amount.Equal(decimal.NewFromInt(12000)) &&
			a.BalanceAmount.Equal(decimal.NewFromInt(6000)) &&
			a.Status == domain.AdvanceActive
	}), mock.MatchedBy(func(txn domain.AdvanceTransaction) bool {
		return txn.Type == domain.AdvanceDisbursement && txn.Amount.Equal(decimal.NewFromInt(2000))
	})).Return(nil).Once()

	updated, err := suite.service.RecordTopUp(ctx, advance.AdvanceID, dto.AdvanceTopUpRequest{
		Amount: decimal.NewFromInt(2000),
		Date:   time.Now(),
		Note:   "festival top-up",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(decimal.NewFromInt(12000)))
	suite.True(updated.BalanceAmount.Equal(decimal.NewFromInt(6000)))
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestRecordTopUp_ReactivatesSettledAdvance() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	advance := activeAdvance(employeeID, 10000, 0)
	advance.Status = domain.AdvanceFullyDeducted
	advance.BalanceAmount = decimal.Zero

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, advance.AdvanceID).Return(advance, nil).Once()
	suite.mockAdvanceRepo.On("FindActiveAdvanceByEmployee", ctx, employeeID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAdvanceRepo.On("AppendTransaction", ctx, mock.MatchedBy(func(a domain.AdvancePayment) bool {
		return a.Status == domain.AdvanceActive &&
			a.BalanceAmount.Equal(decimal.NewFromInt(5000)) &&
			a.Amount.Equal(decimal.NewFromInt(15000))
	}), mock.AnythingOfType("domain.AdvanceTransaction")).Return(nil).Once()

	updated, err := suite.service.RecordTopUp(ctx, advance.AdvanceID, dto.AdvanceTopUpRequest{
		Amount: decimal.NewFromInt(5000),
		Date:   time.Now(),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.AdvanceActive, updated.Status)
	suite.True(updated.BalanceAmount.Equal(decimal.NewFromInt(5000)))
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestRecordTopUp_OtherActiveAdvanceRejected() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	settled := activeAdvance(employeeID, 10000, 0)
	settled.Status = domain.AdvanceFullyDeducted
	settled.BalanceAmount = decimal.Zero

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, settled.AdvanceID).Return(settled, nil).Once()
	suite.mockAdvanceRepo.On("FindActiveAdvanceByEmployee", ctx, employeeID).
		Return(activeAdvance(employeeID, 3000, 3000), nil).Once()

	updated, err := suite.service.RecordTopUp(ctx, settled.AdvanceID, dto.AdvanceTopUpRequest{
		Amount: decimal.NewFromInt(1000),
		Date:   time.Now(),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(updated)
	suite.mockAdvanceRepo.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AdvanceServiceTestSuite) TestRecordDeduction_InactiveAdvanceRejected() {
	ctx := context.Background()
	advance := activeAdvance(uuid.NewString(), 10000, 0)
	advance.Status = domain.AdvanceFullyDeducted
	advance.BalanceAmount = decimal.Zero

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, advance.AdvanceID).Return(advance, nil).Once()

	updated, err := suite.service.RecordDeduction(ctx, advance.AdvanceID, dto.AdvanceDeductionRequest{
		Amount: decimal.NewFromInt(100),
		Date:   time.Now(),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
}

func TestAdvanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdvanceServiceTestSuite))
}
