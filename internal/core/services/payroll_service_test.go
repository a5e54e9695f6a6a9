package services_test

import (
	"context"
	"testing"

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

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) FindPayrollRecordByID(ctx context.Context, recordID string) (*domain.PayrollRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) FindPayrollRecord(ctx context.Context, employeeID string, month string) (*domain.PayrollRecord, error) {
	args := m.Called(ctx, employeeID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) FindPayrollRecordsByMonth(ctx context.Context, month string) ([]domain.PayrollRecord, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) SavePayrollRecord(ctx context.Context, record domain.PayrollRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPayrollRepository) UpdatePayrollRecord(ctx context.Context, record domain.PayrollRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- Mock AdvanceSvc ---
type MockAdvanceSvc struct {
	mock.Mock
}

func (m *MockAdvanceSvc) GetAdvanceByID(ctx context.Context, advanceID string) (*domain.AdvancePayment, error) {
	args := m.Called(ctx, advanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvancePayment), args.Error(1)
}

func (m *MockAdvanceSvc) ListAdvancesByEmployee(ctx context.Context, employeeID string) ([]domain.AdvancePayment, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdvancePayment), args.Error(1)
}

func (m *MockAdvanceSvc) CreateAdvance(ctx context.Context, req dto.CreateAdvanceRequest, userID string) (*domain.AdvancePayment, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvancePayment), args.Error(1)
}

func (m *MockAdvanceSvc) RecordTopUp(ctx context.Context, advanceID string, req dto.AdvanceTopUpRequest, userID string) (*domain.AdvancePayment, error) {
	args := m.Called(ctx, advanceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvancePayment), args.Error(1)
}

func (m *MockAdvanceSvc) RecordRepayment(ctx context.Context, advanceID string, req dto.AdvanceRepaymentRequest, userID string) (*domain.AdvancePayment, error) {
	args := m.Called(ctx, advanceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvancePayment), args.Error(1)
}

func (m *MockAdvanceSvc) RecordDeduction(ctx context.Context, advanceID string, req dto.AdvanceDeductionRequest, userID string) (*domain.AdvancePayment, error) {
	args := m.Called(ctx, advanceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvancePayment), args.Error(1)
}

// --- Test Suite ---
type PayrollServiceTestSuite struct {
	suite.Suite
	mockPayrollRepo  *MockPayrollRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockAdvanceRepo  *MockAdvanceRepository
	mockAdvanceSvc   *MockAdvanceSvc
	service          portssvc.PayrollSvcFacade
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockPayrollRepo = new(MockPayrollRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockAdvanceRepo = new(MockAdvanceRepository)
	suite.mockAdvanceSvc = new(MockAdvanceSvc)
	suite.service = services.NewPayrollService(
		suite.mockPayrollRepo,
		suite.mockEmployeeRepo,
		suite.mockAdvanceRepo,
		suite.mockAdvanceSvc,
	)
}

func testEmployee() *domain.Employee {
	return &domain.Employee{
		EmployeeID:        uuid.NewString(),
		EmployeeCode:      "EMP-007",
		Name:              "Ravi Kumar",
		Basic:             decimal.NewFromInt(20000),
		HRA:               decimal.NewFromInt(8000),
		SpecialAllowances: decimal.NewFromInt(4000),
		IsActive:          true,
	}
}

// --- ComputePayroll Tests ---

// Full month, basic over the PF ceiling, gross over the ESI ceiling:
// PF caps at 1800, ESI is zero, PT hits the top slab.
func (suite *PayrollServiceTestSuite) TestComputePayroll_FullMonth() {
	ctx := context.Background()
	employee := testEmployee()
	req := dto.ComputePayrollRequest{
		EmployeeID: employee.EmployeeID,
		Month:      "2025-06", // 30 days
		DaysWorked: decimal.NewFromInt(30),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employee.EmployeeID).Return(employee, nil).Once()
	suite.mockPayrollRepo.On("FindPayrollRecord", ctx, employee.EmployeeID, "2025-06").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAdvanceRepo.On("FindActiveAdvanceByEmployee", ctx, employee.EmployeeID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPayrollRepo.On("SavePayrollRecord", ctx, mock.AnythingOfType("domain.PayrollRecord")).Return(nil).Once()

	record, err := suite.service.ComputePayroll(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Equal(30, record.DaysInMonth)
	suite.True(record.EarnedBasic.Equal(decimal.NewFromInt(20000)))
	suite.True(record.GrossPay.Equal(decimal.NewFromInt(32000)))
	suite.True(record.PFDeduction.Equal(decimal.NewFromInt(1800)), "PF caps at 1800 above the wage ceiling")
	suite.True(record.ESIDeduction.IsZero(), "no ESI above the gross ceiling")
	suite.True(record.ProfessionalTax.Equal(decimal.NewFromInt(200)))
	suite.True(record.AdvanceDeduction.IsZero())
	suite.True(record.NetPay.Equal(decimal.NewFromInt(30000)))
	suite.Equal(domain.PayrollDraft, record.Status)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

// Half month: everything prorates and the lower gross changes the statutory path.
func (suite *PayrollServiceTestSuite) TestComputePayroll_Prorated() {
	ctx := context.Background()
	employee := testEmployee()
	req := dto.ComputePayrollRequest{
		EmployeeID: employee.EmployeeID,
		Month:      "2025-06",
		DaysWorked: decimal.NewFromInt(15),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employee.EmployeeID).Return(employee, nil).Once()
	suite.mockPayrollRepo.On("FindPayrollRecord", ctx, employee.EmployeeID, "2025-06").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAdvanceRepo.On("FindActiveAdvanceByEmployee", ctx, employee.EmployeeID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPayrollRepo.On("SavePayrollRecord", ctx, mock.AnythingOfType("domain.PayrollRecord")).Return(nil).Once()

	record, err := suite.service.ComputePayroll(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(record.EarnedBasic.Equal(decimal.NewFromInt(10000)))
	suite.True(record.GrossPay.Equal(decimal.NewFromInt(16000)))
	suite.True(record.PFDeduction.Equal(decimal.NewFromInt(1200)), "12% of earned basic under the ceiling")
	suite.True(record.ESIDeduction.Equal(decimal.NewFromInt(120)), "0.75% of gross under the ceiling")
	suite.True(record.ProfessionalTax.Equal(decimal.NewFromInt(200)))
}

// An active advance proposes a deduction clamped to the balance, without
// touching the ledger.
func (suite *PayrollServiceTestSuite) TestComputePayroll_ProposesAdvanceDeduction() {
	ctx := context.Background()
	employee := testEmployee()
	advance := activeAdvance(employee.EmployeeID, 10000, 3000)
	req := dto.ComputePayrollRequest{
		EmployeeID: employee.EmployeeID,
		Month:      "2025-06",
		DaysWorked: decimal.NewFromInt(30),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employee.EmployeeID).Return(employee, nil).Once()
	suite.mockPayrollRepo.On("FindPayrollRecord", ctx, employee.EmployeeID, "2025-06").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAdvanceRepo.On("FindActiveAdvanceByEmployee", ctx, employee.EmployeeID).
		Return(advance, nil).Once()
	suite.mockPayrollRepo.On("SavePayrollRecord", ctx, mock.AnythingOfType("domain.PayrollRecord")).Return(nil).Once()

	record, err := suite.service.ComputePayroll(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(record.AdvanceDeduction.Equal(decimal.NewFromInt(3000)))
	suite.True(record.NetPay.Equal(decimal.NewFromInt(27000)))
	suite.mockAdvanceSvc.AssertNotCalled(suite.T(), "RecordDeduction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestComputePayroll_ApprovedMonthRejected() {
	ctx := context.Background()
	employee := testEmployee()
	existing := &domain.PayrollRecord{
		PayrollRecordID: uuid.NewString(),
		EmployeeID:      employee.EmployeeID,
		Month:           "2025-06",
		Status:          domain.PayrollApproved,
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employee.EmployeeID).Return(employee, nil).Once()
	suite.mockPayrollRepo.On("FindPayrollRecord", ctx, employee.EmployeeID, "2025-06").Return(existing, nil).Once()

	record, err := suite.service.ComputePayroll(ctx, dto.ComputePayrollRequest{
		EmployeeID: employee.EmployeeID,
		Month:      "2025-06",
		DaysWorked: decimal.NewFromInt(30),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(record)
}

func (suite *PayrollServiceTestSuite) TestComputePayroll_DaysWorkedOutOfRange() {
	ctx := context.Background()

	record, err := suite.service.ComputePayroll(ctx, dto.ComputePayrollRequest{
		EmployeeID: uuid.NewString(),
		Month:      "2025-06",
		DaysWorked: decimal.NewFromInt(31), // June has 30 days
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(record)
}

// --- ApprovePayroll Tests ---

func (suite *PayrollServiceTestSuite) TestApprovePayroll_PostsAdvanceDeduction() {
	ctx := context.Background()
	employee := testEmployee()
	advance := activeAdvance(employee.EmployeeID, 10000, 3000)
	record := &domain.PayrollRecord{
		PayrollRecordID:  uuid.NewString(),
		EmployeeID:       employee.EmployeeID,
		Month:            "2025-06",
		AdvanceDeduction: decimal.NewFromInt(3000),
		Status:           domain.PayrollDraft,
	}

	suite.mockPayrollRepo.On("FindPayrollRecordByID", ctx, record.PayrollRecordID).Return(record, nil).Once()
	suite.mockAdvanceRepo.On("FindActiveAdvanceByEmployee", ctx, employee.EmployeeID).Return(advance, nil).Once()
	suite.mockAdvanceSvc.On("RecordDeduction", ctx, advance.AdvanceID, mock.MatchedBy(func(req dto.AdvanceDeductionRequest) bool {
		return req.Amount.Equal(decimal.NewFromInt(3000)) && req.PayrollRecordID == record.PayrollRecordID
	}), mock.AnythingOfType("string")).Return(advance, nil).Once()
	suite.mockPayrollRepo.On("UpdatePayrollRecord", ctx, mock.MatchedBy(func(r domain.PayrollRecord) bool {
		return r.Status == domain.PayrollApproved
	})).Return(nil).Once()

	approved, err := suite.service.ApprovePayroll(ctx, record.PayrollRecordID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.PayrollApproved, approved.Status)
	suite.mockAdvanceSvc.AssertExpectations(suite.T())
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestApprovePayroll_StaleDeductionRejected() {
	ctx := context.Background()
	employee := testEmployee()
	advance := activeAdvance(employee.EmployeeID, 10000, 1000)
	record := &domain.PayrollRecord{
		PayrollRecordID:  uuid.NewString(),
		EmployeeID:       employee.EmployeeID,
		Month:            "2025-06",
		AdvanceDeduction: decimal.NewFromInt(3000), // balance has since dropped to 1000
		Status:           domain.PayrollDraft,
	}

	suite.mockPayrollRepo.On("FindPayrollRecordByID", ctx, record.PayrollRecordID).Return(record, nil).Once()
	suite.mockAdvanceRepo.On("FindActiveAdvanceByEmployee", ctx, employee.EmployeeID).Return(advance, nil).Once()

	approved, err := suite.service.ApprovePayroll(ctx, record.PayrollRecordID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(approved)
	suite.mockAdvanceSvc.AssertNotCalled(suite.T(), "RecordDeduction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPayrollRepo.AssertNotCalled(suite.T(), "UpdatePayrollRecord", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestApprovePayroll_AlreadyApprovedRejected() {
	ctx := context.Background()
	record := &domain.PayrollRecord{
		PayrollRecordID: uuid.NewString(),
		Status:          domain.PayrollApproved,
	}

	suite.mockPayrollRepo.On("FindPayrollRecordByID", ctx, record.PayrollRecordID).Return(record, nil).Once()

	approved, err := suite.service.ApprovePayroll(ctx, record.PayrollRecordID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(approved)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
