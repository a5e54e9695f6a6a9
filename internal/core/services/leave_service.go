package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// leaveService provides leave request operations.
type leaveService struct {
	leaveRepo    portsrepo.LeaveRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewLeaveService creates a new leave service.
func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.LeaveSvcFacade {
	return &leaveService{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

func (s *leaveService) CreateLeaveRequest(ctx context.Context, req dto.CreateLeaveRequest, userID string) (*domain.LeaveRequest, error) {
	if req.ToDate.Before(req.FromDate) {
		return nil, fmt.Errorf("to date precedes from date: %w", apperrors.ErrValidation)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, fmt.Errorf("employee %s is inactive: %w", req.EmployeeID, apperrors.ErrValidation)
	}

	now := time.Now()
	leave := domain.LeaveRequest{
		LeaveRequestID: uuid.NewString(),
		EmployeeID:     req.EmployeeID,
		FromDate:       req.FromDate,
		ToDate:         req.ToDate,
		Kind:           domain.LeaveKind(req.Kind),
		Reason:         req.Reason,
		Status:         domain.LeavePending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.leaveRepo.SaveLeaveRequest(ctx, leave); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return &leave, nil
}

func (s *leaveService) GetLeaveRequestByID(ctx context.Context, leaveRequestID string) (*domain.LeaveRequest, error) {
	leave, err := s.leaveRepo.FindLeaveRequestByID(ctx, leaveRequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request %s: %w", leaveRequestID, err)
	}
	return leave, nil
}

func (s *leaveService) ListLeaveRequestsByEmployee(ctx context.Context, employeeID string, month string, limit int, offset int) ([]domain.LeaveRequest, error) {
	leaves, err := s.leaveRepo.FindLeaveRequestsByEmployee(ctx, employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests for employee %s: %w", employeeID, err)
	}
	if month == "" {
		return leaves, nil
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("month must be YYYY-MM: %w", apperrors.ErrValidation)
	}
	end := start.AddDate(0, 1, 0)
	filtered := leaves[:0]
	for _, l := range leaves {
		if l.FromDate.Before(end) && !l.ToDate.Before(start) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

func (s *leaveService) DecideLeaveRequest(ctx context.Context, leaveRequestID string, approve bool, userID string) (*domain.LeaveRequest, error) {
	leave, err := s.leaveRepo.FindLeaveRequestByID(ctx, leaveRequestID)
	if err != nil {
		return nil, err
	}
	if leave.Status != domain.LeavePending {
		return nil, fmt.Errorf("leave request %s is already decided: %w", leaveRequestID, apperrors.ErrValidation)
	}

	if approve {
		leave.Status = domain.LeaveApproved
	} else {
		leave.Status = domain.LeaveRejected
	}
	leave.DecidedBy = userID
	leave.LastUpdatedAt = time.Now()
	leave.LastUpdatedBy = userID

	if err := s.leaveRepo.UpdateLeaveRequest(ctx, *leave); err != nil {
		return nil, fmt.Errorf("failed to decide leave request %s: %w", leaveRequestID, err)
	}
	return leave, nil
}
