package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// LeaveReaderSvc defines read operations for leave requests
type LeaveReaderSvc interface {
	// GetLeaveRequestByID retrieves a leave request.
	GetLeaveRequestByID(ctx context.Context, leaveRequestID string) (*domain.LeaveRequest, error)

	// ListLeaveRequestsByEmployee retrieves an employee's leave requests,
	// optionally restricted to those overlapping a YYYY-MM month.
	ListLeaveRequestsByEmployee(ctx context.Context, employeeID string, month string, limit int, offset int) ([]domain.LeaveRequest, error)
}

// LeaveWriterSvc defines write operations for leave requests
type LeaveWriterSvc interface {
	// CreateLeaveRequest files a new PENDING leave request.
	CreateLeaveRequest(ctx context.Context, req dto.CreateLeaveRequest, userID string) (*domain.LeaveRequest, error)

	// DecideLeaveRequest approves or rejects a PENDING request.
	DecideLeaveRequest(ctx context.Context, leaveRequestID string, approve bool, userID string) (*domain.LeaveRequest, error)
}

// LeaveSvcFacade combines all leave service interfaces
type LeaveSvcFacade interface {
	LeaveReaderSvc
	LeaveWriterSvc
}
