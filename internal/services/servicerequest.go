package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"campusservice/internal/domain"
)

type serviceRequestService struct {
	mu       *sync.RWMutex
	students domain.StudentRepository
	requests domain.ServiceRequestRepository
	email    domain.EmailService
	logger   *slog.Logger
}

// NewServiceRequestService creates a ServiceRequestService sharing the
// store-wide gate. email may be nil, in which case no notices are sent.
func NewServiceRequestService(
	mu *sync.RWMutex,
	students domain.StudentRepository,
	requests domain.ServiceRequestRepository,
	email domain.EmailService,
	logger *slog.Logger,
) domain.ServiceRequestService {
	return &serviceRequestService{
		mu:       mu,
		students: students,
		requests: requests,
		email:    email,
		logger:   logger,
	}
}

func (s *serviceRequestService) CreateRequest(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	if err := validateServiceRequest(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}

	if _, err := s.requests.GetByID(ctx, req.ID); err == nil {
		return nil, domain.ErrDuplicateID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get service request: %w", err)
	}

	now := time.Now()
	req.Status = domain.RequestOpen
	req.CreatedAt = now
	req.UpdatedAt = now
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create service request: %w", err)
	}
	return req, nil
}

func (s *serviceRequestService) UpdateStatus(ctx context.Context, requestID, newStatus string) (*domain.ServiceRequest, error) {
	if !domain.IsRequestStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, newStatus)
	}

	req, notice, err := s.transition(ctx, requestID, newStatus)
	if err != nil {
		return nil, err
	}

	// The notice is sent after the store lock is released: a slow mail
	// provider must not stall other store operations.
	if s.email != nil && notice != nil {
		if err := s.email.SendRequestResolved(ctx, notice); err != nil {
			s.logger.WarnContext(ctx, "request resolved notice not sent",
				"request_id", req.ID, "err", err)
		}
	}

	return req, nil
}

// transition performs the locked read-modify-write of the status change.
// When the change resolves the request, the notice data is captured while
// the lock is still held.
func (s *serviceRequestService) transition(ctx context.Context, requestID, newStatus string) (*domain.ServiceRequest, *domain.RequestResolvedEmailData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get service request: %w", err)
	}

	if !domain.CanTransition(req.Status, newStatus) {
		return nil, nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, req.Status, newStatus)
	}

	resolvedNow := req.Status != domain.RequestResolved && newStatus == domain.RequestResolved

	// A same-status update is permitted and still bumps updated_at.
	req.Status = newStatus
	req.UpdatedAt = time.Now()
	if err := s.requests.Update(ctx, req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("update service request: %w", err)
	}

	var notice *domain.RequestResolvedEmailData
	if resolvedNow && s.email != nil {
		if student, err := s.students.GetByID(ctx, req.StudentID); err == nil && student.Contact != "" {
			notice = &domain.RequestResolvedEmailData{
				Contact:     student.Contact,
				StudentName: student.Name,
				RequestID:   req.ID,
				Category:    req.Category,
			}
		}
	}
	return req, notice, nil
}

func (s *serviceRequestService) ListRequests(ctx context.Context) ([]*domain.ServiceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	if requests == nil {
		requests = []*domain.ServiceRequest{}
	}
	return requests, nil
}

func validateServiceRequest(req *domain.ServiceRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", domain.ErrInvalidInput)
	}
	req.ID = strings.TrimSpace(req.ID)
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.Category = strings.TrimSpace(req.Category)
	if req.ID == "" {
		return fmt.Errorf("%w: request_id is required", domain.ErrInvalidInput)
	}
	if req.StudentID == "" {
		return fmt.Errorf("%w: student_id is required", domain.ErrInvalidInput)
	}
	if req.Category == "" {
		return fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}
	return nil
}
