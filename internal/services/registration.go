package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"campusservice/internal/domain"
)

type registrationService struct {
	mu            *sync.RWMutex
	students      domain.StudentRepository
	events        domain.EventRepository
	registrations domain.RegistrationRepository
	email         domain.EmailService
	logger        *slog.Logger
}

// NewRegistrationService creates a RegistrationService sharing the
// store-wide gate. email may be nil, in which case no notices are sent.
func NewRegistrationService(
	mu *sync.RWMutex,
	students domain.StudentRepository,
	events domain.EventRepository,
	registrations domain.RegistrationRepository,
	email domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		mu:            mu,
		students:      students,
		events:        events,
		registrations: registrations,
		email:         email,
		logger:        logger,
	}
}

func (s *registrationService) Register(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	reg, notice, err := s.admit(ctx, studentID, eventID)
	if err != nil {
		return nil, err
	}

	// The notice is sent after the store lock is released: a slow mail
	// provider must not stall other store operations.
	if s.email != nil && notice != nil {
		if err := s.email.SendRegistrationNotice(ctx, notice); err != nil {
			s.logger.WarnContext(ctx, "registration notice not sent",
				"student_id", studentID, "event_id", eventID, "err", err)
		}
	}

	return reg, nil
}

// admit performs the locked read-modify-write: existence checks, the
// duplicate check, and the capacity decision. It returns the stored
// registration plus the notice data captured while the lock was held.
func (s *registrationService) admit(ctx context.Context, studentID, eventID string) (*domain.Registration, *domain.RegistrationEmailData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get student: %w", err)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get event: %w", err)
	}

	if _, err := s.registrations.GetByStudentAndEvent(ctx, studentID, eventID); err == nil {
		return nil, nil, domain.ErrDuplicateRegistration
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, fmt.Errorf("get registration: %w", err)
	}

	// First-come-first-served: seats go to confirmed registrations until
	// capacity, then everyone joins the waitlist. Event validity does not
	// gate admission.
	confirmed, err := s.registrations.CountByEventAndStatus(ctx, eventID, domain.RegistrationConfirmed)
	if err != nil {
		return nil, nil, fmt.Errorf("count confirmed registrations: %w", err)
	}
	status := domain.RegistrationConfirmed
	if confirmed >= event.MaxSeats {
		status = domain.RegistrationWaitlisted
	}

	reg := domain.NewRegistration(uuid.NewString(), studentID, eventID, status, time.Now())
	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, nil, fmt.Errorf("create registration: %w", err)
	}

	var notice *domain.RegistrationEmailData
	if student.Contact != "" {
		notice = &domain.RegistrationEmailData{
			Contact:     student.Contact,
			StudentName: student.Name,
			EventTitle:  event.Title,
			EventDate:   event.Date,
			Status:      reg.Status,
		}
	}
	return reg, notice, nil
}

func (s *registrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	regs, err := s.registrations.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}
