package domain

import (
	"context"
	"time"
)

// Service request statuses. The literal strings are part of the API.
const (
	RequestOpen       = "Open"
	RequestInProgress = "In-Progress"
	RequestResolved   = "Resolved"
)

// requestTransitions holds the allowed forward moves of the lifecycle.
// Re-affirming the current status is always permitted (handled by the
// service as a timestamp-only update); skipping a step is not.
var requestTransitions = map[string]string{
	RequestOpen:       RequestInProgress,
	RequestInProgress: RequestResolved,
}

// IsRequestStatus reports whether s is one of the three known status labels.
func IsRequestStatus(s string) bool {
	return s == RequestOpen || s == RequestInProgress || s == RequestResolved
}

// CanTransition reports whether a request may move from one status to
// another. Same-status moves are allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	return requestTransitions[from] == to
}

// ServiceRequest represents a student service request (maintenance,
// library access, counseling, ...) tracked through its status lifecycle.
// swagger:model ServiceRequest
type ServiceRequest struct {
	ID          string    `json:"request_id"`
	StudentID   string    `json:"student_id"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewServiceRequest returns a new ServiceRequest in the Open state.
func NewServiceRequest(id, studentID, category, location, description string, createdAt time.Time) *ServiceRequest {
	return &ServiceRequest{
		ID:          id,
		StudentID:   studentID,
		Category:    category,
		Location:    location,
		Description: description,
		Status:      RequestOpen,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

// ServiceRequestRepository defines storage operations for service requests.
type ServiceRequestRepository interface {
	Create(ctx context.Context, req *ServiceRequest) error
	GetByID(ctx context.Context, id string) (*ServiceRequest, error)
	// Update persists the request's current Status and UpdatedAt.
	Update(ctx context.Context, req *ServiceRequest) error
	// List returns all requests in creation order.
	List(ctx context.Context) ([]*ServiceRequest, error)
}

// ServiceRequestService defines the request lifecycle operations.
type ServiceRequestService interface {
	// CreateRequest stores a new request with status Open. Returns
	// ErrNotFound for an unknown student and ErrDuplicateID for a taken id.
	CreateRequest(ctx context.Context, req *ServiceRequest) (*ServiceRequest, error)
	// UpdateStatus moves a request along the lifecycle. A same-status update
	// is a no-op that still bumps updated_at. Returns ErrInvalidTransition
	// for disallowed moves and ErrInvalidInput for unknown status labels.
	UpdateStatus(ctx context.Context, requestID, newStatus string) (*ServiceRequest, error)
	ListRequests(ctx context.Context) ([]*ServiceRequest, error)
}
