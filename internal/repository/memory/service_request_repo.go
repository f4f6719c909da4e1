package memory

import (
	"context"
	"sync"

	"campusservice/internal/domain"
)

type serviceRequestRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.ServiceRequest
	order []string
}

// NewServiceRequestRepository returns an empty in-memory ServiceRequestRepository.
func NewServiceRequestRepository() domain.ServiceRequestRepository {
	return &serviceRequestRepository{byID: make(map[string]*domain.ServiceRequest)}
}

func (r *serviceRequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[req.ID]; ok {
		return domain.ErrDuplicateID
	}
	stored := *req
	r.byID[req.ID] = &stored
	r.order = append(r.order, req.ID)
	return nil
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	req := *stored
	return &req, nil
}

func (r *serviceRequestRepository) Update(ctx context.Context, req *domain.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[req.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *req
	r.byID[req.ID] = &stored
	return nil
}

func (r *serviceRequestRepository) List(ctx context.Context) ([]*domain.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]*domain.ServiceRequest, 0, len(r.order))
	for _, id := range r.order {
		req := *r.byID[id]
		requests = append(requests, &req)
	}
	return requests, nil
}
