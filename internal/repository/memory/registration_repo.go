package memory

import (
	"context"
	"sync"

	"campusservice/internal/domain"
)

type registrationRepository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Registration
	byPair map[string]string // studentID+"\x00"+eventID -> registration id
	order  []string
	seq    int64
}

// NewRegistrationRepository returns an empty in-memory RegistrationRepository.
func NewRegistrationRepository() domain.RegistrationRepository {
	return &registrationRepository{
		byID:   make(map[string]*domain.Registration),
		byPair: make(map[string]string),
	}
}

func pairKey(studentID, eventID string) string {
	return studentID + "\x00" + eventID
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[reg.ID]; ok {
		return domain.ErrDuplicateID
	}
	if _, ok := r.byPair[pairKey(reg.StudentID, reg.EventID)]; ok {
		return domain.ErrDuplicateRegistration
	}
	r.seq++
	reg.Seq = r.seq
	stored := *reg
	r.byID[reg.ID] = &stored
	r.byPair[pairKey(reg.StudentID, reg.EventID)] = reg.ID
	r.order = append(r.order, reg.ID)
	return nil
}

func (r *registrationRepository) GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPair[pairKey(studentID, eventID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	reg := *r.byID[id]
	return &reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := []*domain.Registration{}
	for _, id := range r.order {
		if r.byID[id].EventID != eventID {
			continue
		}
		reg := *r.byID[id]
		regs = append(regs, &reg)
	}
	return regs, nil
}

func (r *registrationRepository) CountByEventAndStatus(ctx context.Context, eventID, status string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, id := range r.order {
		reg := r.byID[id]
		if reg.EventID == eventID && reg.Status == status {
			count++
		}
	}
	return count, nil
}
