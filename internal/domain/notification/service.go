package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"opsboard/internal/domain/employee"
	"opsboard/internal/domain/project"

	"golang.org/x/exp/slog"
)

// EmployeeSource and ProjectSource are the two snapshot feeds the
// scanner runs over. The entity services satisfy them.
type EmployeeSource interface {
	List(ctx context.Context, ownerID string, filter employee.Filter, sortKey string) ([]employee.Employee, error)
}

type ProjectSource interface {
	List(ctx context.Context, ownerID string, filter project.Filter, sortKey string) ([]project.Project, error)
}

type Servicer interface {
	List(ctx context.Context, ownerID string) ([]Notification, error)
	MarkRead(ctx context.Context, ownerID, id string) error
	MarkAllRead(ctx context.Context, ownerID string) error
	Dismiss(ctx context.Context, ownerID, id string) error
	Invalidate(ownerID string)
	InvalidateAll()
}

type ownerState struct {
	generatedAt   time.Time
	notifications []Notification
}

// Service keeps one scanned snapshot per owner. A snapshot lives until
// the TTL passes, a mutation invalidates it, or the scheduler sweeps
// all of them. Read and dismiss touch only the cached copy; the next
// regeneration starts from scratch.
type Service struct {
	employees EmployeeSource
	projects  ProjectSource
	ttl       time.Duration
	now       func() time.Time
	log       *slog.Logger

	mu    sync.Mutex
	cache map[string]*ownerState
}

func NewService(employees EmployeeSource, projects ProjectSource, log *slog.Logger) *Service {
	return &Service{
		employees: employees,
		projects:  projects,
		ttl:       time.Hour,
		now:       time.Now,
		log:       log.With("component", "notification_service"),
		cache:     make(map[string]*ownerState),
	}
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.freshLocked(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]Notification, len(state.notifications))
	copy(out, state.notifications)
	return out, nil
}

func (s *Service) MarkRead(ctx context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.freshLocked(ctx, ownerID)
	if err != nil {
		return err
	}

	for i := range state.notifications {
		if state.notifications[i].ID == id {
			state.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (s *Service) MarkAllRead(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.freshLocked(ctx, ownerID)
	if err != nil {
		return err
	}

	for i := range state.notifications {
		state.notifications[i].Read = true
	}
	return nil
}

func (s *Service) Dismiss(ctx context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.freshLocked(ctx, ownerID)
	if err != nil {
		return err
	}

	for i := range state.notifications {
		if state.notifications[i].ID == id {
			state.notifications = append(state.notifications[:i], state.notifications[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Invalidate drops the owner's snapshot so the next read re-scans.
// Called by the employee and project services after every mutation.
func (s *Service) Invalidate(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, ownerID)
}

// InvalidateAll drops every snapshot. Called by the hourly scheduler.
func (s *Service) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*ownerState)
	s.log.Debug("notification caches cleared")
}

// freshLocked returns the owner's snapshot, regenerating it when absent
// or older than the TTL. Caller holds the mutex.
func (s *Service) freshLocked(ctx context.Context, ownerID string) (*ownerState, error) {
	now := s.now()

	if state, ok := s.cache[ownerID]; ok && now.Sub(state.generatedAt) < s.ttl {
		return state, nil
	}

	employees, err := s.employees.List(ctx, ownerID, employee.Filter{}, "")
	if err != nil {
		s.log.Error("failed to load employees for scan", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("scan employees: %w", err)
	}
	projects, err := s.projects.List(ctx, ownerID, project.Filter{}, "")
	if err != nil {
		s.log.Error("failed to load projects for scan", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("scan projects: %w", err)
	}

	state := &ownerState{
		generatedAt:   now,
		notifications: Scan(now, employees, projects),
	}
	s.cache[ownerID] = state
	s.log.Debug("notifications regenerated", "owner_id", ownerID, "count", len(state.notifications))
	return state, nil
}
