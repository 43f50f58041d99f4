package employee

import (
	"context"
	"errors"
	"fmt"

	"opsboard/internal/domain/form"

	"golang.org/x/exp/slog"
)

// Rescanner is notified after every mutation so derived views (the
// notification center) can drop their cached state for the owner.
type Rescanner interface {
	Invalidate(ownerID string)
}

type Servicer interface {
	List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Employee, error)
	Get(ctx context.Context, ownerID, id string) (*Employee, error)
	Save(ctx context.Context, ownerID string, draft Employee) (*Employee, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type Service struct {
	repo   Repository
	rescan Rescanner
	log    *slog.Logger
}

func NewService(repo Repository, rescan Rescanner, log *slog.Logger) Servicer {
	return &Service{
		repo:   repo,
		rescan: rescan,
		log:    log.With("component", "employee_service"),
	}
}

func (s *Service) List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Employee, error) {
	rows, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list employees", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees := make([]Employee, len(rows))
	for i, r := range rows {
		employees[i] = FromStorage(r)
	}

	employees = filter.Apply(employees)
	Sort(employees, sortKey)
	return employees, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*Employee, error) {
	row, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get employee", "employee_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get employee: %w", err)
	}

	e := FromStorage(*row)
	return &e, nil
}

// Save validates the draft and inserts or updates depending on whether it
// carries an id. Mutations invalidate the owner's notification state.
func (s *Service) Save(ctx context.Context, ownerID string, draft Employee) (*Employee, error) {
	if err := form.Validate(draft); err != nil {
		s.log.Debug("employee draft rejected", "owner_id", ownerID, "error", err)
		return nil, err
	}

	rec := ToStorage(draft)
	rec.OwnerID = ownerID

	if rec.ID == "" {
		id, err := s.repo.Insert(ctx, &rec)
		if err != nil {
			s.log.Error("failed to insert employee", "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("insert employee: %w", err)
		}
		rec.ID = id
		s.log.Info("employee created", "employee_id", id, "owner_id", ownerID)
	} else {
		if err := s.repo.Update(ctx, &rec); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			s.log.Error("failed to update employee", "employee_id", rec.ID, "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("update employee: %w", err)
		}
		s.log.Info("employee updated", "employee_id", rec.ID, "owner_id", ownerID)
	}

	if s.rescan != nil {
		s.rescan.Invalidate(ownerID)
	}

	return s.Get(ctx, ownerID, rec.ID)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete employee", "employee_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete employee: %w", err)
	}

	s.log.Info("employee deleted", "employee_id", id, "owner_id", ownerID)

	if s.rescan != nil {
		s.rescan.Invalidate(ownerID)
	}
	return nil
}
