package project

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
	List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Project, error)
	Get(ctx context.Context, ownerID, id string) (*Project, error)
	Save(ctx context.Context, ownerID string, draft Project) (*Project, error)
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
		log:    log.With("component", "project_service"),
	}
}

// List returns the owner's projects, filtered and sorted in memory.
func (s *Service) List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Project, error) {
	rows, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list projects", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]Project, len(rows))
	for i, r := range rows {
		projects[i] = FromStorage(r)
	}

	projects = filter.Apply(projects)
	Sort(projects, sortKey)
	return projects, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*Project, error) {
	row, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get project", "project_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get project: %w", err)
	}

	p := FromStorage(*row)
	return &p, nil
}

// Save validates the draft and inserts or updates depending on whether it
// carries an id. The saved record is re-read so callers always see what
// the store holds.
func (s *Service) Save(ctx context.Context, ownerID string, draft Project) (*Project, error) {
	if err := form.Validate(draft); err != nil {
		s.log.Debug("project draft rejected", "owner_id", ownerID, "error", err)
		return nil, err
	}

	rec := ToStorage(draft)
	rec.OwnerID = ownerID

	if rec.ID == "" {
		id, err := s.repo.Insert(ctx, &rec)
		if err != nil {
			s.log.Error("failed to insert project", "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("insert project: %w", err)
		}
		rec.ID = id
		s.log.Info("project created", "project_id", id, "owner_id", ownerID)
	} else {
		if err := s.repo.Update(ctx, &rec); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			s.log.Error("failed to update project", "project_id", rec.ID, "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("update project: %w", err)
		}
		s.log.Info("project updated", "project_id", rec.ID, "owner_id", ownerID)
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
		s.log.Error("failed to delete project", "project_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete project: %w", err)
	}

	s.log.Info("project deleted", "project_id", id, "owner_id", ownerID)

	if s.rescan != nil {
		s.rescan.Invalidate(ownerID)
	}
	return nil
}
