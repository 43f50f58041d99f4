package client

import (
	"context"
	"errors"
	"fmt"

	"opsboard/internal/domain/form"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Client, error)
	Get(ctx context.Context, ownerID, id string) (*Client, error)
	Save(ctx context.Context, ownerID string, draft Client) (*Client, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "client_service"),
	}
}

func (s *Service) List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Client, error) {
	rows, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list clients", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list clients: %w", err)
	}

	clients := make([]Client, len(rows))
	for i, r := range rows {
		clients[i] = FromStorage(r)
	}

	clients = filter.Apply(clients)
	Sort(clients, sortKey)
	return clients, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*Client, error) {
	row, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get client", "client_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get client: %w", err)
	}

	c := FromStorage(*row)
	return &c, nil
}

func (s *Service) Save(ctx context.Context, ownerID string, draft Client) (*Client, error) {
	if err := form.Validate(draft); err != nil {
		s.log.Debug("client draft rejected", "owner_id", ownerID, "error", err)
		return nil, err
	}

	rec := ToStorage(draft)
	rec.OwnerID = ownerID

	if rec.ID == "" {
		id, err := s.repo.Insert(ctx, &rec)
		if err != nil {
			s.log.Error("failed to insert client", "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("insert client: %w", err)
		}
		rec.ID = id
		s.log.Info("client created", "client_id", id, "owner_id", ownerID)
	} else {
		if err := s.repo.Update(ctx, &rec); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			s.log.Error("failed to update client", "client_id", rec.ID, "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("update client: %w", err)
		}
		s.log.Info("client updated", "client_id", rec.ID, "owner_id", ownerID)
	}

	return s.Get(ctx, ownerID, rec.ID)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete client", "client_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete client: %w", err)
	}

	s.log.Info("client deleted", "client_id", id, "owner_id", ownerID)
	return nil
}
