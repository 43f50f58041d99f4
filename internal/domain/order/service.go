package order

import (
	"context"
	"errors"
	"fmt"

	"opsboard/internal/domain/form"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Order, error)
	Get(ctx context.Context, ownerID, id string) (*Order, error)
	Save(ctx context.Context, ownerID string, draft Order) (*Order, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "order_service"),
	}
}

func (s *Service) List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Order, error) {
	rows, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list orders", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]Order, len(rows))
	for i, r := range rows {
		orders[i] = FromStorage(r)
	}

	orders = filter.Apply(orders)
	Sort(orders, sortKey)
	return orders, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*Order, error) {
	row, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get order", "order_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get order: %w", err)
	}

	o := FromStorage(*row)
	return &o, nil
}

func (s *Service) Save(ctx context.Context, ownerID string, draft Order) (*Order, error) {
	if err := form.Validate(draft); err != nil {
		s.log.Debug("order draft rejected", "owner_id", ownerID, "error", err)
		return nil, err
	}

	rec := ToStorage(draft)
	rec.OwnerID = ownerID

	if rec.ID == "" {
		id, err := s.repo.Insert(ctx, &rec)
		if err != nil {
			s.log.Error("failed to insert order", "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("insert order: %w", err)
		}
		rec.ID = id
		s.log.Info("order created", "order_id", id, "owner_id", ownerID)
	} else {
		if err := s.repo.Update(ctx, &rec); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			s.log.Error("failed to update order", "order_id", rec.ID, "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("update order: %w", err)
		}
		s.log.Info("order updated", "order_id", rec.ID, "owner_id", ownerID)
	}

	return s.Get(ctx, ownerID, rec.ID)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete order", "order_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete order: %w", err)
	}

	s.log.Info("order deleted", "order_id", id, "owner_id", ownerID)
	return nil
}
