package postgres

import (
	"context"
	"errors"
	"fmt"

	"opsboard/internal/domain/order"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type OrderRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewOrderRepository(pool *pgxpool.Pool, log *slog.Logger) *OrderRepository {
	return &OrderRepository{
		pool: pool,
		log:  log.With("component", "order_repository"),
	}
}

const orderColumns = `id, owner_id, articles, supplier, requester, purchasing_responsible,
	       client, delivery_date, documents, status, created_at, updated_at`

func (r *OrderRepository) List(ctx context.Context, ownerID string) ([]order.StorageRecord, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM purchase_orders
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list orders", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var records []order.StorageRecord
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *OrderRepository) Get(ctx context.Context, ownerID, id string) (*order.StorageRecord, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM purchase_orders
		WHERE id = $1 AND owner_id = $2`

	rec, err := r.scan(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		r.log.Error("failed to get order", "order_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get order: %w", err)
	}
	return rec, nil
}

func (r *OrderRepository) Insert(ctx context.Context, rec *order.StorageRecord) (string, error) {
	const query = `
		INSERT INTO purchase_orders (owner_id, articles, supplier, requester,
		                             purchasing_responsible, client, delivery_date,
		                             documents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	articles, err := encodeJSONB(rec.Articles)
	if err != nil {
		return "", err
	}
	documents, err := encodeJSONB(rec.Documents)
	if err != nil {
		return "", err
	}

	err = r.pool.QueryRow(ctx, query,
		rec.OwnerID, articles, rec.Supplier, rec.Requester,
		rec.PurchasingResponsible, rec.Client, rec.DeliveryDate,
		documents, rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		r.log.Error("failed to insert order", "owner_id", rec.OwnerID, "error", err)
		return "", fmt.Errorf("insert order: %w", err)
	}

	return rec.ID, nil
}

func (r *OrderRepository) Update(ctx context.Context, rec *order.StorageRecord) error {
	const query = `
		UPDATE purchase_orders
		SET articles = $1, supplier = $2, requester = $3, purchasing_responsible = $4,
		    client = $5, delivery_date = $6, documents = $7, status = $8,
		    updated_at = NOW()
		WHERE id = $9 AND owner_id = $10`

	articles, err := encodeJSONB(rec.Articles)
	if err != nil {
		return err
	}
	documents, err := encodeJSONB(rec.Documents)
	if err != nil {
		return err
	}

	result, err := r.pool.Exec(ctx, query,
		articles, rec.Supplier, rec.Requester, rec.PurchasingResponsible,
		rec.Client, rec.DeliveryDate, documents, rec.Status,
		rec.ID, rec.OwnerID)
	if err != nil {
		r.log.Error("failed to update order", "order_id", rec.ID, "owner_id", rec.OwnerID, "error", err)
		return fmt.Errorf("update order: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM purchase_orders WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete order", "order_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete order: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) scan(row pgx.Row) (*order.StorageRecord, error) {
	var rec order.StorageRecord
	var articles, documents []byte

	err := row.Scan(
		&rec.ID, &rec.OwnerID, &articles, &rec.Supplier, &rec.Requester,
		&rec.PurchasingResponsible, &rec.Client, &rec.DeliveryDate,
		&documents, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	decodeJSONB(r.log, articles, &rec.Articles, "articles", rec.ID)
	decodeJSONB(r.log, documents, &rec.Documents, "documents", rec.ID)
	return &rec, nil
}
