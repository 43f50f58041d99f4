package postgres

import (
	"context"
	"errors"
	"fmt"

	"opsboard/internal/domain/client"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type ClientRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewClientRepository(pool *pgxpool.Pool, log *slog.Logger) *ClientRepository {
	return &ClientRepository{
		pool: pool,
		log:  log.With("component", "client_repository"),
	}
}

const clientColumns = `id, owner_id, name, company, email, phone, address, sector, status,
	       notes, created_at, updated_at`

func (r *ClientRepository) List(ctx context.Context, ownerID string) ([]client.StorageRecord, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list clients", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var records []client.StorageRecord
	for rows.Next() {
		var rec client.StorageRecord
		if err := scanClient(rows, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ClientRepository) Get(ctx context.Context, ownerID, id string) (*client.StorageRecord, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE id = $1 AND owner_id = $2`

	var rec client.StorageRecord
	if err := scanClient(r.pool.QueryRow(ctx, query, id, ownerID), &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrNotFound
		}
		r.log.Error("failed to get client", "client_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &rec, nil
}

func (r *ClientRepository) Insert(ctx context.Context, rec *client.StorageRecord) (string, error) {
	const query = `
		INSERT INTO clients (owner_id, name, company, email, phone, address, sector, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		rec.OwnerID, rec.Name, rec.Company, rec.Email, rec.Phone,
		rec.Address, rec.Sector, rec.Status, rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		r.log.Error("failed to insert client", "owner_id", rec.OwnerID, "error", err)
		return "", fmt.Errorf("insert client: %w", err)
	}

	return rec.ID, nil
}

func (r *ClientRepository) Update(ctx context.Context, rec *client.StorageRecord) error {
	const query = `
		UPDATE clients
		SET name = $1, company = $2, email = $3, phone = $4, address = $5,
		    sector = $6, status = $7, notes = $8, updated_at = NOW()
		WHERE id = $9 AND owner_id = $10`

	result, err := r.pool.Exec(ctx, query,
		rec.Name, rec.Company, rec.Email, rec.Phone, rec.Address,
		rec.Sector, rec.Status, rec.Notes,
		rec.ID, rec.OwnerID)
	if err != nil {
		r.log.Error("failed to update client", "client_id", rec.ID, "owner_id", rec.OwnerID, "error", err)
		return fmt.Errorf("update client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return client.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM clients WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete client", "client_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return client.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row, rec *client.StorageRecord) error {
	return row.Scan(
		&rec.ID, &rec.OwnerID, &rec.Name, &rec.Company, &rec.Email, &rec.Phone,
		&rec.Address, &rec.Sector, &rec.Status, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
}
