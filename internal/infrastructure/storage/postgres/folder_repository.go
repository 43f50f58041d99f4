package postgres

import (
	"context"
	"fmt"

	"opsboard/internal/domain/document"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type FolderRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewFolderRepository(pool *pgxpool.Pool, log *slog.Logger) *FolderRepository {
	return &FolderRepository{
		pool: pool,
		log:  log.With("component", "folder_repository"),
	}
}

func (r *FolderRepository) List(ctx context.Context, ownerID string) ([]document.FolderRecord, error) {
	const query = `
		SELECT id, owner_id, name, color, created_at
		FROM folders
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list folders", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var records []document.FolderRecord
	for rows.Next() {
		var rec document.FolderRecord
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Name, &rec.Color, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *FolderRepository) Insert(ctx context.Context, rec *document.FolderRecord) (string, error) {
	const query = `
		INSERT INTO folders (owner_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, rec.OwnerID, rec.Name, rec.Color).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		r.log.Error("failed to insert folder", "owner_id", rec.OwnerID, "error", err)
		return "", fmt.Errorf("insert folder: %w", err)
	}

	return rec.ID, nil
}

func (r *FolderRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM folders WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete folder", "folder_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return document.ErrFolderNotFound
	}
	return nil
}
