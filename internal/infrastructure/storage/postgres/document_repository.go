package postgres

import (
	"context"
	"errors"
	"fmt"

	"opsboard/internal/domain/document"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type DocumentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewDocumentRepository(pool *pgxpool.Pool, log *slog.Logger) *DocumentRepository {
	return &DocumentRepository{
		pool: pool,
		log:  log.With("component", "document_repository"),
	}
}

const documentColumns = `id, owner_id, name, size, mime_type, category, folder_id, tags,
	       description, is_favorite, version, blob_ref, created_at, updated_at`

func (r *DocumentRepository) List(ctx context.Context, ownerID string) ([]document.StorageRecord, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list documents", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var records []document.StorageRecord
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *DocumentRepository) Get(ctx context.Context, ownerID, id string) (*document.StorageRecord, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1 AND owner_id = $2`

	rec, err := r.scan(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrNotFound
		}
		r.log.Error("failed to get document", "document_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get document: %w", err)
	}
	return rec, nil
}

func (r *DocumentRepository) Insert(ctx context.Context, rec *document.StorageRecord) (string, error) {
	const query = `
		INSERT INTO documents (owner_id, name, size, mime_type, category, folder_id,
		                       tags, description, is_favorite, version, blob_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	tags, err := encodeJSONB(rec.Tags)
	if err != nil {
		return "", err
	}

	err = r.pool.QueryRow(ctx, query,
		rec.OwnerID, rec.Name, rec.Size, rec.MimeType, rec.Category, rec.FolderID,
		tags, rec.Description, rec.Favorite, rec.Version, rec.BlobRef,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		r.log.Error("failed to insert document", "owner_id", rec.OwnerID, "error", err)
		return "", fmt.Errorf("insert document: %w", err)
	}

	return rec.ID, nil
}

func (r *DocumentRepository) Update(ctx context.Context, rec *document.StorageRecord) error {
	const query = `
		UPDATE documents
		SET name = $1, size = $2, mime_type = $3, category = $4, folder_id = $5,
		    tags = $6, description = $7, is_favorite = $8, version = $9,
		    blob_ref = $10, updated_at = NOW()
		WHERE id = $11 AND owner_id = $12`

	tags, err := encodeJSONB(rec.Tags)
	if err != nil {
		return err
	}

	result, err := r.pool.Exec(ctx, query,
		rec.Name, rec.Size, rec.MimeType, rec.Category, rec.FolderID,
		tags, rec.Description, rec.Favorite, rec.Version, rec.BlobRef,
		rec.ID, rec.OwnerID)
	if err != nil {
		r.log.Error("failed to update document", "document_id", rec.ID, "owner_id", rec.OwnerID, "error", err)
		return fmt.Errorf("update document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return document.ErrNotFound
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM documents WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete document", "document_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return document.ErrNotFound
	}
	return nil
}

func (r *DocumentRepository) scan(row pgx.Row) (*document.StorageRecord, error) {
	var rec document.StorageRecord
	var tags []byte

	err := row.Scan(
		&rec.ID, &rec.OwnerID, &rec.Name, &rec.Size, &rec.MimeType, &rec.Category,
		&rec.FolderID, &tags, &rec.Description, &rec.Favorite, &rec.Version,
		&rec.BlobRef, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	decodeJSONB(r.log, tags, &rec.Tags, "tags", rec.ID)
	return &rec, nil
}
