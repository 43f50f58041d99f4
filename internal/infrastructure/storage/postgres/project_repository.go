package postgres

import (
	"context"
	"errors"
	"fmt"

	"opsboard/internal/domain/project"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewProjectRepository(pool *pgxpool.Pool, log *slog.Logger) *ProjectRepository {
	return &ProjectRepository{
		pool: pool,
		log:  log.With("component", "project_repository"),
	}
}

const projectColumns = `id, owner_id, nature, description, materials, responsible, requester,
	       client_info, start_date, end_date, attachments, progress, status,
	       progress_entries, created_at, updated_at`

func (r *ProjectRepository) List(ctx context.Context, ownerID string) ([]project.StorageRecord, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list projects", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var records []project.StorageRecord
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *ProjectRepository) Get(ctx context.Context, ownerID, id string) (*project.StorageRecord, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1 AND owner_id = $2`

	rec, err := r.scan(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrNotFound
		}
		r.log.Error("failed to get project", "project_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get project: %w", err)
	}
	return rec, nil
}

func (r *ProjectRepository) Insert(ctx context.Context, rec *project.StorageRecord) (string, error) {
	const query = `
		INSERT INTO projects (owner_id, nature, description, materials, responsible,
		                      requester, client_info, start_date, end_date, attachments,
		                      progress, status, progress_entries)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`

	materials, err := encodeJSONB(rec.Materials)
	if err != nil {
		return "", err
	}
	clientInfo, err := encodeJSONB(rec.ClientInfo)
	if err != nil {
		return "", err
	}
	attachments, err := encodeJSONB(rec.Attachments)
	if err != nil {
		return "", err
	}
	entries, err := encodeJSONB(rec.ProgressEntries)
	if err != nil {
		return "", err
	}

	err = r.pool.QueryRow(ctx, query,
		rec.OwnerID, rec.Nature, rec.Description, materials, rec.Responsible,
		rec.Requester, clientInfo, rec.StartDate, rec.EndDate, attachments,
		rec.Progress, rec.Status, entries,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		r.log.Error("failed to insert project", "owner_id", rec.OwnerID, "error", err)
		return "", fmt.Errorf("insert project: %w", err)
	}

	return rec.ID, nil
}

func (r *ProjectRepository) Update(ctx context.Context, rec *project.StorageRecord) error {
	const query = `
		UPDATE projects
		SET nature = $1, description = $2, materials = $3, responsible = $4,
		    requester = $5, client_info = $6, start_date = $7, end_date = $8,
		    attachments = $9, progress = $10, status = $11, progress_entries = $12,
		    updated_at = NOW()
		WHERE id = $13 AND owner_id = $14`

	materials, err := encodeJSONB(rec.Materials)
	if err != nil {
		return err
	}
	clientInfo, err := encodeJSONB(rec.ClientInfo)
	if err != nil {
		return err
	}
	attachments, err := encodeJSONB(rec.Attachments)
	if err != nil {
		return err
	}
	entries, err := encodeJSONB(rec.ProgressEntries)
	if err != nil {
		return err
	}

	result, err := r.pool.Exec(ctx, query,
		rec.Nature, rec.Description, materials, rec.Responsible,
		rec.Requester, clientInfo, rec.StartDate, rec.EndDate,
		attachments, rec.Progress, rec.Status, entries,
		rec.ID, rec.OwnerID)
	if err != nil {
		r.log.Error("failed to update project", "project_id", rec.ID, "owner_id", rec.OwnerID, "error", err)
		return fmt.Errorf("update project: %w", err)
	}

	// Zero rows means absent or owned by someone else.
	if result.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM projects WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete project", "project_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) scan(row pgx.Row) (*project.StorageRecord, error) {
	var rec project.StorageRecord
	var materials, clientInfo, attachments, entries []byte

	err := row.Scan(
		&rec.ID, &rec.OwnerID, &rec.Nature, &rec.Description, &materials,
		&rec.Responsible, &rec.Requester, &clientInfo, &rec.StartDate, &rec.EndDate,
		&attachments, &rec.Progress, &rec.Status, &entries,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	decodeJSONB(r.log, materials, &rec.Materials, "materials", rec.ID)
	decodeJSONB(r.log, clientInfo, &rec.ClientInfo, "client_info", rec.ID)
	decodeJSONB(r.log, attachments, &rec.Attachments, "attachments", rec.ID)
	decodeJSONB(r.log, entries, &rec.ProgressEntries, "progress_entries", rec.ID)
	return &rec, nil
}
