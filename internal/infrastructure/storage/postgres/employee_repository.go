package postgres

import (
	"context"
	"errors"
	"fmt"

	"opsboard/internal/domain/employee"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewEmployeeRepository(pool *pgxpool.Pool, log *slog.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		pool: pool,
		log:  log.With("component", "employee_repository"),
	}
}

const employeeColumns = `id, owner_id, full_name, position, email, phone, id_card_number,
	       social_security_number, medical_certificate, insurance_info,
	       contract_start, contract_end, status, equipment, documents,
	       created_at, updated_at`

func (r *EmployeeRepository) List(ctx context.Context, ownerID string) ([]employee.StorageRecord, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list employees", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var records []employee.StorageRecord
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *EmployeeRepository) Get(ctx context.Context, ownerID, id string) (*employee.StorageRecord, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND owner_id = $2`

	rec, err := r.scan(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrNotFound
		}
		r.log.Error("failed to get employee", "employee_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return rec, nil
}

func (r *EmployeeRepository) Insert(ctx context.Context, rec *employee.StorageRecord) (string, error) {
	const query = `
		INSERT INTO employees (owner_id, full_name, position, email, phone,
		                       id_card_number, social_security_number,
		                       medical_certificate, insurance_info,
		                       contract_start, contract_end, status, equipment, documents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	certificate, err := encodeJSONB(rec.MedicalCertificate)
	if err != nil {
		return "", err
	}
	insurance, err := encodeJSONB(rec.Insurance)
	if err != nil {
		return "", err
	}
	equipment, err := encodeJSONB(rec.Equipment)
	if err != nil {
		return "", err
	}
	documents, err := encodeJSONB(rec.Documents)
	if err != nil {
		return "", err
	}

	err = r.pool.QueryRow(ctx, query,
		rec.OwnerID, rec.FullName, rec.Position, rec.Email, rec.Phone,
		rec.IDCardNumber, rec.SocialSecurity,
		certificate, insurance,
		rec.ContractStart, rec.ContractEnd, rec.Status, equipment, documents,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		r.log.Error("failed to insert employee", "owner_id", rec.OwnerID, "error", err)
		return "", fmt.Errorf("insert employee: %w", err)
	}

	return rec.ID, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, rec *employee.StorageRecord) error {
	const query = `
		UPDATE employees
		SET full_name = $1, position = $2, email = $3, phone = $4,
		    id_card_number = $5, social_security_number = $6,
		    medical_certificate = $7, insurance_info = $8,
		    contract_start = $9, contract_end = $10, status = $11,
		    equipment = $12, documents = $13, updated_at = NOW()
		WHERE id = $14 AND owner_id = $15`

	certificate, err := encodeJSONB(rec.MedicalCertificate)
	if err != nil {
		return err
	}
	insurance, err := encodeJSONB(rec.Insurance)
	if err != nil {
		return err
	}
	equipment, err := encodeJSONB(rec.Equipment)
	if err != nil {
		return err
	}
	documents, err := encodeJSONB(rec.Documents)
	if err != nil {
		return err
	}

	result, err := r.pool.Exec(ctx, query,
		rec.FullName, rec.Position, rec.Email, rec.Phone,
		rec.IDCardNumber, rec.SocialSecurity,
		certificate, insurance,
		rec.ContractStart, rec.ContractEnd, rec.Status,
		equipment, documents,
		rec.ID, rec.OwnerID)
	if err != nil {
		r.log.Error("failed to update employee", "employee_id", rec.ID, "owner_id", rec.OwnerID, "error", err)
		return fmt.Errorf("update employee: %w", err)
	}

	if result.RowsAffected() == 0 {
		return employee.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM employees WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete employee", "employee_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete employee: %w", err)
	}

	if result.RowsAffected() == 0 {
		return employee.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) scan(row pgx.Row) (*employee.StorageRecord, error) {
	var rec employee.StorageRecord
	var certificate, insurance, equipment, documents []byte

	err := row.Scan(
		&rec.ID, &rec.OwnerID, &rec.FullName, &rec.Position, &rec.Email, &rec.Phone,
		&rec.IDCardNumber, &rec.SocialSecurity, &certificate, &insurance,
		&rec.ContractStart, &rec.ContractEnd, &rec.Status, &equipment, &documents,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	decodeJSONB(r.log, certificate, &rec.MedicalCertificate, "medical_certificate", rec.ID)
	decodeJSONB(r.log, insurance, &rec.Insurance, "insurance_info", rec.ID)
	decodeJSONB(r.log, equipment, &rec.Equipment, "equipment", rec.ID)
	decodeJSONB(r.log, documents, &rec.Documents, "documents", rec.ID)
	return &rec, nil
}
