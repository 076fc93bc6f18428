package repo

import (
	"context"

	dom "MedDesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PatientRepo provides patient persistence.
type PatientRepo interface {
	Create(ctx context.Context, p dom.Patient) (dom.Patient, error)
	GetByID(ctx context.Context, id string) (dom.Patient, error)
	List(ctx context.Context) ([]dom.Patient, error)
	Update(ctx context.Context, id string, p dom.Patient) (dom.Patient, error)
	DeleteCascade(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// PGPatientRepo implements PatientRepo with Postgres.
type PGPatientRepo struct {
	db *pgxpool.Pool
}

// NewPGPatientRepo returns a new PGPatientRepo.
func NewPGPatientRepo(db *pgxpool.Pool) *PGPatientRepo {
	return &PGPatientRepo{db: db}
}

func (r *PGPatientRepo) Create(ctx context.Context, p dom.Patient) (dom.Patient, error) {
	query := `
		INSERT INTO patients (id, name, date_of_birth)
		VALUES ($1, $2, $3)
		RETURNING id, name, date_of_birth, created_at, updated_at`
	var out dom.Patient
	err := r.db.QueryRow(ctx, query, p.ID, p.Name, p.DateOfBirth).Scan(
		&out.ID, &out.Name, &out.DateOfBirth, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGPatientRepo) GetByID(ctx context.Context, id string) (dom.Patient, error) {
	query := `
		SELECT id, name, date_of_birth, created_at, updated_at
		FROM patients WHERE id = $1`
	var p dom.Patient
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *PGPatientRepo) List(ctx context.Context) ([]dom.Patient, error) {
	query := `
		SELECT id, name, date_of_birth, created_at, updated_at
		FROM patients ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Patient
	for rows.Next() {
		var p dom.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PGPatientRepo) Update(ctx context.Context, id string, p dom.Patient) (dom.Patient, error) {
	query := `
		UPDATE patients SET name = $2, date_of_birth = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, date_of_birth, created_at, updated_at`
	var out dom.Patient
	err := r.db.QueryRow(ctx, query, id, p.Name, p.DateOfBirth).Scan(
		&out.ID, &out.Name, &out.DateOfBirth, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

// DeleteCascade removes the patient and every appointment referencing it
// in one transaction. Returns pgx.ErrNoRows if the patient does not exist.
func (r *PGPatientRepo) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM appointments WHERE patient_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}

func (r *PGPatientRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}
