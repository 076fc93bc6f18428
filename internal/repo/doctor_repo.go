package repo

import (
	"context"

	dom "MedDesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DoctorRepo provides doctor persistence.
type DoctorRepo interface {
	Create(ctx context.Context, d dom.Doctor) (dom.Doctor, error)
	GetByID(ctx context.Context, id string) (dom.Doctor, error)
	List(ctx context.Context) ([]dom.Doctor, error)
	Update(ctx context.Context, id string, d dom.Doctor) (dom.Doctor, error)
	DeleteCascade(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// PGDoctorRepo implements DoctorRepo with Postgres.
// Email is stored as NULL when empty so the unique index only applies to
// doctors that actually have an email on record.
type PGDoctorRepo struct {
	db *pgxpool.Pool
}

// NewPGDoctorRepo returns a new PGDoctorRepo.
func NewPGDoctorRepo(db *pgxpool.Pool) *PGDoctorRepo {
	return &PGDoctorRepo{db: db}
}

func (r *PGDoctorRepo) Create(ctx context.Context, d dom.Doctor) (dom.Doctor, error) {
	query := `
		INSERT INTO doctors (id, name, specialty, phone_number, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, specialty, phone_number, email, created_at, updated_at`
	return r.scanOne(r.db.QueryRow(ctx, query, d.ID, d.Name, d.Specialty, d.PhoneNumber, nullIfEmpty(d.Email)))
}

func (r *PGDoctorRepo) GetByID(ctx context.Context, id string) (dom.Doctor, error) {
	query := `
		SELECT id, name, specialty, phone_number, email, created_at, updated_at
		FROM doctors WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *PGDoctorRepo) List(ctx context.Context) ([]dom.Doctor, error) {
	query := `
		SELECT id, name, specialty, phone_number, email, created_at, updated_at
		FROM doctors ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Doctor
	for rows.Next() {
		var d dom.Doctor
		var email *string
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.PhoneNumber, &email,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		if email != nil {
			d.Email = *email
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *PGDoctorRepo) Update(ctx context.Context, id string, d dom.Doctor) (dom.Doctor, error) {
	query := `
		UPDATE doctors SET name = $2, specialty = $3, phone_number = $4, email = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, specialty, phone_number, email, created_at, updated_at`
	return r.scanOne(r.db.QueryRow(ctx, query, id, d.Name, d.Specialty, d.PhoneNumber, nullIfEmpty(d.Email)))
}

// DeleteCascade removes the doctor and every appointment referencing it
// in one transaction. Returns pgx.ErrNoRows if the doctor does not exist.
func (r *PGDoctorRepo) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM appointments WHERE doctor_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}

func (r *PGDoctorRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM doctors WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

func (r *PGDoctorRepo) scanOne(row pgx.Row) (dom.Doctor, error) {
	var d dom.Doctor
	var email *string
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.PhoneNumber, &email,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return dom.Doctor{}, err
	}
	if email != nil {
		d.Email = *email
	}
	return d, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
