package repo

import (
	"context"
	"strconv"
	"strings"

	dom "MedDesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AppointmentFilter narrows List results. Zero values mean no filter.
type AppointmentFilter struct {
	Status    string
	PatientID string
	DoctorID  string
}

// AppointmentRepo provides appointment persistence.
type AppointmentRepo interface {
	Create(ctx context.Context, a dom.Appointment) (dom.Appointment, error)
	GetByID(ctx context.Context, id string) (dom.Appointment, error)
	List(ctx context.Context, f AppointmentFilter) ([]dom.Appointment, error)
	Update(ctx context.Context, id string, a dom.Appointment) (dom.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// PGAppointmentRepo implements AppointmentRepo with Postgres. Reads join
// patients and doctors so responses can carry the display names.
type PGAppointmentRepo struct {
	db *pgxpool.Pool
}

// NewPGAppointmentRepo returns a new PGAppointmentRepo.
func NewPGAppointmentRepo(db *pgxpool.Pool) *PGAppointmentRepo {
	return &PGAppointmentRepo{db: db}
}

const appointmentColumns = `
	a.id, a.patient_id, a.doctor_id, a.appointment_time, a.reason, a.status, a.notes,
	p.name, d.name, a.created_at, a.updated_at`

// Create inserts a new appointment. Foreign key violations surface as
// pgconn errors with the constraint name, so a patient or doctor deleted
// between the service's existence check and this insert is still caught.
func (r *PGAppointmentRepo) Create(ctx context.Context, a dom.Appointment) (dom.Appointment, error) {
	query := `
		INSERT INTO appointments (id, patient_id, doctor_id, appointment_time, reason, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRow(ctx, query,
		a.ID, a.PatientID, a.DoctorID, a.AppointmentTime, a.Reason, a.Status, a.Notes,
	).Scan(&a.ID); err != nil {
		return dom.Appointment{}, err
	}
	return r.GetByID(ctx, a.ID)
}

func (r *PGAppointmentRepo) GetByID(ctx context.Context, id string) (dom.Appointment, error) {
	query := `
		SELECT` + appointmentColumns + `
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.id = $1`
	return scanAppointment(r.db.QueryRow(ctx, query, id))
}

// List returns appointments ordered by scheduled time, optionally
// filtered by status, patient or doctor.
func (r *PGAppointmentRepo) List(ctx context.Context, f AppointmentFilter) ([]dom.Appointment, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, "a.status = $"+strconv.Itoa(len(args)))
	}
	if f.PatientID != "" {
		args = append(args, f.PatientID)
		conds = append(conds, "a.patient_id = $"+strconv.Itoa(len(args)))
	}
	if f.DoctorID != "" {
		args = append(args, f.DoctorID)
		conds = append(conds, "a.doctor_id = $"+strconv.Itoa(len(args)))
	}
	query := `
		SELECT` + appointmentColumns + `
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		JOIN doctors d ON d.id = a.doctor_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY a.appointment_time ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *PGAppointmentRepo) Update(ctx context.Context, id string, a dom.Appointment) (dom.Appointment, error) {
	query := `
		UPDATE appointments
		SET patient_id = $2, doctor_id = $3, appointment_time = $4,
		    reason = $5, status = $6, notes = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id`
	if err := r.db.QueryRow(ctx, query,
		id, a.PatientID, a.DoctorID, a.AppointmentTime, a.Reason, a.Status, a.Notes,
	).Scan(&id); err != nil {
		return dom.Appointment{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PGAppointmentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanAppointment(row pgx.Row) (dom.Appointment, error) {
	var a dom.Appointment
	err := row.Scan(
		&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentTime, &a.Reason, &a.Status, &a.Notes,
		&a.PatientName, &a.DoctorName, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}
