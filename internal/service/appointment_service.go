package service

import (
	"context"
	"errors"
	"strings"

	dom "MedDesk/internal/domain"
	"MedDesk/internal/repo"
	"MedDesk/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Reference errors returned when an appointment points at a patient or
// doctor that does not exist. Handlers attribute them to the matching
// input field.
var (
	ErrPatientRef = errors.New("patient related object not found")
	ErrDoctorRef  = errors.New("doctor related object not found")
)

// AppointmentService handles appointment CRUD and reference resolution.
type AppointmentService struct {
	repo     repo.AppointmentRepo
	patients repo.PatientRepo
	doctors  repo.DoctorRepo
}

// NewAppointmentService returns a new AppointmentService.
func NewAppointmentService(r repo.AppointmentRepo, patients repo.PatientRepo, doctors repo.DoctorRepo) *AppointmentService {
	return &AppointmentService{repo: r, patients: patients, doctors: doctors}
}

func (s *AppointmentService) Create(ctx context.Context, a dom.Appointment) (dom.Appointment, error) {
	if err := s.checkRefs(ctx, a); err != nil {
		return dom.Appointment{}, err
	}
	a.ID = uuid.NewString()
	out, err := s.repo.Create(ctx, a)
	if err != nil {
		return dom.Appointment{}, s.mapWriteErr(err)
	}
	return out, nil
}

func (s *AppointmentService) List(ctx context.Context, f repo.AppointmentFilter) ([]dom.Appointment, error) {
	// Filter values come straight from the query string; a malformed
	// reference simply matches nothing instead of erroring the query.
	if f.PatientID != "" && !validUUID(f.PatientID) {
		return nil, nil
	}
	if f.DoctorID != "" && !validUUID(f.DoctorID) {
		return nil, nil
	}
	return s.repo.List(ctx, f)
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (dom.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Appointment{}, ErrNotFound
		}
		return dom.Appointment{}, err
	}
	return a, nil
}

// Update resolves the target first: a missing appointment is not found
// even when the submitted references are dangling too.
func (s *AppointmentService) Update(ctx context.Context, id string, a dom.Appointment) (dom.Appointment, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Appointment{}, ErrNotFound
		}
		return dom.Appointment{}, err
	}
	if err := s.checkRefs(ctx, a); err != nil {
		return dom.Appointment{}, err
	}
	out, err := s.repo.Update(ctx, id, a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Appointment{}, ErrNotFound
		}
		return dom.Appointment{}, s.mapWriteErr(err)
	}
	return out, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// checkRefs verifies both references against current store state. The
// insert/update still runs under the store's foreign keys, so rows
// deleted between this check and the write are caught by mapWriteErr.
func (s *AppointmentService) checkRefs(ctx context.Context, a dom.Appointment) error {
	if !validUUID(a.PatientID) {
		return ErrPatientRef
	}
	if !validUUID(a.DoctorID) {
		return ErrDoctorRef
	}
	ok, err := s.patients.Exists(ctx, a.PatientID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPatientRef
	}
	ok, err = s.doctors.Exists(ctx, a.DoctorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDoctorRef
	}
	return nil
}

func (s *AppointmentService) mapWriteErr(err error) error {
	if utils.IsPGForeignKeyViolation(err) {
		if strings.Contains(utils.PGConstraintName(err), "doctor") {
			return ErrDoctorRef
		}
		return ErrPatientRef
	}
	return err
}

func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
