package service

import (
	"context"
	"errors"

	dom "MedDesk/internal/domain"
	"MedDesk/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PatientService handles patient CRUD.
type PatientService struct {
	repo repo.PatientRepo
}

// NewPatientService returns a new PatientService.
func NewPatientService(r repo.PatientRepo) *PatientService {
	return &PatientService{repo: r}
}

func (s *PatientService) Create(ctx context.Context, p dom.Patient) (dom.Patient, error) {
	p.ID = uuid.NewString()
	return s.repo.Create(ctx, p)
}

func (s *PatientService) List(ctx context.Context) ([]dom.Patient, error) {
	return s.repo.List(ctx)
}

func (s *PatientService) GetByID(ctx context.Context, id string) (dom.Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Patient{}, ErrNotFound
		}
		return dom.Patient{}, err
	}
	return p, nil
}

func (s *PatientService) Update(ctx context.Context, id string, p dom.Patient) (dom.Patient, error) {
	out, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Patient{}, ErrNotFound
		}
		return dom.Patient{}, err
	}
	return out, nil
}

// Delete removes the patient and, in the same transaction, every
// appointment that references it.
func (s *PatientService) Delete(ctx context.Context, id string) error {
	err := s.repo.DeleteCascade(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
