package dto

import (
	"strings"
	"time"

	dom "MedDesk/internal/domain"
	"MedDesk/internal/validation"
)

// PatientRequest is the JSON body for creating or fully updating a patient.
type PatientRequest struct {
	Name        string `json:"name"`
	DateOfBirth Date   `json:"date_of_birth"`
}

// Validate checks required fields.
func (r *PatientRequest) Validate() validation.FieldErrors {
	fe := validation.FieldErrors{}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		fe.Add("name", "This field is required.")
	}
	return fe
}

// ToDomain builds the domain entity. ID and timestamps are assigned by
// the service and store.
func (r *PatientRequest) ToDomain() dom.Patient {
	return dom.Patient{Name: r.Name, DateOfBirth: r.DateOfBirth.Ptr()}
}

// PatientResponse is the wire representation of a patient.
type PatientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth *string   `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPatientResponse renders a patient for the wire.
func NewPatientResponse(p dom.Patient) PatientResponse {
	return PatientResponse{
		ID:          p.ID,
		Name:        p.Name,
		DateOfBirth: formatDate(p.DateOfBirth),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewPatientResponses renders a patient list.
func NewPatientResponses(list []dom.Patient) []PatientResponse {
	out := make([]PatientResponse, len(list))
	for i := range list {
		out[i] = NewPatientResponse(list[i])
	}
	return out
}
