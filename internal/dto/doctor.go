package dto

import (
	"net/mail"
	"strings"
	"time"

	dom "MedDesk/internal/domain"
	"MedDesk/internal/validation"
)

// DoctorRequest is the JSON body for creating or fully updating a doctor.
type DoctorRequest struct {
	Name        string `json:"name"`
	Specialty   string `json:"specialty"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// Validate checks required fields and email shape. Email uniqueness is
// enforced by the store at write time.
func (r *DoctorRequest) Validate() validation.FieldErrors {
	fe := validation.FieldErrors{}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.Name == "" {
		fe.Add("name", "This field is required.")
	}
	if r.Email != "" {
		if _, err := mail.ParseAddress(r.Email); err != nil {
			fe.Add("email", "Enter a valid email address.")
		}
	}
	return fe
}

// ToDomain builds the domain entity.
func (r *DoctorRequest) ToDomain() dom.Doctor {
	return dom.Doctor{
		Name:        r.Name,
		Specialty:   strings.TrimSpace(r.Specialty),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Email:       r.Email,
	}
}

// DoctorResponse is the wire representation of a doctor.
type DoctorResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Specialty   string    `json:"specialty"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewDoctorResponse renders a doctor for the wire.
func NewDoctorResponse(d dom.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:          d.ID,
		Name:        d.Name,
		Specialty:   d.Specialty,
		PhoneNumber: d.PhoneNumber,
		Email:       d.Email,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// NewDoctorResponses renders a doctor list.
func NewDoctorResponses(list []dom.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, len(list))
	for i := range list {
		out[i] = NewDoctorResponse(list[i])
	}
	return out
}
