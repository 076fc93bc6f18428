package dto

import (
	"fmt"
	"strings"
	"time"

	dom "MedDesk/internal/domain"
	"MedDesk/internal/validation"
)

// AppointmentRequest is the JSON body for creating or fully updating an
// appointment. patient and doctor carry the referenced IDs; the
// denormalized names only appear in responses.
type AppointmentRequest struct {
	Patient         string   `json:"patient"`
	Doctor          string   `json:"doctor"`
	AppointmentTime DateTime `json:"appointment_time"`
	Reason          string   `json:"reason"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes"`
}

// Validate checks required fields and the status choice. An empty status
// defaults to Scheduled. Reference existence is re-verified by the
// service at write time.
func (r *AppointmentRequest) Validate() validation.FieldErrors {
	fe := validation.FieldErrors{}
	r.Patient = strings.TrimSpace(r.Patient)
	r.Doctor = strings.TrimSpace(r.Doctor)
	r.Status = strings.TrimSpace(r.Status)

	if r.Patient == "" {
		fe.Add("patient", "This field is required.")
	}
	if r.Doctor == "" {
		fe.Add("doctor", "This field is required.")
	}
	if r.AppointmentTime.Ptr() == nil {
		fe.Add("appointment_time", "This field is required.")
	}
	if r.Status == "" {
		r.Status = dom.StatusScheduled
	} else if !dom.ValidStatus(r.Status) {
		fe.Add("status", fmt.Sprintf("%q is not a valid choice.", r.Status))
	}
	return fe
}

// ToDomain builds the domain entity. Call after Validate.
func (r *AppointmentRequest) ToDomain() dom.Appointment {
	return dom.Appointment{
		PatientID:       r.Patient,
		DoctorID:        r.Doctor,
		AppointmentTime: *r.AppointmentTime.Ptr(),
		Reason:          strings.TrimSpace(r.Reason),
		Status:          r.Status,
		Notes:           strings.TrimSpace(r.Notes),
	}
}

// AppointmentResponse is the wire representation of an appointment,
// including the read-only patient_name/doctor_name convenience fields.
type AppointmentResponse struct {
	ID              string    `json:"id"`
	Patient         string    `json:"patient"`
	PatientName     string    `json:"patient_name"`
	Doctor          string    `json:"doctor"`
	DoctorName      string    `json:"doctor_name"`
	AppointmentTime time.Time `json:"appointment_time"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewAppointmentResponse renders an appointment for the wire.
func NewAppointmentResponse(a dom.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		Patient:         a.PatientID,
		PatientName:     a.PatientName,
		Doctor:          a.DoctorID,
		DoctorName:      a.DoctorName,
		AppointmentTime: a.AppointmentTime,
		Reason:          a.Reason,
		Status:          a.Status,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// NewAppointmentResponses renders an appointment list.
func NewAppointmentResponses(list []dom.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(list))
	for i := range list {
		out[i] = NewAppointmentResponse(list[i])
	}
	return out
}
