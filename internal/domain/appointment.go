package domain

import "time"

// Appointment statuses. Anything else is rejected at validation time.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// ValidStatus reports whether s is one of the three appointment statuses.
func ValidStatus(s string) bool {
	return s == StatusScheduled || s == StatusCompleted || s == StatusCancelled
}

// Appointment links one patient with one doctor at a point in time.
// PatientName and DoctorName are denormalized read-only fields filled in
// by the repository on reads; they are never written back.
type Appointment struct {
	ID              string
	PatientID       string
	DoctorID        string
	AppointmentTime time.Time
	Reason          string
	Status          string
	Notes           string

	PatientName string
	DoctorName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
