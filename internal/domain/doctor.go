package domain

import "time"

// Doctor is the domain entity for a doctor.
// Email is unique when set; an empty string means no email on record.
type Doctor struct {
	ID          string
	Name        string
	Specialty   string
	PhoneNumber string
	Email       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
