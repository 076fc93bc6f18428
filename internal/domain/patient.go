package domain

import "time"

// Patient is the domain entity for a hospital patient.
// Does not depend on Gin, Postgres or Redis.
type Patient struct {
	ID          string
	Name        string
	DateOfBirth *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
