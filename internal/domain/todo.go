package domain

import "time"

// Todo is the domain entity for a to-do item.
// Unlike the hospital entities it keeps a sequential integer ID.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}
