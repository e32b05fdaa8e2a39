package domain

import (
	"time"

	"github.com/google/uuid"
)

// Person is a row of the people table. ID is a time-ordered UUIDv7 assigned
// at insert; CreatedAt is server-assigned and immutable. Age is nullable
// and, when present, always within [0, 120].
type Person struct {
	ID        uuid.UUID
	Name      string
	Surname   string
	Age       *int
	CreatedAt time.Time
}

// CreatePersonInput carries the fields the repository persists on insert.
type CreatePersonInput struct {
	Name    string
	Surname string
	Age     *int
}
