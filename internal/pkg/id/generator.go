package id

import (
	"fmt"

	"github.com/google/uuid"
)

// NewPersonID generates a time-ordered UUIDv7 for a new person row. The
// textual encoding of v7 IDs sorts consistently with creation order.
func NewPersonID() (uuid.UUID, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate uuidv7: %w", err)
	}
	return u, nil
}

// NewRequestID generates a request correlation ID.
func NewRequestID() string {
	return uuid.New().String()
}

// ParsePersonID parses a person ID in its canonical textual encoding and
// rejects any UUID that is not version 7. Malformed input is a validation
// failure, not a not-found condition; callers map the error accordingly.
func ParsePersonID(s string) (uuid.UUID, error) {
	// uuid.Parse also accepts urn-prefixed, braced, and bare-hex forms;
	// only the 36-character hyphenated encoding is a valid person ID.
	if len(s) != 36 {
		return uuid.Nil, fmt.Errorf("invalid person id: expected canonical encoding, got %d characters", len(s))
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid person id: %w", err)
	}
	if u.Version() != 7 {
		return uuid.Nil, fmt.Errorf("invalid person id: expected uuid version 7, got %d", u.Version())
	}
	return u, nil
}

// IsValidPersonID reports whether s is a well-formed person ID.
func IsValidPersonID(s string) bool {
	_, err := ParsePersonID(s)
	return err == nil
}
