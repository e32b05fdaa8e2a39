// Package mapper converts storage rows to API-facing entities. Mapping is
// pure and deterministic: no I/O, no side effects.
package mapper

import (
	"time"

	"github.com/peoplehq/people-api/internal/domain"
	"github.com/peoplehq/people-api/internal/dto"
)

// PersonRowToPerson maps a people row to the API entity. Identifier and
// names pass through unchanged; a nil age stays an explicit null; the
// creation timestamp serializes as ISO-8601 in UTC.
func PersonRowToPerson(row domain.Person) dto.Person {
	return dto.Person{
		ID:        row.ID.String(),
		Name:      row.Name,
		Surname:   row.Surname,
		Age:       row.Age,
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// PersonRowsToPeople maps a slice of rows, preserving order.
func PersonRowsToPeople(rows []domain.Person) []dto.Person {
	people := make([]dto.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, PersonRowToPerson(row))
	}
	return people
}
