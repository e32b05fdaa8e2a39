package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/peoplehq/people-api/internal/domain"
	"github.com/peoplehq/people-api/internal/pkg/database"
	"github.com/peoplehq/people-api/internal/pkg/id"
	"github.com/peoplehq/people-api/internal/pkg/logger"
)

// querier is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx,
// so inserts can run inside a caller-supplied transaction or against the
// default pool.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PersonRepository handles person data operations in PostgreSQL
type PersonRepository struct {
	db *database.PostgresDB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *database.PostgresDB) *PersonRepository {
	return &PersonRepository{db: db}
}

const insertPersonQuery = `
	INSERT INTO people (id, name, surname, age)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, surname, age, created_at
`

const selectPeopleQuery = `
	SELECT id, name, surname, age, created_at
	FROM people
	ORDER BY created_at DESC
`

const selectPersonByIDQuery = `
	SELECT id, name, surname, age, created_at
	FROM people
	WHERE id = $1
	ORDER BY created_at DESC
`

// Insert persists a new person row against the default connection. The row
// ID is a freshly generated UUIDv7; created_at is server-assigned. Returns
// the persisted row including generated fields.
func (r *PersonRepository) Insert(ctx context.Context, input domain.CreatePersonInput) (domain.Person, error) {
	return r.insert(ctx, r.db.Pool, input)
}

// InsertTx persists a new person row within the supplied transaction.
func (r *PersonRepository) InsertTx(ctx context.Context, tx pgx.Tx, input domain.CreatePersonInput) (domain.Person, error) {
	return r.insert(ctx, tx, input)
}

func (r *PersonRepository) insert(ctx context.Context, q querier, input domain.CreatePersonInput) (domain.Person, error) {
	logger.Ctx(ctx).Debug("inserting person",
		zap.String("name", input.Name),
		zap.String("surname", input.Surname),
	)

	personID, err := id.NewPersonID()
	if err != nil {
		return domain.Person{}, err
	}

	var person domain.Person
	err = q.QueryRow(ctx, insertPersonQuery,
		personID,
		input.Name,
		input.Surname,
		input.Age,
	).Scan(
		&person.ID,
		&person.Name,
		&person.Surname,
		&person.Age,
		&person.CreatedAt,
	)
	if err != nil {
		return domain.Person{}, fmt.Errorf("failed to insert person: %w", err)
	}

	return person, nil
}

// Select retrieves people ordered by creation timestamp descending. A nil
// filter returns all rows; no match returns an empty slice, never an error.
func (r *PersonRepository) Select(ctx context.Context, filter *uuid.UUID) ([]domain.Person, error) {
	logger.Ctx(ctx).Debug("selecting people", zap.Bool("filtered", filter != nil))

	query := selectPeopleQuery
	var args []any
	if filter != nil {
		query = selectPersonByIDQuery
		args = append(args, *filter)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select people: %w", err)
	}
	defer rows.Close()

	people := make([]domain.Person, 0)
	for rows.Next() {
		var person domain.Person
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Surname,
			&person.Age,
			&person.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read people rows: %w", err)
	}

	return people, nil
}
