package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peoplehq/people-api/internal/domain"
	"github.com/peoplehq/people-api/internal/dto"
	"github.com/peoplehq/people-api/internal/mapper"
	apperrors "github.com/peoplehq/people-api/internal/pkg/errors"
	"github.com/peoplehq/people-api/internal/pkg/logger"
)

// PersonRepository defines the person repository operations the service
// depends on.
type PersonRepository interface {
	Insert(ctx context.Context, input domain.CreatePersonInput) (domain.Person, error)
	Select(ctx context.Context, filter *uuid.UUID) ([]domain.Person, error)
}

// PersonService orchestrates person operations. Input validation happens
// upstream at the handler; repository failures propagate untranslated.
type PersonService struct {
	personRepo PersonRepository
}

// NewPersonService creates a new person service
func NewPersonService(personRepo PersonRepository) *PersonService {
	return &PersonService{personRepo: personRepo}
}

// Create inserts a new person and returns the mapped entity.
func (s *PersonService) Create(ctx context.Context, input *dto.CreatePersonRequest) (dto.Person, error) {
	logger.Ctx(ctx).Debug("creating person",
		zap.String("name", input.Name),
		zap.String("surname", input.Surname),
	)

	row, err := s.personRepo.Insert(ctx, domain.CreatePersonInput{
		Name:    input.Name,
		Surname: input.Surname,
		Age:     input.Age,
	})
	if err != nil {
		return dto.Person{}, err
	}

	return mapper.PersonRowToPerson(row), nil
}

// List returns every person, most recently created first.
func (s *PersonService) List(ctx context.Context) ([]dto.Person, error) {
	logger.Ctx(ctx).Debug("listing all people")

	rows, err := s.personRepo.Select(ctx, nil)
	if err != nil {
		return nil, err
	}

	return mapper.PersonRowsToPeople(rows), nil
}

// Get returns the person with the given ID, or a NOT_FOUND error carrying
// the requested identifier in its context.
func (s *PersonService) Get(ctx context.Context, personID uuid.UUID) (dto.Person, error) {
	logger.Ctx(ctx).Debug("getting person by id", zap.String("person_id", personID.String()))

	rows, err := s.personRepo.Select(ctx, &personID)
	if err != nil {
		return dto.Person{}, err
	}

	if len(rows) == 0 {
		logger.Ctx(ctx).Warn("person not found", zap.String("person_id", personID.String()))
		return dto.Person{}, apperrors.NotFound(
			fmt.Sprintf("Person with id %s not found", personID),
		).WithContext("id", personID.String())
	}

	return mapper.PersonRowToPerson(rows[0]), nil
}
