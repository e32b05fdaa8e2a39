package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peoplehq/people-api/internal/dto"
	apperrors "github.com/peoplehq/people-api/internal/pkg/errors"
	"github.com/peoplehq/people-api/internal/pkg/id"
	"github.com/peoplehq/people-api/internal/validator"
)

// PersonService defines the person service operations the handler depends on
type PersonService interface {
	Create(ctx context.Context, input *dto.CreatePersonRequest) (dto.Person, error)
	List(ctx context.Context) ([]dto.Person, error)
	Get(ctx context.Context, personID uuid.UUID) (dto.Person, error)
}

// PeopleHandler handles person endpoints. Handlers validate input, call the
// service, and serialize the response envelope; all failures return to the
// app-level error boundary.
type PeopleHandler struct {
	personService PersonService
	logger        *zap.Logger
}

// NewPeopleHandler creates a new people handler
func NewPeopleHandler(personService PersonService, logger *zap.Logger) *PeopleHandler {
	return &PeopleHandler{
		personService: personService,
		logger:        logger,
	}
}

// CreatePerson handles POST /person
func (h *PeopleHandler) CreatePerson(c *fiber.Ctx) error {
	var input dto.CreatePersonRequest
	if err := c.BodyParser(&input); err != nil {
		return apperrors.BadRequest("Invalid person payload").WithError(err)
	}

	if err := validator.Validate(&input); err != nil {
		appErr := apperrors.BadRequest("Invalid person payload").WithError(err)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			appErr = appErr.WithDetails(verrs.Fields())
		}
		return appErr
	}

	person, err := h.personService.Create(c.UserContext(), &input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewPersonResponse(person))
}

// ListPeople handles GET /people
func (h *PeopleHandler) ListPeople(c *fiber.Ctx) error {
	people, err := h.personService.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(dto.NewPeopleResponse(people))
}

// GetPerson handles GET /person/:id
func (h *PeopleHandler) GetPerson(c *fiber.Ctx) error {
	personID, err := id.ParsePersonID(c.Params("id"))
	if err != nil {
		// Malformed identifiers are a validation failure, not a miss.
		return apperrors.BadRequest("Invalid person id").
			WithError(err).
			WithDetails([]apperrors.FieldError{
				{Field: "id", Message: "must be a valid time-ordered UUID"},
			})
	}

	person, err := h.personService.Get(c.UserContext(), personID)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewPersonResponse(person))
}
