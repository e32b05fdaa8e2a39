package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peoplehq/people-api/internal/dto"
	apperrors "github.com/peoplehq/people-api/internal/pkg/errors"
	"github.com/peoplehq/people-api/internal/pkg/id"
)

type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) Create(ctx context.Context, input *dto.CreatePersonRequest) (dto.Person, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(dto.Person), args.Error(1)
}

func (m *MockPersonService) List(ctx context.Context) ([]dto.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.Person), args.Error(1)
}

func (m *MockPersonService) Get(ctx context.Context, personID uuid.UUID) (dto.Person, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).(dto.Person), args.Error(1)
}

// newTestApp wires the handler into a fiber app with the same error
// boundary shape as the server.
func newTestApp(svc PersonService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr := apperrors.GetAppError(err); appErr != nil {
				body := fiber.Map{
					"code":      appErr.Code,
					"message":   appErr.Message,
					"requestId": "test-request",
				}
				if len(appErr.Details) > 0 {
					body["details"] = appErr.Details
				}
				return c.Status(appErr.StatusCode).JSON(fiber.Map{"error": body})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fiber.Map{
					"code":      apperrors.CodeInternal,
					"message":   "An unexpected error occurred",
					"requestId": "test-request",
				},
			})
		},
	})

	h := NewPeopleHandler(svc, zap.NewNop())
	app.Post("/person", h.CreatePerson)
	app.Get("/people", h.ListPeople)
	app.Get("/person/:id", h.GetPerson)
	return app
}

type errorEnvelope struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
		Details   []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func testPerson(name, surname string, age *int) dto.Person {
	pid, _ := id.NewPersonID()
	return dto.Person{
		ID:        pid.String(),
		Name:      name,
		Surname:   surname,
		Age:       age,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func intPtr(v int) *int { return &v }

func TestCreatePerson(t *testing.T) {
	t.Run("creates person with valid payload", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		created := testPerson("Ada", "Lovelace", intPtr(36))
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(input *dto.CreatePersonRequest) bool {
			return input.Name == "Ada" && input.Surname == "Lovelace" && input.Age != nil && *input.Age == 36
		})).Return(created, nil)

		app := newTestApp(mockSvc)
		body := bytes.NewBufferString(`{"name":"Ada","surname":"Lovelace","age":36}`)
		req := httptest.NewRequest(http.MethodPost, "/person", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var envelope dto.PersonResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, created.ID, envelope.Data.ID)
		assert.Equal(t, "Ada", envelope.Data.Name)
		assert.Equal(t, "Lovelace", envelope.Data.Surname)
		require.NotNil(t, envelope.Data.Age)
		assert.Equal(t, 36, *envelope.Data.Age)

		parsed, err := uuid.Parse(envelope.Data.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		_, err = time.Parse(time.RFC3339, envelope.Data.CreatedAt)
		assert.NoError(t, err)

		mockSvc.AssertExpectations(t)
	})

	t.Run("creates person without age", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		created := testPerson("Grace", "Hopper", nil)
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(input *dto.CreatePersonRequest) bool {
			return input.Name == "Grace" && input.Age == nil
		})).Return(created, nil)

		app := newTestApp(mockSvc)
		body := bytes.NewBufferString(`{"name":"Grace","surname":"Hopper"}`)
		req := httptest.NewRequest(http.MethodPost, "/person", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"age":null`)
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		tests := []struct {
			name    string
			payload string
			field   string
		}{
			{"empty name", `{"name":"","surname":"Lovelace"}`, "name"},
			{"missing surname", `{"name":"Ada"}`, "surname"},
			{"negative age", `{"name":"Ada","surname":"Lovelace","age":-1}`, "age"},
			{"age above maximum", `{"name":"Ada","surname":"Lovelace","age":121}`, "age"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockSvc := new(MockPersonService)
				app := newTestApp(mockSvc)

				req := httptest.NewRequest(http.MethodPost, "/person", bytes.NewBufferString(tt.payload))
				req.Header.Set("Content-Type", "application/json")

				resp, err := app.Test(req)
				require.NoError(t, err)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				var envelope errorEnvelope
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
				assert.Equal(t, apperrors.CodeBadRequest, envelope.Error.Code)
				assert.Equal(t, "Invalid person payload", envelope.Error.Message)
				require.NotEmpty(t, envelope.Error.Details)

				found := false
				for _, d := range envelope.Error.Details {
					if d.Field == tt.field {
						found = true
						assert.NotEmpty(t, d.Message)
					}
				}
				assert.True(t, found, "expected a detail for field %q", tt.field)

				mockSvc.AssertNotCalled(t, "Create")
			})
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		app := newTestApp(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/person", bytes.NewBufferString(`{not json`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var envelope errorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, apperrors.CodeBadRequest, envelope.Error.Code)
	})

	t.Run("propagates service errors to the boundary", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(dto.Person{}, fmt.Errorf("connection refused"))

		app := newTestApp(mockSvc)
		body := bytes.NewBufferString(`{"name":"Ada","surname":"Lovelace"}`)
		req := httptest.NewRequest(http.MethodPost, "/person", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var envelope errorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, apperrors.CodeInternal, envelope.Error.Code)
		assert.Equal(t, "An unexpected error occurred", envelope.Error.Message)
	})
}

func TestListPeople(t *testing.T) {
	t.Run("returns empty collection", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		mockSvc.On("List", mock.Anything).Return([]dto.Person{}, nil)

		app := newTestApp(mockSvc)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/people", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[]}`, string(raw))
	})

	t.Run("preserves service ordering", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		second := testPerson("Second", "Person", nil)
		first := testPerson("First", "Person", nil)
		mockSvc.On("List", mock.Anything).Return([]dto.Person{second, first}, nil)

		app := newTestApp(mockSvc)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/people", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var envelope dto.PeopleResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		require.Len(t, envelope.Data, 2)
		assert.Equal(t, "Second", envelope.Data[0].Name)
		assert.Equal(t, "First", envelope.Data[1].Name)
	})
}

func TestGetPerson(t *testing.T) {
	t.Run("returns person by id", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		person := testPerson("Ada", "Lovelace", intPtr(36))
		personID := uuid.MustParse(person.ID)
		mockSvc.On("Get", mock.Anything, personID).Return(person, nil)

		app := newTestApp(mockSvc)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/"+person.ID, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var envelope dto.PersonResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, person.ID, envelope.Data.ID)
		assert.Equal(t, "Ada", envelope.Data.Name)
	})

	t.Run("repeated reads return identical bodies", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		person := testPerson("Ada", "Lovelace", intPtr(36))
		personID := uuid.MustParse(person.ID)
		mockSvc.On("Get", mock.Anything, personID).Return(person, nil)

		app := newTestApp(mockSvc)

		first, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/"+person.ID, nil))
		require.NoError(t, err)
		firstBody, err := io.ReadAll(first.Body)
		require.NoError(t, err)

		second, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/"+person.ID, nil))
		require.NoError(t, err)
		secondBody, err := io.ReadAll(second.Body)
		require.NoError(t, err)

		assert.Equal(t, firstBody, secondBody)
	})

	t.Run("rejects malformed id with 400", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		app := newTestApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var envelope errorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, apperrors.CodeBadRequest, envelope.Error.Code)
		assert.Equal(t, "Invalid person id", envelope.Error.Message)
		require.NotEmpty(t, envelope.Error.Details)
		assert.Equal(t, "id", envelope.Error.Details[0].Field)

		mockSvc.AssertNotCalled(t, "Get")
	})

	t.Run("returns 404 for unassigned id", func(t *testing.T) {
		mockSvc := new(MockPersonService)
		pid, err := id.NewPersonID()
		require.NoError(t, err)
		notFound := apperrors.NotFound(fmt.Sprintf("Person with id %s not found", pid)).
			WithContext("id", pid.String())
		mockSvc.On("Get", mock.Anything, pid).Return(dto.Person{}, notFound)

		app := newTestApp(mockSvc)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/person/"+pid.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var envelope errorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, apperrors.CodeNotFound, envelope.Error.Code)
		assert.Contains(t, envelope.Error.Message, pid.String())
	})
}
