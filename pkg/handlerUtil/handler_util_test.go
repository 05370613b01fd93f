package handlerUtil

import (
	"BlogGolang/pkg/log"
	"BlogGolang/pkg/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string `validate:"required"`
	Name  string `validate:"min=3"`
}

func serve(t *testing.T, debug bool, err error) (int, ErrorResponse) {
	t.Helper()

	h := New(log.NewDiscardLogger(), debug)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", err, c.Path(), "test")
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))

	return resp.StatusCode, body
}

func TestHandle_ResponseError(t *testing.T) {
	status, body := serve(t, false, response.NewError(http.StatusNotFound, "Blog not found"))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Blog not found", body.Error)
	assert.Empty(t, body.Details)
}

func TestHandle_ValidationError(t *testing.T) {
	err := validator.New().Struct(sample{Name: "ab"})

	status, body := serve(t, false, err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, "Validation failed: Title is required; Name must be at least 3 characters", body.Error)
}

func TestHandle_UnexpectedErrorHidesDetailsOutsideDevelopment(t *testing.T) {
	status, body := serve(t, false, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server error", body.Error)
	assert.Empty(t, body.Details)
	assert.NotEmpty(t, body.TraceID)
}

func TestHandle_UnexpectedErrorShowsDetailsInDevelopment(t *testing.T) {
	status, body := serve(t, true, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server error", body.Error)
	assert.Equal(t, "pq: connection refused", body.Details)
}

func TestHandle_FiberClientError(t *testing.T) {
	status, body := serve(t, false, fiber.ErrUnprocessableEntity)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, fiber.ErrUnprocessableEntity.Message, body.Error)
}
