package helpers_test

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRespError(t *testing.T) {
	logMock := log_internal.Setup()

	testCases := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedKind    string
		expectedMessage string
	}{
		{"taxonomy error", errors.SlotTaken("slot already booked"), fiber.StatusConflict, "SlotTaken", "slot already booked"},
		{"internal error", errors.InternalServerError("error find wallet"), fiber.StatusInternalServerError, "InternalServerError", "error find wallet"},
		{"foreign error is masked", fmt.Errorf("dial tcp: refused"), fiber.StatusInternalServerError, "InternalServerError", "internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return helpers.RespError(c, logMock, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var out helpers.Response
			assert.NoError(t, json.Unmarshal(body, &out))
			assert.False(t, out.Success)
			assert.Equal(t, tc.expectedKind, out.Kind)
			assert.Equal(t, tc.expectedMessage, out.Message)
		})
	}
}

func TestValidationMessage(t *testing.T) {
	type payload struct {
		ServiceID int64  `validate:"required"`
		Date      string `validate:"required,datetime=2006-01-02"`
	}

	err := validator.New().Struct(payload{Date: "01/06/2024"})
	verr := helpers.ValidationMessage(err)

	assert.True(t, errors.Is(verr, errors.KindValidation))
	assert.Equal(t, "serviceid: required, date: datetime", verr.Error())
}
