package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"marketplace-service/internal/module/provider/handler"
	"marketplace-service/internal/module/provider/mocks"
	"marketplace-service/internal/module/provider/models/request"
	"marketplace-service/internal/module/provider/models/response"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.ProviderHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.ProviderHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	p := app.Group("/provider", func(c *fiber.Ctx) error {
		c.Locals(helpers.LocalUserID, int64(7))
		c.Locals(helpers.LocalRole, "provider")
		return c.Next()
	})
	p.Get("/profile", h.GetProfile)
	p.Put("/profile", h.UpdateProfile)
	p.Put("/profile/location", h.UpdateLocation)
	p.Post("/documents", h.UploadDocument)
	p.Get("/documents", h.ListDocuments)
	p.Delete("/documents/:id", h.DeleteDocument)
	p.Get("/status", h.VerificationStatus)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func do(t *testing.T, method, path, body string) int {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestGetProfile(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("GetProfile", mock.Anything, int64(7)).Return(response.Profile{ID: 7}, nil).Once()
	assert.Equal(t, fiber.StatusOK, do(t, "GET", "/provider/profile", ""))

	ucm.On("GetProfile", mock.Anything, int64(7)).Return(response.Profile{}, errors.NotFound("provider not found")).Once()
	assert.Equal(t, fiber.StatusNotFound, do(t, "GET", "/provider/profile", ""))
}

func TestUpdateProfile(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("UpdateProfile", mock.Anything, int64(7), mock.MatchedBy(func(req *request.UpdateProfile) bool {
		return req.Bio != nil && *req.Bio == "hello" && req.Name == nil
	})).Return(response.Profile{ID: 7, Bio: "hello"}, nil).Once()

	assert.Equal(t, fiber.StatusOK, do(t, "PUT", "/provider/profile", `{"bio":"hello"}`))
	assert.Equal(t, fiber.StatusBadRequest, do(t, "PUT", "/provider/profile", `{"bio":`))
}

func TestUpdateLocation(t *testing.T) {
	setup()
	defer teardown()

	testCases := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"missing longitude", `{"latitude":48.85}`, fiber.StatusUnprocessableEntity},
		{"latitude out of range", `{"latitude":91,"longitude":2.35}`, fiber.StatusUnprocessableEntity},
		{"equator is valid", `{"latitude":0,"longitude":2.35}`, fiber.StatusOK},
	}

	ucm.On("UpdateLocation", mock.Anything, int64(7), mock.Anything).Return(response.Profile{ID: 7}, nil).Once()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, do(t, "PUT", "/provider/profile/location", tc.body))
		})
	}
}

func TestUploadDocument(t *testing.T) {
	setup()
	defer teardown()

	t.Run("missing file", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/provider/documents", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("uploaded", func(t *testing.T) {
		body := &bytes.Buffer{}
		w := multipart.NewWriter(body)
		require.NoError(t, w.WriteField("type", "id_card"))
		part, err := w.CreateFormFile("file", "id.pdf")
		require.NoError(t, err)
		_, _ = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, w.Close())

		ucm.On("UploadDocument", mock.Anything, int64(7), "id_card", mock.MatchedBy(func(f *multipart.FileHeader) bool {
			return f.Filename == "id.pdf"
		})).Return(response.Document{ID: 11, Status: "pending"}, nil).Once()

		req := httptest.NewRequest("POST", "/provider/documents", body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})
}

func TestDeleteDocument(t *testing.T) {
	setup()
	defer teardown()

	assert.Equal(t, fiber.StatusBadRequest, do(t, "DELETE", "/provider/documents/abc", ""))

	ucm.On("DeleteDocument", mock.Anything, int64(7), int64(11)).Return(errors.NotFound("document not found")).Once()
	assert.Equal(t, fiber.StatusNotFound, do(t, "DELETE", "/provider/documents/11", ""))

	ucm.On("DeleteDocument", mock.Anything, int64(7), int64(12)).Return(nil).Once()
	assert.Equal(t, fiber.StatusOK, do(t, "DELETE", "/provider/documents/12", ""))
}

func TestListDocumentsAndStatus(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("ListDocuments", mock.Anything, int64(7)).Return([]response.Document{}, nil).Once()
	assert.Equal(t, fiber.StatusOK, do(t, "GET", "/provider/documents", ""))

	ucm.On("VerificationStatus", mock.Anything, int64(7)).Return(response.Verification{Verified: true}, nil).Once()
	assert.Equal(t, fiber.StatusOK, do(t, "GET", "/provider/status", ""))
}
