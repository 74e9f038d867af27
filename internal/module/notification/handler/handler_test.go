package handler_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"marketplace-service/internal/module/notification/handler"
	"marketplace-service/internal/module/notification/mocks"
	"marketplace-service/internal/module/notification/models/request"
	"marketplace-service/internal/module/notification/models/response"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h   *handler.NotificationHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.NotificationHandler{
		Log:     log_internal.Setup(),
		Usecase: ucm,
	}
	app = fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helpers.LocalUserID, int64(7))
		c.Locals(helpers.LocalRole, "client")
		return c.Next()
	})
	app.Get("/notifications", h.List)
	app.Get("/notifications/unread-count", h.UnreadCount)
	app.Patch("/notifications/read-all", h.MarkAllRead)
	app.Patch("/notifications/:id/read", h.MarkRead)
	app.Post("/private/notifications/sweep", h.TriggerSweep)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestList(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("List", mock.Anything, int64(7), request.List{UnreadOnly: true, Limit: 5, Offset: 0}).
		Return([]response.Notification{{ID: 1, Title: "New booking"}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/notifications?unread=true&limit=5", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}

func TestMarkRead(t *testing.T) {
	setup()
	defer teardown()

	testCases := []struct {
		name           string
		path           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success",
			path: "/notifications/3/read",
			setupMock: func() {
				ucm.On("MarkRead", mock.Anything, int64(7), int64(3)).Return(response.Notification{ID: 3, IsRead: true}, nil).Once()
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name: "not the recipient",
			path: "/notifications/4/read",
			setupMock: func() {
				ucm.On("MarkRead", mock.Anything, int64(7), int64(4)).Return(response.Notification{}, errors.NotFound("notification not found")).Once()
			},
			expectedStatus: fiber.StatusNotFound,
		},
		{
			name:           "bad id",
			path:           "/notifications/zero/read",
			setupMock:      func() {},
			expectedStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, err := app.Test(httptest.NewRequest("PATCH", tc.path, nil))
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
		})
	}
}

func TestMarkAllRead(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("MarkAllRead", mock.Anything, int64(7)).Return(response.ReadAll{Updated: 2}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("PATCH", "/notifications/read-all", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSweep(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("Sweep", mock.Anything).Return(response.Sweep{Delivered: 2}, nil).Once()
	resp, err := app.Test(httptest.NewRequest("POST", "/private/notifications/sweep", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	ucm.On("Sweep", mock.Anything).Return(response.Sweep{}, errors.InternalServerError("error claim due notifications")).Once()
	err = h.SweepTask(context.Background(), asynq.NewTask("notification:sweep", nil))
	assert.Error(t, err)
}

func TestConsumeRetry(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("ConsumeRetry", mock.Anything, request.Emit{UserID: 7, Title: "Booking confirmed", Message: "m", Type: "booking"}).Return(nil).Once()

	msg := message.NewMessage(watermill.NewUUID(), []byte(`{"user_id":7,"title":"Booking confirmed","message":"m","type":"booking"}`))
	assert.NoError(t, h.ConsumeRetry(msg))

	bad := message.NewMessage(watermill.NewUUID(), []byte(`{not json`))
	assert.Error(t, h.ConsumeRetry(bad))
	ucm.AssertExpectations(t)
}
