package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"marketplace-service/internal/module/wallet/handler"
	"marketplace-service/internal/module/wallet/mocks"
	"marketplace-service/internal/module/wallet/models/request"
	"marketplace-service/internal/module/wallet/models/response"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h   *handler.WalletHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.WalletHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helpers.LocalUserID, int64(30))
		c.Locals(helpers.LocalRole, "provider")
		return c.Next()
	})
	app.Get("/wallet", h.GetWallet)
	app.Post("/wallet/withdrawals", h.RequestWithdrawal)
	app.Patch("/admin/withdrawals/:id", h.ResolveWithdrawal)
	app.Get("/bookings/:id/payment", h.GetPayment)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestGetWallet(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("GetWallet", mock.Anything, int64(30)).Return(response.Wallet{UserID: 30, Balance: decimal.RequireFromString("90.00")}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/wallet", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequestWithdrawal(t *testing.T) {
	setup()
	defer teardown()

	t.Run("created", func(t *testing.T) {
		ucm.On("RequestWithdrawal", mock.Anything, int64(30), mock.MatchedBy(func(r *request.Withdrawal) bool {
			return r.Amount.Equal(decimal.RequireFromString("25.50")) && r.Method == "bank"
		})).Return(response.Withdrawal{ID: 1, Status: "pending"}, nil).Once()

		req := httptest.NewRequest("POST", "/wallet/withdrawals", bytes.NewBufferString(`{"amount":"25.50","method":"bank","account_details":"FR76 0000"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		ucm.On("RequestWithdrawal", mock.Anything, int64(30), mock.Anything).Return(response.Withdrawal{}, errors.InsufficientFunds("too much")).Once()

		req := httptest.NewRequest("POST", "/wallet/withdrawals", bytes.NewBufferString(`{"amount":1000,"method":"bank","account_details":"FR76 0000"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("missing method", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/wallet/withdrawals", bytes.NewBufferString(`{"amount":10,"account_details":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestResolveWithdrawal(t *testing.T) {
	setup()
	defer teardown()

	t.Run("bad decision", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/admin/withdrawals/4", bytes.NewBufferString(`{"decision":"maybe"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("approve", func(t *testing.T) {
		ucm.On("ResolveWithdrawal", mock.Anything, int64(4), &request.ResolveWithdrawal{Decision: "approve", AdminNote: "ok"}).
			Return(response.Withdrawal{ID: 4, Status: "completed"}, nil).Once()

		req := httptest.NewRequest("PATCH", "/admin/withdrawals/4", bytes.NewBufferString(`{"decision":"approve","admin_note":"ok"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestGetPayment(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("GetPayment", mock.Anything, int64(9), int64(30), "provider").Return(response.Payment{}, errors.Forbidden("not a participant of this booking"))

	resp, err := app.Test(httptest.NewRequest("GET", "/bookings/9/payment", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/bookings/abc/payment", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
