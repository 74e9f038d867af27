package router

import (
	booking "marketplace-service/internal/module/booking/handler"
	catalog "marketplace-service/internal/module/catalog/handler"
	notification "marketplace-service/internal/module/notification/handler"
	provider "marketplace-service/internal/module/provider/handler"
	user "marketplace-service/internal/module/user/handler"
	wallet "marketplace-service/internal/module/wallet/handler"
	"marketplace-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

const (
	roleClient   = "client"
	roleProvider = "provider"
	roleAdmin    = "admin"
)

type Handlers struct {
	User         *user.UserHandler
	Provider     *provider.ProviderHandler
	Catalog      *catalog.CatalogHandler
	Booking      *booking.BookingHandler
	Wallet       *wallet.WalletHandler
	Notification *notification.NotificationHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	auth := Api.Group("/auth")
	auth.Post("/client/register", h.User.RegisterClient)
	auth.Post("/provider/register", h.User.RegisterProvider)
	auth.Post("/login", h.User.Login)
	auth.Post("/google", h.User.GoogleLogin)
	auth.Post("/logout", m.ValidateToken, h.User.Logout)
	auth.Post("/forgot-password", h.User.ForgotPassword)
	auth.Post("/reset-password", h.User.ResetPassword)

	// public catalog
	Api.Get("/categories", h.Catalog.ListCategories)
	Api.Get("/categories/stats", h.Catalog.CategoryStats)
	Api.Get("/categories/popular", h.Catalog.PopularCategories)
	Api.Get("/categories/trending", h.Catalog.TrendingCategories)
	Api.Get("/categories/autocomplete", h.Catalog.Autocomplete)
	Api.Get("/categories/:id", h.Catalog.GetCategory)
	Api.Get("/categories/:id/services", h.Catalog.CategoryServices)
	Api.Get("/services", h.Catalog.ListServices)
	Api.Get("/services/category/:categoryId", h.Catalog.ServicesByCategory)

	client := Api.Group("/client", m.ValidateToken, m.RequireRole(roleClient))
	client.Get("/me", h.User.Me)
	client.Put("/update", h.User.UpdateProfile)
	client.Post("/avatar", h.User.UploadAvatar)
	client.Delete("/avatar", h.User.DeleteAvatar)
	client.Post("/bookings", h.Booking.Create)
	client.Get("/bookings", h.Booking.ListClient)
	client.Delete("/bookings/:id/cancel", h.Booking.Cancel)

	prov := Api.Group("/provider", m.ValidateToken, m.RequireRole(roleProvider))
	prov.Get("/profile", h.Provider.GetProfile)
	prov.Put("/profile", h.Provider.UpdateProfile)
	prov.Put("/profile/location", h.Provider.UpdateLocation)
	prov.Post("/avatar", h.User.UploadAvatar)
	prov.Delete("/avatar", h.User.DeleteAvatar)
	prov.Get("/status", h.Provider.VerificationStatus)
	prov.Post("/documents", h.Provider.UploadDocument)
	prov.Get("/documents", h.Provider.ListDocuments)
	prov.Delete("/documents/:id", h.Provider.DeleteDocument)
	prov.Post("/services", h.Catalog.CreateService)
	prov.Get("/services", h.Catalog.ListMyServices)
	prov.Put("/services/:id", h.Catalog.UpdateService)
	prov.Delete("/services/:id", h.Catalog.DeleteService)
	prov.Get("/bookings", h.Booking.ListProvider)
	prov.Patch("/bookings/:id/accept", h.Booking.Accept)
	prov.Patch("/bookings/:id/reject", h.Booking.Reject)
	prov.Patch("/bookings/:id/complete", h.Booking.Complete)

	// any authenticated role
	bookings := Api.Group("/bookings", m.ValidateToken)
	bookings.Get("/stats", h.Booking.Stats)
	bookings.Get("/:id", h.Booking.Get)
	bookings.Get("/:id/payment", h.Wallet.GetPayment)

	w := Api.Group("/wallet", m.ValidateToken, m.RequireRole(roleProvider))
	w.Get("/", h.Wallet.GetWallet)
	w.Get("/transactions", h.Wallet.ListTransactions)
	w.Post("/withdrawals", h.Wallet.RequestWithdrawal)
	w.Get("/withdrawals", h.Wallet.ListWithdrawals)

	notifications := Api.Group("/notifications", m.ValidateToken)
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/read-all", h.Notification.MarkAllRead)
	notifications.Patch("/:id/read", h.Notification.MarkRead)

	admin := Api.Group("/admin", m.ValidateToken, m.RequireRole(roleAdmin))
	admin.Post("/categories", h.Catalog.CreateCategory)
	admin.Put("/categories/:id", h.Catalog.UpdateCategory)
	admin.Delete("/categories/:id", h.Catalog.DeleteCategory)
	admin.Get("/withdrawals", h.Wallet.ListOpenWithdrawals)
	admin.Patch("/withdrawals/:id", h.Wallet.ResolveWithdrawal)

	private := Api.Group("/private")
	private.Post("/notifications/sweep", h.Notification.TriggerSweep)

	return app

}
