// Package routes wires repositories, services and handlers together and
// registers every HTTP route with its middleware.
package routes

import (
	"gowallet/internal/handlers"
	"gowallet/internal/middleware"
	"gowallet/internal/repositories"
	"gowallet/internal/repositories/cache"
	"gowallet/internal/services/auth"
	"gowallet/internal/services/card"
	"gowallet/internal/services/company"
	"gowallet/internal/services/payment"
	"gowallet/internal/services/qr"
	"gowallet/internal/services/transaction"
	"gowallet/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QRDir holds generated QR code artifacts.
const QRDir = "static/qrcodes"

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, cacheService)
	adminRepo := repositories.NewAdminRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	companyRepo := repositories.NewCompanyRepository(db, cacheService)
	txnRepo := repositories.NewTransactionRepository(db)

	// Services
	authService := auth.NewService(userRepo, adminRepo)
	userService := user.NewService(userRepo)
	qrService := qr.NewService(QRDir)
	companyService := company.NewService(companyRepo, qrService)
	cardService := card.NewService(cardRepo, userRepo, txnRepo, companyRepo)
	txnService := transaction.NewService(txnRepo, cardRepo, userRepo)
	paymentService := payment.NewService(cardRepo, companyRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	cardHandler := handlers.NewCardHandler(cardService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	txnHandler := handlers.NewTransactionHandler(txnService)
	healthHandler := handlers.NewHealthHandler(db, cacheService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to GoWallet API",
			"version": "1.0.0",
		})
	})
	app.Get("/health", healthHandler.Check)
	app.Static("/static/uploads", handlers.UploadDir)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/register_user", userHandler.RegisterUser)
	api.Post("/login_user", authHandler.LoginUser)
	api.Post("/admin/register", authHandler.RegisterAdmin)
	api.Post("/admin/login", authHandler.LoginAdmin)

	// Registration-collaborator boundary and public reads.
	api.Post("/cards", cardHandler.CreateCard)
	api.Get("/cards/:id", cardHandler.GetCard)
	api.Get("/company/:account_number", companyHandler.GetCompanyByAccountNumber)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	// User-authenticated endpoints.
	protected.Get("/users/:phone/cards", cardHandler.ListUserCards)
	protected.Delete("/cards/:id", cardHandler.DeleteCard)
	protected.Post("/payments", paymentHandler.MakePayment)

	// Admin management surface.
	admin := protected.Group("/companies", middleware.AdminOnly)
	admin.Get("/", companyHandler.ListCompanies)
	admin.Post("/", companyHandler.CreateCompany)
	admin.Put("/:id", companyHandler.UpdateCompany)
	admin.Delete("/:id", companyHandler.DeleteCompany)
	admin.Get("/:id/qr", companyHandler.DownloadQR)
	admin.Get("/:id/transactions", txnHandler.CompanyTransactions)
}
