// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	authports "smartnotes/internal/auth/ports/services"
	"smartnotes/internal/gateway/adapters/http/auth"
	"smartnotes/internal/gateway/adapters/http/middleware"
	"smartnotes/internal/gateway/adapters/http/notes"
	"smartnotes/pkg/logger"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authHandler *auth.Handler,
	notesHandler *notes.Handler,
	tokenService authports.TokenService,
) {
	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", healthHandler)

	// Auth routes (публичные).
	authRoutes := app.Group("/auth")
	authRoutes.Post("/signup", authHandler.Signup)
	authRoutes.Post("/login", authHandler.Login)

	// Защищенные маршруты.
	requireAuth := middleware.NewAuthMiddleware(tokenService)
	authRoutes.Get("/profile", authHandler.Profile, requireAuth)

	noteRoutes := app.Group("/notes")
	noteRoutes.Use(requireAuth)
	noteRoutes.Get("/", notesHandler.ListNotes)
	noteRoutes.Post("/", notesHandler.CreateNote)
	noteRoutes.Get("/:note_id", notesHandler.GetNote)
	noteRoutes.Put("/:note_id", notesHandler.UpdateNote)
	noteRoutes.Delete("/:note_id", notesHandler.DeleteNote)
	noteRoutes.Post("/:note_id/summarize", notesHandler.SummarizeNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}

// healthHandler отвечает на проверку работоспособности сервиса.
func healthHandler(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)
	logger.Log(ctx).Debug(ctx, "health check")

	return c.JSON(fiber.Map{
		"message": "server is running",
	})
}
