package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reviews-api/internal/application/auth"
	"github.com/jhoicas/reviews-api/internal/application/dto"
	"github.com/jhoicas/reviews-api/internal/application/review"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ReviewUC  *review.ReviewUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.SignUp)
	authGroup.Post("/login", authHandler.Login)
	// cualquier otro método sobre estas rutas es 405, no 404
	authGroup.All("/register", methodNotAllowed)
	authGroup.All("/login", methodNotAllowed)

	// Reviews (requieren Bearer Token). El middleware va por ruta y no por
	// grupo para que PUT/DELETE respondan 405 sin importar la autenticación.
	requireAuth := AuthMiddleware(deps.JWTSecret)
	reviews := api.Group("/reviews")
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	reviews.Get("/", requireAuth, reviewHandler.List)
	reviews.Post("/", requireAuth, reviewHandler.Create)
	reviews.Get("/export/pdf", requireAuth, reviewHandler.ExportPDF)
	reviews.All("/", methodNotAllowed)
}

// methodNotAllowed responde 405 para métodos no soportados en una ruta existente.
func methodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
		Code:    "METHOD_NOT_ALLOWED",
		Message: fmt.Sprintf("método %s no permitido", c.Method()),
	})
}
