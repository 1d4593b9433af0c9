package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/graphql-go/graphql"

	"github.com/tu-usuario/crm-ventas/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema    graphql.Schema
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas: un único endpoint GraphQL más el health check.
// El middleware de caller corre antes del handler; la autorización por
// operación la deciden los casos de uso.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handler := NewGraphQLHandler(deps.Schema, deps.Log)
	app.Post("/graphql", CallerMiddleware(deps.JWTSecret), handler.Execute)
}
