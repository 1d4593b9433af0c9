package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	gqlapi "github.com/tu-usuario/crm-ventas/internal/interfaces/graphql"
	"github.com/tu-usuario/crm-ventas/pkg/logger"
)

// graphqlRequest cuerpo estándar de una petición GraphQL por POST.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler ejecuta operaciones contra el esquema con el caller en contexto.
type GraphQLHandler struct {
	schema graphql.Schema
	log    *logger.Logger
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema graphql.Schema, log *logger.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, log: log}
}

// Execute atiende POST /graphql.
func (h *GraphQLHandler) Execute(c *fiber.Ctx) error {
	var req graphqlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []fiber.Map{{"message": "cuerpo inválido: se espera JSON con query"}},
		})
	}

	ctx := gqlapi.WithCaller(c.UserContext(), GetCaller(c))
	start := time.Now()
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	ev := h.log.Info()
	if len(result.Errors) > 0 {
		ev = h.log.Warn()
		for _, gqlErr := range result.Errors {
			h.log.Debug().Str("operation", req.OperationName).Msg(gqlErr.Message)
		}
	}
	ev.Str("operation", req.OperationName).
		Dur("elapsed", time.Since(start)).
		Int("errors", len(result.Errors)).
		Msg("graphql")

	return c.JSON(result)
}
