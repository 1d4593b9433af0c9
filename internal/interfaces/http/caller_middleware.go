package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/crm-ventas/pkg/jwt"
)

// localCaller key del caller en Fiber Locals.
const localCaller = "caller"

// CallerMiddleware verifica el Bearer Token (el prefijo "Bearer " es opcional,
// como en los clientes históricos) y deja la identidad en Locals. Un token
// ausente o inválido NO corta la petición: el caller queda anónimo y cada
// operación decide si lo exige.
func CallerMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get("Authorization"))
		if after, ok := strings.CutPrefix(raw, "Bearer "); ok {
			raw = strings.TrimSpace(after)
		}
		if raw != "" {
			if claims, err := pkgjwt.Parse(jwtSecret, raw); err == nil {
				c.Locals(localCaller, entity.Caller{
					ID:      entity.ID(claims.UserID),
					Email:   claims.Email,
					Name:    claims.Name,
					Surname: claims.Surname,
				})
			}
		}
		return c.Next()
	}
}

// GetCaller devuelve la identidad del contexto (caller cero si anónimo).
func GetCaller(c *fiber.Ctx) entity.Caller {
	caller, _ := c.Locals(localCaller).(entity.Caller)
	return caller
}
