package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seguimiento-contratos/pkg/logger"
)

// RequestLogger registra método, ruta, estado y latencia de cada petición.
// Las respuestas 5xx incluyen el error que dejó writeError en c.Locals.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error()
			if internal, ok := c.Locals(LocalError).(error); ok {
				ev = ev.Err(internal)
			}
		}
		if err != nil {
			ev = ev.AnErr("handler_error", err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_cedula", GetCedula(c)).
			Msg("request")
		return err
	}
}
