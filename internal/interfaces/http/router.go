package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seguimiento-contratos/internal/application/auth"
	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	RegistryUC *seguimiento.RegistryUseCase
	EnvelopeUC *seguimiento.EnvelopeUseCase
	ProgressUC *seguimiento.ProgressUseCase
	ReportUC   *seguimiento.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RolAdmin)

	protected.Post("/usuarios", adminOnly, authHandler.CreateUsuario)

	contratoHandler := NewContratoHandler(deps.RegistryUC)
	envelopeHandler := NewEnvelopeHandler(deps.EnvelopeUC)
	seguimientoHandler := NewSeguimientoHandler(deps.ProgressUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	// Contratos: el alcance por supervisor lo decide cada caso de uso.
	contratos := protected.Group("/contratos")
	contratos.Post("/", adminOnly, contratoHandler.Create)
	contratos.Get("/", contratoHandler.List)
	contratos.Get("/:id", contratoHandler.GetByID)
	contratos.Post("/:id/adiciones", envelopeHandler.CreateAdicion)
	contratos.Post("/:id/modificaciones", envelopeHandler.CreateModificacion)
	contratos.Post("/:id/seguimientos", seguimientoHandler.CreateGeneral)
	contratos.Get("/:id/progreso", seguimientoHandler.GetContratoProgress)
	contratos.Get("/:id/historial", seguimientoHandler.GetHistorial)
	contratos.Get("/:id/historial.xlsx", reportHandler.HistorialExcel)
	contratos.Get("/:id/informe.pdf", reportHandler.ContratoPDF)
	contratos.Post("/:id/cuos", contratoHandler.CreateCuo)
	contratos.Get("/:id/cuos", contratoHandler.ListCuos)

	cuos := protected.Group("/cuos")
	cuos.Post("/:id/actividades", contratoHandler.CreateActividad)
	cuos.Get("/:id/progreso", seguimientoHandler.GetCuoProgress)

	actividades := protected.Group("/actividades")
	actividades.Post("/:id/seguimientos", seguimientoHandler.CreateActividad)
	actividades.Get("/:id/progreso", seguimientoHandler.GetActividadProgress)
}
