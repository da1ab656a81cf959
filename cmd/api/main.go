package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/seguimiento-contratos/docs"
	"github.com/jhoicas/seguimiento-contratos/internal/application/auth"
	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
	"github.com/jhoicas/seguimiento-contratos/internal/infrastructure/excel"
	"github.com/jhoicas/seguimiento-contratos/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/seguimiento-contratos/internal/infrastructure/pdf"
	"github.com/jhoicas/seguimiento-contratos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/seguimiento-contratos/internal/interfaces/http"
	"github.com/jhoicas/seguimiento-contratos/pkg/config"
	"github.com/jhoicas/seguimiento-contratos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		repos    seguimiento.Repositories
		txRunner seguimiento.TxRunner
	)
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		// Solo para desarrollo local: los datos se pierden al reiniciar.
		store := memory.NewStore()
		repos = store.Repositories()
		txRunner = store
		log.Warn().Msg("almacenamiento en memoria, los datos no son persistentes")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		repos = postgres.Repositories(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	authUC := auth.NewAuthUseCase(repos.Usuarios, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.Bootstrap.Enabled() {
		created, err := authUC.EnsureAdmin(ctx, cfg.Bootstrap.AdminCedula, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("crear administrador inicial")
		}
		if created {
			log.Info().Str("cedula", cfg.Bootstrap.AdminCedula).Msg("administrador inicial creado")
		}
	}

	umbrales := progress.Umbrales{Retraso: cfg.Progress.UmbralRetraso, Adelanto: cfg.Progress.UmbralAdelanto}
	progressUC := seguimiento.NewProgressUseCase(repos, umbrales)
	registryUC := seguimiento.NewRegistryUseCase(repos)
	envelopeUC := seguimiento.NewEnvelopeUseCase(txRunner, repos.Contratos)
	reportUC := seguimiento.NewReportUseCase(progressUC, infrapdf.NewMarotoPDFGenerator(), excel.NewHistorialExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Seguimiento de Contratos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		RegistryUC: registryUC,
		EnvelopeUC: envelopeUC,
		ProgressUC: progressUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
