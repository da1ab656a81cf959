// importar registra contratos en lote desde un CSV separado por ';'.
//
// Uso: go run ./cmd/importar [-latin1] [-sep ';'] [-admin CEDULA] ruta/contratos.csv
// Columnas: numero_contrato, identificador_simple (opcional), objeto, contratista,
// valor_inicial, fecha_inicio, fecha_terminacion, usuario_cedula.
// Los contratos ya registrados (mismo número) se omiten.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/infrastructure/csvimport"
	"github.com/jhoicas/seguimiento-contratos/internal/infrastructure/postgres"
	"github.com/jhoicas/seguimiento-contratos/pkg/config"
	"github.com/jhoicas/seguimiento-contratos/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "el archivo está en ISO-8859-1")
	sep := flag.String("sep", ";", "separador de columnas")
	adminCedula := flag.String("admin", "", "cédula del administrador que registra (por defecto BOOTSTRAP_ADMIN_CEDULA)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: importar [-latin1] [-sep ;] [-admin CEDULA] contratos.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("importar")

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	opts := csvimport.Options{Latin1: *latin1}
	if r := []rune(*sep); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	rows, fallas, err := csvimport.ReadContratos(f, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}
	for _, fe := range fallas {
		log.Warn().Int("linea", fe.Line).Err(fe.Err).Msg("fila omitida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	cedula := *adminCedula
	if cedula == "" {
		cedula = cfg.Bootstrap.AdminCedula
	}
	registry := seguimiento.NewRegistryUseCase(postgres.Repositories(pool))
	p := access.Principal{Cedula: cedula, Rol: entity.RolAdmin}

	var creados, omitidos int
	for _, in := range rows {
		_, err := registry.CreateContrato(ctx, p, in)
		switch {
		case err == nil:
			creados++
		case errors.Is(err, domain.ErrDuplicate):
			omitidos++
		default:
			log.Error().Err(err).Str("numero_contrato", in.NumeroContrato).Msg("registrar contrato")
		}
	}
	log.Info().Int("creados", creados).Int("omitidos", omitidos).Int("filas_invalidas", len(fallas)).Msg("importación terminada")
}
