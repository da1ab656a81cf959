package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrationStatements son idempotentes: se pueden ejecutar en cada despliegue.
var migrationStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS registro_seq;`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		cedula VARCHAR(20) PRIMARY KEY,
		nombre VARCHAR(200) NOT NULL,
		email VARCHAR(200) NOT NULL,
		password_hash TEXT NOT NULL,
		rol VARCHAR(20) NOT NULL CHECK (rol IN ('ADMIN', 'SUPERVISOR')),
		estado VARCHAR(20) NOT NULL DEFAULT 'activo',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_usuarios_email ON usuarios (lower(email));`,
	`CREATE TABLE IF NOT EXISTS contratos (
		id BIGSERIAL PRIMARY KEY,
		numero_contrato VARCHAR(64) NOT NULL,
		identificador_simple VARCHAR(64) NOT NULL DEFAULT '',
		objeto TEXT NOT NULL DEFAULT '',
		contratista VARCHAR(200) NOT NULL DEFAULT '',
		valor_inicial NUMERIC(20,2) NOT NULL CHECK (valor_inicial >= 0),
		valor_total NUMERIC(20,2) NOT NULL CHECK (valor_total >= 0),
		fecha_inicio DATE NOT NULL,
		fecha_terminacion_inicial DATE NOT NULL,
		fecha_terminacion_actual DATE NOT NULL,
		estado VARCHAR(20) NOT NULL DEFAULT 'activo',
		usuario_cedula VARCHAR(20) NOT NULL REFERENCES usuarios(cedula),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contratos_numero ON contratos (numero_contrato);`,
	`CREATE INDEX IF NOT EXISTS idx_contratos_usuario ON contratos (usuario_cedula);`,
	`CREATE TABLE IF NOT EXISTS cuos (
		id BIGSERIAL PRIMARY KEY,
		contrato_id BIGINT NOT NULL REFERENCES contratos(id),
		numero VARCHAR(64) NOT NULL,
		latitud DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitud DOUBLE PRECISION NOT NULL DEFAULT 0,
		comuna VARCHAR(100) NOT NULL DEFAULT '',
		barrio VARCHAR(100) NOT NULL DEFAULT '',
		descripcion TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_cuos_contrato ON cuos (contrato_id);`,
	`CREATE TABLE IF NOT EXISTS actividades (
		id BIGSERIAL PRIMARY KEY,
		cuo_id BIGINT NOT NULL REFERENCES cuos(id),
		nombre VARCHAR(200) NOT NULL,
		meta_fisica NUMERIC(20,4) NOT NULL DEFAULT 0,
		proyectado_financiero NUMERIC(20,2) NOT NULL DEFAULT 0,
		unidades_avance VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_actividades_cuo ON actividades (cuo_id);`,
	// Libros de solo anexado. clock_timestamp() da la hora real del insert, no la del inicio de la tx.
	`CREATE TABLE IF NOT EXISTS adiciones (
		id UUID PRIMARY KEY,
		contrato_id BIGINT NOT NULL REFERENCES contratos(id),
		valor_adicion NUMERIC(20,2) NOT NULL CHECK (valor_adicion > 0),
		fecha DATE NOT NULL,
		observaciones TEXT NOT NULL DEFAULT '',
		created_by VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		secuencia BIGINT NOT NULL DEFAULT nextval('registro_seq')
	);`,
	`CREATE INDEX IF NOT EXISTS idx_adiciones_contrato ON adiciones (contrato_id, created_at, secuencia);`,
	`CREATE TABLE IF NOT EXISTS modificaciones (
		id UUID PRIMARY KEY,
		contrato_id BIGINT NOT NULL REFERENCES contratos(id),
		tipo VARCHAR(20) NOT NULL CHECK (tipo IN ('PRORROGA', 'SUSPENSION', 'MODIFICACION')),
		fecha_inicio DATE NOT NULL,
		fecha_final DATE NOT NULL,
		duracion INTEGER NOT NULL,
		observaciones TEXT NOT NULL DEFAULT '',
		created_by VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		secuencia BIGINT NOT NULL DEFAULT nextval('registro_seq'),
		CHECK (fecha_final > fecha_inicio)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_modificaciones_contrato ON modificaciones (contrato_id, created_at, secuencia);`,
	`CREATE TABLE IF NOT EXISTS seguimiento_general (
		id UUID PRIMARY KEY,
		contrato_id BIGINT NOT NULL REFERENCES contratos(id),
		avance_financiero NUMERIC(20,2) NOT NULL CHECK (avance_financiero >= 0),
		avance_fisico NUMERIC(7,4) NOT NULL CHECK (avance_fisico >= 0 AND avance_fisico <= 100),
		observaciones TEXT NOT NULL DEFAULT '',
		created_by VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		secuencia BIGINT NOT NULL DEFAULT nextval('registro_seq')
	);`,
	`CREATE INDEX IF NOT EXISTS idx_seguimiento_general_contrato ON seguimiento_general (contrato_id, created_at, secuencia);`,
	`CREATE TABLE IF NOT EXISTS seguimiento_actividad (
		id UUID PRIMARY KEY,
		actividad_id BIGINT NOT NULL REFERENCES actividades(id),
		avance_fisico NUMERIC(20,4) NOT NULL CHECK (avance_fisico >= 0),
		costo_aproximado NUMERIC(20,2) NOT NULL CHECK (costo_aproximado >= 0),
		descripcion_seguimiento TEXT NOT NULL DEFAULT '',
		proyeccion_actividades TEXT NOT NULL DEFAULT '',
		created_by VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		secuencia BIGINT NOT NULL DEFAULT nextval('registro_seq')
	);`,
	`CREATE INDEX IF NOT EXISTS idx_seguimiento_actividad_actividad ON seguimiento_actividad (actividad_id, created_at, secuencia);`,
	`CREATE OR REPLACE FUNCTION registro_inmutable() RETURNS trigger AS $$
	BEGIN
		RAISE EXCEPTION 'la tabla % es de solo anexado', TG_TABLE_NAME;
	END
	$$ LANGUAGE plpgsql;`,
	`DO $$
	DECLARE t TEXT;
	BEGIN
		FOREACH t IN ARRAY ARRAY['adiciones', 'modificaciones', 'seguimiento_general', 'seguimiento_actividad'] LOOP
			EXECUTE format('DROP TRIGGER IF EXISTS %I_inmutable ON %I', t, t);
			EXECUTE format('CREATE TRIGGER %I_inmutable BEFORE UPDATE OR DELETE ON %I FOR EACH ROW EXECUTE FUNCTION registro_inmutable()', t, t);
		END LOOP;
	END
	$$;`,
}

// Migrate aplica el esquema completo en una sola transacción.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range migrationStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
