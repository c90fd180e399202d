package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"docrisk/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last table step; its presence means the schema is in place.
const sentinelTable = "public.document_uploads"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_corporate_clients",
		SQL: `CREATE TABLE IF NOT EXISTS corporate_clients (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_document_types",
		SQL: `CREATE TABLE IF NOT EXISTS document_types (
  id          UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT NOT NULL UNIQUE,
  description TEXT
);`,
	},
	{
		Name: "create_table_client_requirements",
		SQL: `CREATE TABLE IF NOT EXISTS client_requirements (
  id                  UUID    PRIMARY KEY DEFAULT uuid_generate_v4(),
  corporate_client_id UUID    NOT NULL REFERENCES corporate_clients (id) ON DELETE CASCADE,
  document_type_id    UUID    REFERENCES document_types (id) ON DELETE SET NULL,
  required            BOOLEAN NOT NULL DEFAULT TRUE,
  UNIQUE (corporate_client_id, document_type_id)
);`,
	},
	{
		Name: "create_table_document_uploads",
		SQL: `CREATE TABLE IF NOT EXISTS document_uploads (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  corporate_client_id UUID        NOT NULL REFERENCES corporate_clients (id) ON DELETE CASCADE,
  document_type_id    UUID        REFERENCES document_types (id) ON DELETE SET NULL,
  filename            TEXT        NOT NULL,
  storage_path        TEXT        NOT NULL DEFAULT '',
  content_type        TEXT        NOT NULL DEFAULT '',
  size                BIGINT      NOT NULL DEFAULT 0 CHECK (size >= 0),
  uploaded_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  expires_at          DATE
);`,
	},
	{
		Name: "create_index_corporate_clients_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_corporate_clients_name ON corporate_clients (name);`,
	},
	{
		Name: "create_index_client_requirements_client",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_client_requirements_client ON client_requirements (corporate_client_id);`,
	},
	{
		Name: "create_index_document_uploads_client_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_document_uploads_client_type ON document_uploads (corporate_client_id, document_type_id);`,
	},
	{
		Name: "create_index_document_uploads_expires_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_document_uploads_expires_at ON document_uploads (expires_at);`,
	},
}

// EnsureMigrated checks if the schema exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *logging.Logger, dbHost string) error {
	start := time.Now()

	log.Log(logging.Fields{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	err := db.QueryRowContext(ctx, query, sentinelTable).Scan(&exists)
	if err != nil {
		log.Log(logging.Fields{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Log(logging.Fields{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	log.Log(logging.Fields{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			log.Log(logging.Fields{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Log(logging.Fields{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	log.Log(logging.Fields{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}
