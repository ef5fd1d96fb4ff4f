package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_vehicles",
		SQL: `CREATE TABLE IF NOT EXISTS vehicles (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  category     TEXT        NOT NULL,
  brand        TEXT        NOT NULL,
  model_name   TEXT        NOT NULL,
  year         INT         NOT NULL CHECK (year > 1900),
  kilometers   BIGINT      NOT NULL CHECK (kilometers >= 0),
  fuel         TEXT        NOT NULL,
  transmission TEXT        NOT NULL,
  description  TEXT        NOT NULL DEFAULT '',
  featured     BOOLEAN     NOT NULL DEFAULT FALSE,
  priority     INT         NOT NULL DEFAULT 0,
  sold         BOOLEAN     NOT NULL DEFAULT FALSE,
  images       JSONB       NOT NULL DEFAULT '[]'::jsonb,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_vehicles_brand",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_vehicles_brand ON vehicles (brand);`,
	},
	{
		Name: "create_index_vehicles_sold",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_vehicles_sold ON vehicles (sold);`,
	},
	{
		Name: "create_index_vehicles_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_vehicles_created_at ON vehicles (created_at);`,
	},
	{
		Name: "create_table_posters",
		SQL: `CREATE TABLE IF NOT EXISTS posters (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title      TEXT        NOT NULL,
  image_url  TEXT        NOT NULL,
  priority   INT         NOT NULL CHECK (priority BETWEEN 1 AND 10),
  is_active  BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_posters_priority",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_posters_priority ON posters (priority);`,
	},
	{
		Name: "create_table_testimonials",
		SQL: `CREATE TABLE IF NOT EXISTS testimonials (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  client_name TEXT        NOT NULL,
  message     TEXT        NOT NULL,
  is_active   BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_lookups",
		SQL: `CREATE TABLE IF NOT EXISTS lookups (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  kind       TEXT        NOT NULL,
  name       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (kind, name)
);`,
	},
	{
		Name: "create_index_lookups_kind",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_lookups_kind ON lookups (kind);`,
	},
}

// EnsureMigrated checks if the 'vehicles' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.vehicles') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
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
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
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

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
