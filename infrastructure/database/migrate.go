package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics/internal/config"
)

var schemas = map[string]string{
	config.DriverSQLite: `
		CREATE TABLE IF NOT EXISTS analysis_snapshot (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			q_json TEXT NOT NULL,
			source_checksum TEXT NOT NULL DEFAULT ''
		)`,
	config.DriverPostgres: `
		CREATE TABLE IF NOT EXISTS analysis_snapshot (
			id SERIAL PRIMARY KEY,
			created_at TEXT NOT NULL,
			q_json TEXT NOT NULL,
			source_checksum TEXT NOT NULL DEFAULT ''
		)`,
}

// Migrate cria a tabela de snapshots caso ainda não exista
func (c *Connection) Migrate(ctx context.Context) error {
	schema, ok := schemas[c.driver]
	if !ok {
		return fmt.Errorf("sem esquema para o driver %q", c.driver)
	}

	err := c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		return fmt.Errorf("erro ao criar tabela analysis_snapshot: %w", err)
	}

	logrus.WithField("driver", c.driver).Debug("Esquema de snapshots verificado")
	return nil
}
