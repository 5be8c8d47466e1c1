package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-sync/infrastructure/database"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS run_history (
		id BIGSERIAL PRIMARY KEY,
		run_id VARCHAR(32) NOT NULL,
		client VARCHAR(255) NOT NULL,
		mode VARCHAR(16) NOT NULL,
		policy VARCHAR(16) NOT NULL,
		begin_date VARCHAR(10) NOT NULL,
		end_date VARCHAR(10) NOT NULL,
		success BOOLEAN NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		rows_pulled INTEGER NOT NULL DEFAULT 0,
		rows_pushed INTEGER NOT NULL DEFAULT 0,
		rows_updated INTEGER NOT NULL DEFAULT 0,
		rows_inserted INTEGER NOT NULL DEFAULT 0,
		output_file TEXT NOT NULL DEFAULT '',
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_run_history_client ON run_history (client, started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_run_history_run_id ON run_history (run_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS run_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		client TEXT NOT NULL,
		mode TEXT NOT NULL,
		policy TEXT NOT NULL,
		begin_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		success BOOLEAN NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		rows_pulled INTEGER NOT NULL DEFAULT 0,
		rows_pushed INTEGER NOT NULL DEFAULT 0,
		rows_updated INTEGER NOT NULL DEFAULT 0,
		rows_inserted INTEGER NOT NULL DEFAULT 0,
		output_file TEXT NOT NULL DEFAULT '',
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_run_history_client ON run_history (client, started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_run_history_run_id ON run_history (run_id)`,
}

// Apply cria as tabelas do histórico de execuções, se ainda não existirem
func Apply(ctx context.Context, conn *database.Connection) error {
	statements := sqliteSchema
	if conn.Driver == database.DriverPostgres {
		statements = postgresSchema
	}

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao aplicar o passo %d da migração: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"driver": conn.Driver,
		"steps":  len(statements),
	}).Info("Migração do banco aplicada")

	return nil
}
