package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-insights-api/infrastructure/database"
	"github.com/vfg2006/sales-insights-api/internal/config"
)

type Dialect struct{}

func (Dialect) Name() string { return config.DriverPostgres }

func (Dialect) Placeholder() squirrel.PlaceholderFormat { return squirrel.Dollar }

func (Dialect) MonthKey(column string) string {
	return fmt.Sprintf("to_char(%s, 'YYYY-MM')", column)
}

// DayDiff: subtração de colunas DATE já retorna dias inteiros
func (Dialect) DayDiff(later, earlier string) string {
	return fmt.Sprintf("(%s - %s)", later, earlier)
}

func (Dialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			account_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			industry TEXT NOT NULL,
			segment TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reps (
			rep_id TEXT PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS deals (
			deal_id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL REFERENCES accounts(account_id),
			rep_id TEXT NOT NULL REFERENCES reps(rep_id),
			stage TEXT NOT NULL,
			amount NUMERIC(14, 2),
			created_at DATE NOT NULL,
			closed_at DATE
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			activity_id TEXT PRIMARY KEY,
			deal_id TEXT NOT NULL REFERENCES deals(deal_id),
			type TEXT NOT NULL,
			"timestamp" TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS targets (
			month TEXT PRIMARY KEY,
			target NUMERIC(14, 2) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_stage ON deals(stage)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_closed_at ON deals(closed_at)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_created_at ON deals(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_rep_id ON deals(rep_id)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_account_id ON deals(account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_deal_id ON activities(deal_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_timestamp ON activities("timestamp")`,
	}
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*database.Connection, error) {
	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return database.NewConnection(db, Dialect{}), nil
}
