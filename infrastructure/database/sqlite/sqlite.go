package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/vfg2006/sales-insights-api/infrastructure/database"
	"github.com/vfg2006/sales-insights-api/internal/config"
	_ "modernc.org/sqlite"
)

// MemoryDSN abre um banco em memória, usado em testes
const MemoryDSN = ":memory:"

type Dialect struct{}

func (Dialect) Name() string { return config.DriverSQLite }

func (Dialect) Placeholder() squirrel.PlaceholderFormat { return squirrel.Question }

// MonthKey: datas são gravadas como texto ISO, então o prefixo yyyy-mm é o mês
func (Dialect) MonthKey(column string) string {
	return fmt.Sprintf("substr(%s, 1, 7)", column)
}

func (Dialect) DayDiff(later, earlier string) string {
	return fmt.Sprintf("(JULIANDAY(%s) - JULIANDAY(%s))", later, earlier)
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
			amount REAL,
			created_at TEXT NOT NULL,
			closed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			activity_id TEXT PRIMARY KEY,
			deal_id TEXT NOT NULL REFERENCES deals(deal_id),
			type TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS targets (
			month TEXT PRIMARY KEY,
			target REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_stage ON deals(stage)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_closed_at ON deals(closed_at)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_created_at ON deals(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_rep_id ON deals(rep_id)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_account_id ON deals(account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_deal_id ON activities(deal_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_timestamp ON activities(timestamp)`,
	}
}

// NewConnection abre (ou cria) o arquivo do banco; path ":memory:" usa um banco em memória
func NewConnection(ctx context.Context, path string) (*database.Connection, error) {
	dsn := MemoryDSN
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		dsn = fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// uma única conexão: o banco em memória existe apenas dentro dela
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return database.NewConnection(db, Dialect{}), nil
}
