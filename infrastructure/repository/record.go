package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vfg2006/sales-insights-api/infrastructure/database"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const insertChunkSize = 200

// RecordRepository grava e conta os registros brutos carregados pelo seed
type RecordRepository interface {
	Counts(ctx context.Context) (domain.RecordCounts, error)
	// InsertAll grava o conjunto em uma única transação; linhas já existentes são ignoradas
	InsertAll(ctx context.Context, records domain.RecordSet) error
}

type recordRepository struct {
	conn *database.Connection
}

func NewRecordRepository(conn *database.Connection) RecordRepository {
	return &recordRepository{
		conn: conn,
	}
}

func (r *recordRepository) Counts(ctx context.Context) (domain.RecordCounts, error) {
	var counts domain.RecordCounts

	query := `SELECT
		(SELECT COUNT(*) FROM accounts) AS accounts,
		(SELECT COUNT(*) FROM reps) AS reps,
		(SELECT COUNT(*) FROM deals) AS deals,
		(SELECT COUNT(*) FROM activities) AS activities,
		(SELECT COUNT(*) FROM targets) AS targets`

	if err := r.conn.GetContext(ctx, &counts, query); err != nil {
		return counts, fmt.Errorf("erro ao contar registros: %w", err)
	}

	return counts, nil
}

func (r *recordRepository) InsertAll(ctx context.Context, records domain.RecordSet) error {
	return r.conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		accounts := make([][]interface{}, 0, len(records.Accounts))
		for _, a := range records.Accounts {
			accounts = append(accounts, []interface{}{a.ID, a.Name, a.Industry, string(a.Segment)})
		}
		if err := r.insertRows(ctx, tx, "accounts", []string{"account_id", "name", "industry", "segment"}, accounts); err != nil {
			return err
		}

		reps := make([][]interface{}, 0, len(records.Reps))
		for _, rep := range records.Reps {
			reps = append(reps, []interface{}{rep.ID, rep.Name})
		}
		if err := r.insertRows(ctx, tx, "reps", []string{"rep_id", "name"}, reps); err != nil {
			return err
		}

		deals := make([][]interface{}, 0, len(records.Deals))
		for _, d := range records.Deals {
			var amount, closedAt interface{}
			if d.Amount != nil {
				amount = *d.Amount
			}
			if d.ClosedAt != nil {
				closedAt = dateValue(*d.ClosedAt)
			}
			deals = append(deals, []interface{}{d.ID, d.AccountID, d.RepID, string(d.Stage), amount, dateValue(d.CreatedAt), closedAt})
		}
		if err := r.insertRows(ctx, tx, "deals", []string{"deal_id", "account_id", "rep_id", "stage", "amount", "created_at", "closed_at"}, deals); err != nil {
			return err
		}

		activities := make([][]interface{}, 0, len(records.Activities))
		for _, act := range records.Activities {
			activities = append(activities, []interface{}{act.ID, act.DealID, string(act.Type), act.Timestamp.UTC().Format(time.RFC3339)})
		}
		if err := r.insertRows(ctx, tx, "activities", []string{"activity_id", "deal_id", "type", `"timestamp"`}, activities); err != nil {
			return err
		}

		targets := make([][]interface{}, 0, len(records.Targets))
		for _, t := range records.Targets {
			targets = append(targets, []interface{}{t.Month, t.Target})
		}
		return r.insertRows(ctx, tx, "targets", []string{"month", "target"}, targets)
	})
}

// insertRows grava as linhas em lotes para não estourar o limite de parâmetros do driver
func (r *recordRepository) insertRows(ctx context.Context, tx *sqlx.Tx, table string, columns []string, rows [][]interface{}) error {
	for start := 0; start < len(rows); start += insertChunkSize {
		end := min(start+insertChunkSize, len(rows))

		builder := r.conn.Builder().
			Insert(table).
			Columns(columns...).
			Suffix("ON CONFLICT DO NOTHING")
		for _, row := range rows[start:end] {
			builder = builder.Values(row...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir insert em %s: %w", table, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir em %s: %w", table, err)
		}
	}

	return nil
}
