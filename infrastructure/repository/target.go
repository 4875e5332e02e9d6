package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-insights-api/infrastructure/database"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// TargetRepository lê as metas mensais; meses são chaves yyyy-mm inclusivas
type TargetRepository interface {
	SumTargets(ctx context.Context, fromMonth, toMonth string) (float64, error)
	ListTargets(ctx context.Context, fromMonth, toMonth string) ([]domain.Target, error)
}

type targetRepository struct {
	conn *database.Connection
}

func NewTargetRepository(conn *database.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

func monthRange(fromMonth, toMonth string) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{"t.month": fromMonth},
		squirrel.LtOrEq{"t.month": toMonth},
	}
}

func (r *targetRepository) SumTargets(ctx context.Context, fromMonth, toMonth string) (float64, error) {
	query, args, err := r.conn.Builder().
		Select("COALESCE(SUM(t.target), 0)").
		From("targets t").
		Where(monthRange(fromMonth, toMonth)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("erro ao somar metas: %w", err)
	}

	return total, nil
}

func (r *targetRepository) ListTargets(ctx context.Context, fromMonth, toMonth string) ([]domain.Target, error) {
	query, args, err := r.conn.Builder().
		Select("t.month AS month", "t.target AS target").
		From("targets t").
		Where(monthRange(fromMonth, toMonth)).
		OrderBy("t.month ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	targets := make([]domain.Target, 0)
	if err := r.conn.SelectContext(ctx, &targets, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao listar metas: %w", err)
	}

	return targets, nil
}
