package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-insights-api/infrastructure/database"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// DealRepository expõe as formas de agregação usadas pelo motor de métricas
type DealRepository interface {
	Totals(ctx context.Context, filter domain.DealFilter) (domain.DealTotals, error)
	TotalsByMonth(ctx context.Context, filter domain.DealFilter, field domain.DateField) ([]domain.MonthlyDealTotals, error)
	TotalsBySegment(ctx context.Context, filter domain.DealFilter) ([]domain.SegmentDealTotals, error)
	TotalsByIndustry(ctx context.Context, filter domain.DealFilter) ([]domain.IndustryDealTotals, error)
	TotalsByRep(ctx context.Context, filter domain.DealFilter) ([]domain.RepDealTotals, error)
	CountByStage(ctx context.Context, filter domain.DealFilter) ([]domain.StageCount, error)
}

type dealRepository struct {
	conn *database.Connection
}

func NewDealRepository(conn *database.Connection) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

// selectTotals monta as colunas de DealTotals; keys são colunas de agrupamento
func (r *dealRepository) selectTotals(filter domain.DealFilter, keys ...string) squirrel.SelectBuilder {
	won := string(domain.StageClosedWon)
	lost := string(domain.StageClosedLost)
	cycleDays := r.conn.Dialect.DayDiff("d.closed_at", "d.created_at")

	return r.conn.Builder().
		Select(keys...).
		Column("COUNT(*) AS deal_count").
		Column("COUNT(CASE WHEN d.stage = ? THEN 1 END) AS won_count", won).
		Column("COUNT(CASE WHEN d.stage IN (?, ?) THEN 1 END) AS closed_count", won, lost).
		Column("COALESCE(SUM(d.amount), 0) AS amount_sum").
		Column("COALESCE(AVG(CASE WHEN d.stage = ? THEN d.amount END), 0) AS won_amount_avg", won).
		Column(fmt.Sprintf("COALESCE(AVG(CASE WHEN d.stage = ? AND d.closed_at IS NOT NULL THEN %s END), 0) AS won_cycle_days_avg", cycleDays), won).
		From(dealsTable).
		Join(accountsJoin).
		Where(dealConditions(filter))
}

func (r *dealRepository) Totals(ctx context.Context, filter domain.DealFilter) (domain.DealTotals, error) {
	var totals domain.DealTotals

	query, args, err := r.selectTotals(filter).ToSql()
	if err != nil {
		return totals, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.GetContext(ctx, &totals, query, args...); err != nil {
		return totals, fmt.Errorf("erro ao agregar negócios: %w", err)
	}

	return totals, nil
}

func (r *dealRepository) TotalsByMonth(ctx context.Context, filter domain.DealFilter, field domain.DateField) ([]domain.MonthlyDealTotals, error) {
	if field != domain.CreatedAt && field != domain.ClosedAt {
		return nil, fmt.Errorf("coluna de data inválida para agrupamento: %q", field)
	}

	month := r.conn.Dialect.MonthKey("d." + string(field))
	query, args, err := r.selectTotals(filter, month+" AS month").
		Where(squirrel.NotEq{"d." + string(field): nil}).
		GroupBy(month).
		OrderBy("month ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows := make([]domain.MonthlyDealTotals, 0)
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao agregar negócios por mês: %w", err)
	}

	return rows, nil
}

func (r *dealRepository) TotalsBySegment(ctx context.Context, filter domain.DealFilter) ([]domain.SegmentDealTotals, error) {
	query, args, err := r.selectTotals(filter, "a.segment AS segment").
		GroupBy("a.segment").
		OrderBy("deal_count DESC", "a.segment ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows := make([]domain.SegmentDealTotals, 0)
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao agregar negócios por segmento: %w", err)
	}

	return rows, nil
}

func (r *dealRepository) TotalsByIndustry(ctx context.Context, filter domain.DealFilter) ([]domain.IndustryDealTotals, error) {
	query, args, err := r.selectTotals(filter, "a.industry AS industry").
		GroupBy("a.industry").
		OrderBy("a.industry ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows := make([]domain.IndustryDealTotals, 0)
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao agregar negócios por indústria: %w", err)
	}

	return rows, nil
}

// TotalsByRep agrega por vendedor; vendedores sem negócios no filtro não aparecem
func (r *dealRepository) TotalsByRep(ctx context.Context, filter domain.DealFilter) ([]domain.RepDealTotals, error) {
	query, args, err := r.selectTotals(filter, "r.rep_id AS rep_id", "r.name AS rep_name").
		Join(repsJoin).
		GroupBy("r.rep_id", "r.name").
		OrderBy("r.rep_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows := make([]domain.RepDealTotals, 0)
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao agregar negócios por vendedor: %w", err)
	}

	return rows, nil
}

func (r *dealRepository) CountByStage(ctx context.Context, filter domain.DealFilter) ([]domain.StageCount, error) {
	query, args, err := r.conn.Builder().
		Select("d.stage AS stage", "COUNT(*) AS deal_count").
		From(dealsTable).
		Join(accountsJoin).
		Where(dealConditions(filter)).
		GroupBy("d.stage").
		OrderBy("d.stage ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows := make([]domain.StageCount, 0)
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao contar negócios por estágio: %w", err)
	}

	return rows, nil
}
