package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-insights-api/infrastructure/database"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// ActivityRepository responde perguntas sobre o engajamento das contas
type ActivityRepository interface {
	// InactiveAccountsBySegment conta, por segmento, contas com negócio aberto e sem atividade desde since
	InactiveAccountsBySegment(ctx context.Context, since time.Time) ([]domain.SegmentCount, error)
	// CountInactiveAccounts é o total da mesma definição usada em InactiveAccountsBySegment
	CountInactiveAccounts(ctx context.Context, since time.Time) (int, error)
}

type activityRepository struct {
	conn *database.Connection
}

func NewActivityRepository(conn *database.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

// inactiveAccounts aplica a definição única de conta inativa: possui ao menos um
// negócio aberto e nenhuma atividade, em qualquer negócio, a partir de since.
func inactiveAccounts(b squirrel.SelectBuilder, since time.Time) (squirrel.SelectBuilder, error) {
	recent, recentArgs, err := squirrel.
		Select("d2.account_id").
		From("deals d2").
		Join("activities act ON act.deal_id = d2.deal_id").
		Where(squirrel.GtOrEq{"act.timestamp": dateValue(domain.TruncateDay(since))}).
		ToSql()
	if err != nil {
		return b, err
	}

	return b.
		From("accounts a").
		Join("deals d ON d.account_id = a.account_id").
		Where(dealConditions(domain.OpenDeals())).
		Where("a.account_id NOT IN ("+recent+")", recentArgs...), nil
}

func (r *activityRepository) InactiveAccountsBySegment(ctx context.Context, since time.Time) ([]domain.SegmentCount, error) {
	builder, err := inactiveAccounts(
		r.conn.Builder().Select("a.segment AS segment", "COUNT(DISTINCT a.account_id) AS account_count"),
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	query, args, err := builder.
		GroupBy("a.segment").
		OrderBy("account_count DESC", "a.segment ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows := make([]domain.SegmentCount, 0)
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao buscar contas inativas: %w", err)
	}

	return rows, nil
}

func (r *activityRepository) CountInactiveAccounts(ctx context.Context, since time.Time) (int, error) {
	builder, err := inactiveAccounts(r.conn.Builder().Select("COUNT(DISTINCT a.account_id)"), since)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("erro ao contar contas inativas: %w", err)
	}

	return count, nil
}
