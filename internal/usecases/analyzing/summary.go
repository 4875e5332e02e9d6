package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

type summarySnapshot struct {
	currentRevenue  float64
	previousRevenue float64
	target          float64
	monthlyRevenue  []domain.MonthlyDealTotals
	monthlyTargets  []domain.Target
}

// SummaryAt calcula o resumo do trimestre corrente a partir da data de referência
func (s *Service) SummaryAt(ctx context.Context, asOf time.Time) (*domain.SummaryResponse, error) {
	w, err := s.start(ctx, opSummary, asOf)
	if err != nil {
		return nil, err
	}

	var snap summarySnapshot
	revenue := domain.WonDeals().WithAmount()

	err = collect(ctx, opSummary,
		func(ctx context.Context) error {
			totals, err := s.deals.Totals(ctx, revenue.ClosedWithin(w.current))
			snap.currentRevenue = totals.Amount
			return err
		},
		func(ctx context.Context) error {
			totals, err := s.deals.Totals(ctx, revenue.ClosedWithin(w.previous))
			snap.previousRevenue = totals.Amount
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.target, err = s.targets.SumTargets(ctx, w.current.StartMonth(), w.current.EndMonth())
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.monthlyRevenue, err = s.deals.TotalsByMonth(ctx, revenue.ClosedWithin(w.trailing), domain.ClosedAt)
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.monthlyTargets, err = s.targets.ListTargets(ctx, w.trailing.StartMonth(), w.trailing.EndMonth())
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return buildSummary(w, snap), nil
}

func buildSummary(w window, snap summarySnapshot) *domain.SummaryResponse {
	// meta zero resulta em gap zero
	gap, _ := utils.PercentChange(snap.currentRevenue, snap.target)
	gap = utils.RoundWithTwoDecimalPlace(gap)

	var qoq *float64
	if change, ok := utils.PercentChange(snap.currentRevenue, snap.previousRevenue); ok {
		rounded := utils.RoundWithTwoDecimalPlace(change)
		qoq = &rounded
	}

	return &domain.SummaryResponse{
		CurrentQuarterRevenue: utils.RoundWithTwoDecimalPlace(snap.currentRevenue),
		Target:                utils.RoundWithTwoDecimalPlace(snap.target),
		GapPercentage:         gap,
		GapText:               gapText(gap),
		QuarterLabel:          w.current.Label,
		PreviousQuarterLabel:  w.previous.Label,
		QoQChange:             qoq,
		MonthlyRevenue:        monthlyRevenue(snap.monthlyTargets, snap.monthlyRevenue),
	}
}

func gapText(gap float64) string {
	if gap >= 0 {
		return domain.GapAhead
	}
	return domain.GapBehind
}

// monthlyRevenue gera uma linha por mês com meta; a presença da meta define a série
func monthlyRevenue(targets []domain.Target, revenue []domain.MonthlyDealTotals) []domain.MonthlyRevenue {
	byMonth := make(map[string]float64, len(revenue))
	for _, row := range revenue {
		byMonth[row.Month] = row.Amount
	}

	series := make([]domain.MonthlyRevenue, 0, len(targets))
	for _, t := range targets {
		series = append(series, domain.MonthlyRevenue{
			Month:   t.Month,
			Revenue: utils.RoundWithTwoDecimalPlace(byMonth[t.Month]),
			Target:  utils.RoundWithTwoDecimalPlace(t.Target),
		})
	}

	return series
}
