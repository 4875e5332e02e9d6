package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

const (
	labelPipelineValue = "Pipeline Value"
	labelWinRate       = "Win Rate"
	labelAvgDealSize   = "Avg Deal Size"
	labelSalesCycle    = "Sales Cycle"
)

type driversSnapshot struct {
	pipelineCurrent  domain.DealTotals
	pipelinePrevious domain.DealTotals
	pipelineTrend    []domain.MonthlyDealTotals
	closedCurrent    domain.DealTotals
	closedPrevious   domain.DealTotals
	closedTrend      []domain.MonthlyDealTotals
}

// DriversAt calcula os quatro indicadores de receita a partir da data de referência
func (s *Service) DriversAt(ctx context.Context, asOf time.Time) (*domain.DriversResponse, error) {
	w, err := s.start(ctx, opDrivers, asOf)
	if err != nil {
		return nil, err
	}

	var snap driversSnapshot
	pipeline := domain.OpenDeals().WithAmount()
	closed := domain.ClosedDeals()

	err = collect(ctx, opDrivers,
		func(ctx context.Context) error {
			// pipeline atual não filtra created_at: é o snapshot acumulado de negócios abertos
			var err error
			snap.pipelineCurrent, err = s.deals.Totals(ctx, pipeline)
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.pipelinePrevious, err = s.deals.Totals(ctx, pipeline.CreatedUntil(w.previous.End))
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.pipelineTrend, err = s.deals.TotalsByMonth(ctx, pipeline.CreatedWithin(w.trailing), domain.CreatedAt)
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.closedCurrent, err = s.deals.Totals(ctx, closed.ClosedWithin(w.current))
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.closedPrevious, err = s.deals.Totals(ctx, closed.ClosedWithin(w.previous))
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.closedTrend, err = s.deals.TotalsByMonth(ctx, closed.ClosedWithin(w.trailing), domain.ClosedAt)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return buildDrivers(w, snap), nil
}

func buildDrivers(w window, snap driversSnapshot) *domain.DriversResponse {
	months := w.trailing.Months()

	return &domain.DriversResponse{
		PipelineValue: newDriverMetric(
			labelPipelineValue,
			snap.pipelineCurrent.Amount,
			snap.pipelinePrevious.Amount,
			trendSeries(months, snap.pipelineTrend, func(t domain.DealTotals) float64 { return t.Amount }),
			utils.RoundWithTwoDecimalPlace,
			false,
		),
		WinRate: newDriverMetric(
			labelWinRate,
			snap.closedCurrent.WinRate(),
			snap.closedPrevious.WinRate(),
			trendSeries(months, snap.closedTrend, domain.DealTotals.WinRate),
			utils.RoundWithTwoDecimalPlace,
			false,
		),
		AvgDealSize: newDriverMetric(
			labelAvgDealSize,
			snap.closedCurrent.AvgWonAmount,
			snap.closedPrevious.AvgWonAmount,
			trendSeries(months, snap.closedTrend, func(t domain.DealTotals) float64 { return t.AvgWonAmount }),
			utils.RoundWhole,
			false,
		),
		SalesCycle: newDriverMetric(
			labelSalesCycle,
			snap.closedCurrent.AvgWonCycleDays,
			snap.closedPrevious.AvgWonCycleDays,
			trendSeries(months, snap.closedTrend, func(t domain.DealTotals) float64 { return t.AvgWonCycleDays }),
			utils.RoundWhole,
			true,
		),
	}
}

// newDriverMetric aplica o arredondamento do indicador ao valor, à variação e à tendência.
// Para indicadores em que menor é melhor, uma queda conta como melhora.
func newDriverMetric(
	label string,
	current, previous float64,
	trend []float64,
	round func(float64) float64,
	lowerIsBetter bool,
) domain.DriverMetric {
	changePercent, _ := utils.PercentChange(current, previous)

	rounded := make([]float64, len(trend))
	for i, v := range trend {
		rounded[i] = round(v)
	}

	change := round(current - previous)
	improving := change > 0
	if lowerIsBetter {
		improving = change < 0
	}

	return domain.DriverMetric{
		Current:       round(current),
		Change:        change,
		ChangePercent: utils.RoundWithTwoDecimalPlace(changePercent),
		Trend:         rounded,
		Label:         label,
		LowerIsBetter: lowerIsBetter,
		Improving:     improving,
	}
}

// trendSeries projeta as linhas mensais sobre todos os meses da janela, com zero nos meses vazios
func trendSeries(months []string, rows []domain.MonthlyDealTotals, value func(domain.DealTotals) float64) []float64 {
	byMonth := make(map[string]domain.DealTotals, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row.DealTotals
	}

	series := make([]float64, len(months))
	for i, month := range months {
		if totals, ok := byMonth[month]; ok {
			series[i] = value(totals)
		}
	}

	return series
}
