package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

func TestBuildDrivers_NoClosedDeals(t *testing.T) {
	drivers := buildDrivers(newWindow(date(2025, 12, 31)), driversSnapshot{})

	zeros := []float64{0, 0, 0, 0, 0, 0}
	for _, metric := range []domain.DriverMetric{drivers.PipelineValue, drivers.WinRate, drivers.AvgDealSize, drivers.SalesCycle} {
		assert.Equal(t, 0.0, metric.Current, metric.Label)
		assert.Equal(t, 0.0, metric.Change, metric.Label)
		assert.Equal(t, 0.0, metric.ChangePercent, metric.Label)
		assert.Equal(t, zeros, metric.Trend, metric.Label)
		assert.False(t, metric.Improving, metric.Label)
	}

	assert.Equal(t, "Pipeline Value", drivers.PipelineValue.Label)
	assert.Equal(t, "Win Rate", drivers.WinRate.Label)
	assert.Equal(t, "Avg Deal Size", drivers.AvgDealSize.Label)
	assert.Equal(t, "Sales Cycle", drivers.SalesCycle.Label)
	assert.True(t, drivers.SalesCycle.LowerIsBetter)
	assert.False(t, drivers.WinRate.LowerIsBetter)
}

func TestBuildDrivers(t *testing.T) {
	snap := driversSnapshot{
		pipelineCurrent:  domain.DealTotals{Count: 12, Amount: 300000},
		pipelinePrevious: domain.DealTotals{Count: 10, Amount: 250000},
		pipelineTrend: []domain.MonthlyDealTotals{
			{Month: "2025-12", DealTotals: domain.DealTotals{Amount: 1234.567}},
			{Month: "2025-06", DealTotals: domain.DealTotals{Amount: 999999}},
		},
		closedCurrent:  domain.DealTotals{Won: 3, Closed: 4, AvgWonAmount: 12345.6, AvgWonCycleDays: 40.4},
		closedPrevious: domain.DealTotals{Won: 1, Closed: 2, AvgWonAmount: 10000, AvgWonCycleDays: 50},
		closedTrend: []domain.MonthlyDealTotals{
			{Month: "2025-09", DealTotals: domain.DealTotals{Won: 1, Closed: 3, AvgWonAmount: 8000, AvgWonCycleDays: 30}},
			{Month: "2025-11", DealTotals: domain.DealTotals{Won: 2, Closed: 2, AvgWonAmount: 5000.4, AvgWonCycleDays: 12.5}},
		},
	}

	drivers := buildDrivers(newWindow(date(2025, 12, 31)), snap)

	t.Run("Pipeline", func(t *testing.T) {
		m := drivers.PipelineValue
		assert.Equal(t, 300000.0, m.Current)
		assert.Equal(t, 50000.0, m.Change)
		assert.Equal(t, 20.0, m.ChangePercent)
		// meses fora da janela são descartados
		assert.Equal(t, []float64{0, 0, 0, 0, 0, 1234.57}, m.Trend)
		assert.True(t, m.Improving)
	})

	t.Run("Taxa de conversão", func(t *testing.T) {
		m := drivers.WinRate
		assert.Equal(t, 75.0, m.Current)
		assert.Equal(t, 25.0, m.Change)
		assert.Equal(t, 50.0, m.ChangePercent)
		assert.Equal(t, []float64{0, 0, 33.33, 0, 100, 0}, m.Trend)
		assert.True(t, m.Improving)
	})

	t.Run("Ticket médio arredondado em unidades", func(t *testing.T) {
		m := drivers.AvgDealSize
		assert.Equal(t, 12346.0, m.Current)
		assert.Equal(t, 2346.0, m.Change)
		assert.Equal(t, 23.46, m.ChangePercent)
		assert.Equal(t, []float64{0, 0, 8000, 0, 5000, 0}, m.Trend)
	})

	t.Run("Ciclo de vendas menor é melhora", func(t *testing.T) {
		m := drivers.SalesCycle
		assert.Equal(t, 40.0, m.Current)
		assert.Equal(t, -10.0, m.Change)
		assert.Equal(t, -19.2, m.ChangePercent)
		assert.Equal(t, []float64{0, 0, 30, 0, 13, 0}, m.Trend)
		assert.True(t, m.LowerIsBetter)
		assert.True(t, m.Improving)
	})
}

func TestBuildDrivers_WinRateBounds(t *testing.T) {
	snaps := []domain.DealTotals{
		{},
		{Won: 0, Closed: 7},
		{Won: 7, Closed: 7},
		{Won: 2, Closed: 3},
	}

	for _, totals := range snaps {
		drivers := buildDrivers(newWindow(date(2025, 12, 31)), driversSnapshot{closedCurrent: totals})
		assert.GreaterOrEqual(t, drivers.WinRate.Current, 0.0)
		assert.LessOrEqual(t, drivers.WinRate.Current, 100.0)
	}
}

func TestTrendSeries(t *testing.T) {
	months := []string{"2025-01", "2025-02", "2025-03"}
	rows := []domain.MonthlyDealTotals{
		{Month: "2025-03", DealTotals: domain.DealTotals{Count: 4}},
		{Month: "2025-01", DealTotals: domain.DealTotals{Count: 2}},
	}

	series := trendSeries(months, rows, func(t domain.DealTotals) float64 { return float64(t.Count) })
	assert.Equal(t, []float64{2, 0, 4}, series)
}
