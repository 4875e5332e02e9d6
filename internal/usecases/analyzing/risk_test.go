package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

func rep(id, name string, won, closed int) domain.RepDealTotals {
	return domain.RepDealTotals{
		RepID:      id,
		RepName:    name,
		DealTotals: domain.DealTotals{Count: closed, Won: won, Closed: closed},
	}
}

func TestBuildRiskFactors_Empty(t *testing.T) {
	risks := buildRiskFactors(riskSnapshot{})

	assert.NotNil(t, risks)
	assert.Empty(t, risks)
}

func TestStaleDealsRisk(t *testing.T) {
	t.Run("Segmento com mais negócios parados e total agregado", func(t *testing.T) {
		risk, ok := staleDealsRisk([]domain.SegmentDealTotals{
			{Segment: domain.SegmentSMB, DealTotals: domain.DealTotals{Count: 4, Amount: 100}},
			{Segment: domain.SegmentMidMarket, DealTotals: domain.DealTotals{Count: 8, Amount: 400}},
			{Segment: domain.SegmentEnterprise, DealTotals: domain.DealTotals{Count: 8, Amount: 900}},
		})
		require.True(t, ok)

		assert.Equal(t, "stale-deals-enterprise", risk.ID)
		assert.Equal(t, domain.RiskStaleDeals, risk.Type)
		assert.Equal(t, "20 Enterprise deals stuck over 30 days", risk.Description)
		assert.Equal(t, domain.SeverityMedium, risk.Severity)
		assert.Equal(t, 20, *risk.Count)
		assert.Equal(t, 1400.0, *risk.Amount)
	})

	t.Run("Sem negócios parados", func(t *testing.T) {
		_, ok := staleDealsRisk(nil)
		assert.False(t, ok)
	})

	severities := []struct {
		total    int
		severity domain.Severity
	}{
		{21, domain.SeverityHigh},
		{20, domain.SeverityMedium},
		{11, domain.SeverityMedium},
		{10, domain.SeverityLow},
		{1, domain.SeverityLow},
	}
	for _, s := range severities {
		risk, ok := staleDealsRisk([]domain.SegmentDealTotals{
			{Segment: domain.SegmentSMB, DealTotals: domain.DealTotals{Count: s.total}},
		})
		require.True(t, ok)
		assert.Equal(t, s.severity, risk.Severity, "total %d", s.total)
		assert.Equal(t, "stale-deals-smb", risk.ID)
	}
}

func TestUnderperformingRepRisks(t *testing.T) {
	tests := []struct {
		name     string
		reps     []domain.RepDealTotals
		teamRate float64
		validate func(t *testing.T, risks []domain.RiskFactor)
	}{
		{
			name:     "Vendedor sem vitórias contra média de 50% é risco alto",
			reps:     []domain.RepDealTotals{rep("R1", "Ana", 0, 5), rep("R2", "Bruno", 5, 5)},
			teamRate: 50,
			validate: func(t *testing.T, risks []domain.RiskFactor) {
				require.Len(t, risks, 1)
				assert.Equal(t, "underperforming-rep-R1", risks[0].ID)
				assert.Equal(t, domain.RiskUnderperformingRep, risks[0].Type)
				assert.Equal(t, domain.SeverityHigh, risks[0].Severity)
				assert.Equal(t, "Rep Ana - Win Rate: 0%", risks[0].Description)
				assert.Equal(t, "R1", risks[0].RepID)
				assert.Equal(t, "Ana", risks[0].RepName)
				assert.Equal(t, 0.0, *risks[0].Metric)
				assert.Nil(t, risks[0].Count)
			},
		},
		{
			name:     "Entre 60% e 80% da média é risco médio",
			reps:     []domain.RepDealTotals{rep("R3", "Carla", 3, 10)},
			teamRate: 50,
			validate: func(t *testing.T, risks []domain.RiskFactor) {
				require.Len(t, risks, 1)
				assert.Equal(t, domain.SeverityMedium, risks[0].Severity)
				assert.Equal(t, 30.0, *risks[0].Metric)
			},
		},
		{
			name:     "Amostra menor que cinco negócios é ignorada",
			reps:     []domain.RepDealTotals{rep("R1", "Ana", 0, 4)},
			teamRate: 50,
			validate: func(t *testing.T, risks []domain.RiskFactor) {
				assert.Empty(t, risks)
			},
		},
		{
			name:     "Exatamente 80% da média não é sinalizado",
			reps:     []domain.RepDealTotals{rep("R1", "Ana", 2, 5)},
			teamRate: 50,
			validate: func(t *testing.T, risks []domain.RiskFactor) {
				assert.Empty(t, risks)
			},
		},
		{
			name: "No máximo dois vendedores, o pior primeiro",
			reps: []domain.RepDealTotals{
				rep("R1", "Ana", 1, 5),
				rep("R2", "Bruno", 0, 6),
				rep("R3", "Carla", 1, 5),
				rep("R4", "Davi", 9, 10),
			},
			teamRate: 60,
			validate: func(t *testing.T, risks []domain.RiskFactor) {
				require.Len(t, risks, 2)
				assert.Equal(t, "R2", risks[0].RepID)
				// empate entre R1 e R3 mantém a ordem por rep_id
				assert.Equal(t, "R1", risks[1].RepID)
			},
		},
		{
			name:     "Time sem negócios encerrados não sinaliza ninguém",
			reps:     []domain.RepDealTotals{rep("R1", "Ana", 0, 5)},
			teamRate: 0,
			validate: func(t *testing.T, risks []domain.RiskFactor) {
				assert.Empty(t, risks)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, underperformingRepRisks(tt.reps, tt.teamRate))
		})
	}
}

func TestLowActivityRisk(t *testing.T) {
	_, ok := lowActivityRisk(0)
	assert.False(t, ok)

	tests := []struct {
		count    int
		severity domain.Severity
	}{
		{16, domain.SeverityHigh},
		{15, domain.SeverityMedium},
		{9, domain.SeverityMedium},
		{8, domain.SeverityLow},
		{1, domain.SeverityLow},
	}
	for _, tt := range tests {
		risk, ok := lowActivityRisk(tt.count)
		require.True(t, ok)
		assert.Equal(t, tt.severity, risk.Severity, "count %d", tt.count)
		assert.Equal(t, "low-activity-accounts", risk.ID)
		assert.Equal(t, domain.RiskLowActivity, risk.Type)
		assert.Equal(t, tt.count, *risk.Count)
	}

	risk, _ := lowActivityRisk(12)
	assert.Equal(t, "12 Accounts with no recent activity", risk.Description)
}

func TestLargeDealsRisk(t *testing.T) {
	_, ok := largeDealsRisk(domain.DealTotals{})
	assert.False(t, ok)

	risk, ok := largeDealsRisk(domain.DealTotals{Count: 6, Amount: 480000})
	require.True(t, ok)
	assert.Equal(t, "large-deals-at-risk", risk.ID)
	assert.Equal(t, domain.RiskStaleDeals, risk.Type)
	assert.Equal(t, "6 large deals (>$50K) stuck in negotiation", risk.Description)
	assert.Equal(t, domain.SeverityHigh, risk.Severity)
	assert.Equal(t, 480000.0, *risk.Amount)

	risk, ok = largeDealsRisk(domain.DealTotals{Count: 5, Amount: 300000})
	require.True(t, ok)
	assert.Equal(t, domain.SeverityMedium, risk.Severity)
}

func TestBuildRiskFactors_SortedBySeverity(t *testing.T) {
	snap := riskSnapshot{
		staleBySegment: []domain.SegmentDealTotals{
			{Segment: domain.SegmentSMB, DealTotals: domain.DealTotals{Count: 3}},
		},
		repTotals: []domain.RepDealTotals{
			rep("R1", "Ana", 0, 5),
			rep("R2", "Bruno", 4, 10),
			rep("R3", "Carla", 10, 10),
		},
		team:             domain.DealTotals{Won: 14, Closed: 25},
		inactiveAccounts: 9,
		largeDeals:       domain.DealTotals{Count: 7, Amount: 700000},
	}

	risks := buildRiskFactors(snap)

	ids := make([]string, 0, len(risks))
	for _, r := range risks {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{
		"underperforming-rep-R1",
		"large-deals-at-risk",
		"underperforming-rep-R2",
		"low-activity-accounts",
		"stale-deals-smb",
	}, ids)

	for i := 1; i < len(risks); i++ {
		assert.LessOrEqual(t, risks[i-1].Severity.Rank(), risks[i].Severity.Rank())
	}
}
