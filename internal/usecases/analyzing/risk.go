package analyzing

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

type riskSnapshot struct {
	staleBySegment   []domain.SegmentDealTotals
	repTotals        []domain.RepDealTotals
	team             domain.DealTotals
	inactiveAccounts int
	largeDeals       domain.DealTotals
}

// RiskFactorsAt detecta os sinais de risco do funil a partir da data de referência
func (s *Service) RiskFactorsAt(ctx context.Context, asOf time.Time) ([]domain.RiskFactor, error) {
	w, err := s.start(ctx, opRiskFactors, asOf)
	if err != nil {
		return nil, err
	}

	var snap riskSnapshot

	err = collect(ctx, opRiskFactors,
		func(ctx context.Context) error {
			var err error
			snap.staleBySegment, err = s.deals.TotalsBySegment(ctx, staleDeals(w))
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.repTotals, err = s.deals.TotalsByRep(ctx, domain.ClosedDeals())
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.team, err = s.deals.Totals(ctx, domain.ClosedDeals())
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.inactiveAccounts, err = s.activities.CountInactiveAccounts(ctx, w.recentSince())
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.largeDeals, err = s.deals.Totals(ctx, largeDealsAtRisk(w))
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return buildRiskFactors(snap), nil
}

func staleDeals(w window) domain.DealFilter {
	return domain.OpenDeals().OlderThan(w.asOf, StaleDealDays)
}

func largeDealsAtRisk(w window) domain.DealFilter {
	return domain.DealsIn(domain.StageNegotiation).
		AmountGreaterThan(LargeDealAmount).
		OlderThan(w.asOf, LargeDealDays)
}

func buildRiskFactors(snap riskSnapshot) []domain.RiskFactor {
	risks := make([]domain.RiskFactor, 0, 5)

	if risk, ok := staleDealsRisk(snap.staleBySegment); ok {
		risks = append(risks, risk)
	}
	risks = append(risks, underperformingRepRisks(snap.repTotals, snap.team.WinRate())...)
	if risk, ok := lowActivityRisk(snap.inactiveAccounts); ok {
		risks = append(risks, risk)
	}
	if risk, ok := largeDealsRisk(snap.largeDeals); ok {
		risks = append(risks, risk)
	}

	slices.SortStableFunc(risks, func(a, b domain.RiskFactor) int {
		return cmp.Compare(a.Severity.Rank(), b.Severity.Rank())
	})

	return risks
}

// staleDealsRisk reporta o total de negócios parados, nomeando o segmento com mais ocorrências
func staleDealsRisk(bySegment []domain.SegmentDealTotals) (domain.RiskFactor, bool) {
	top, ok := topSegment(bySegment,
		func(r domain.SegmentDealTotals) domain.Segment { return r.Segment },
		func(r domain.SegmentDealTotals) int { return r.Count },
	)
	if !ok {
		return domain.RiskFactor{}, false
	}

	total := 0
	amount := 0.0
	for _, row := range bySegment {
		total += row.Count
		amount += row.Amount
	}
	if total == 0 {
		return domain.RiskFactor{}, false
	}

	return domain.RiskFactor{
		ID:          "stale-deals-" + top.Segment.Slug(),
		Type:        domain.RiskStaleDeals,
		Description: fmt.Sprintf("%d %s deals stuck over %d days", total, top.Segment, StaleDealDays),
		Severity:    severityAbove(total, staleHighAbove, staleMediumAbove),
		Count:       intPtr(total),
		Amount:      floatPtr(utils.RoundWithTwoDecimalPlace(amount)),
	}, true
}

func underperformingRepRisks(reps []domain.RepDealTotals, teamRate float64) []domain.RiskFactor {
	risks := make([]domain.RiskFactor, 0, MaxUnderperformingReps)

	for _, rep := range rankedReps(reps) {
		if len(risks) == MaxUnderperformingReps {
			break
		}

		rate := rep.WinRate()
		if rate >= teamRate*underperformingRatio {
			// reps ordenados pela taxa: os seguintes também estão acima do limite
			break
		}

		severity := domain.SeverityMedium
		if rate < teamRate*severeRatio {
			severity = domain.SeverityHigh
		}

		metric := utils.RoundWhole(rate)
		risks = append(risks, domain.RiskFactor{
			ID:          "underperforming-rep-" + rep.RepID,
			Type:        domain.RiskUnderperformingRep,
			Description: fmt.Sprintf("Rep %s - Win Rate: %.0f%%", rep.RepName, metric),
			Severity:    severity,
			RepID:       rep.RepID,
			RepName:     rep.RepName,
			Metric:      &metric,
		})
	}

	return risks
}

func lowActivityRisk(inactive int) (domain.RiskFactor, bool) {
	if inactive <= 0 {
		return domain.RiskFactor{}, false
	}

	return domain.RiskFactor{
		ID:          "low-activity-accounts",
		Type:        domain.RiskLowActivity,
		Description: fmt.Sprintf("%d Accounts with no recent activity", inactive),
		Severity:    severityAbove(inactive, lowActivityHighAbove, lowActivityMediumAbove),
		Count:       intPtr(inactive),
	}, true
}

func largeDealsRisk(large domain.DealTotals) (domain.RiskFactor, bool) {
	if large.Count <= 0 {
		return domain.RiskFactor{}, false
	}

	severity := domain.SeverityMedium
	if large.Count > largeDealsHighAbove {
		severity = domain.SeverityHigh
	}

	return domain.RiskFactor{
		ID:          "large-deals-at-risk",
		Type:        domain.RiskStaleDeals,
		Description: fmt.Sprintf("%d large deals (>%s) stuck in negotiation", large.Count, utils.FormatThousands(LargeDealAmount)),
		Severity:    severity,
		Count:       intPtr(large.Count),
		Amount:      floatPtr(utils.RoundWithTwoDecimalPlace(large.Amount)),
	}, true
}

func severityAbove(count, highAbove, mediumAbove int) domain.Severity {
	switch {
	case count > highAbove:
		return domain.SeverityHigh
	case count > mediumAbove:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// rankedReps mantém vendedores com amostra mínima, da menor para a maior taxa de conversão.
// Empates preservam a ordem de entrada (por rep_id).
func rankedReps(reps []domain.RepDealTotals) []domain.RepDealTotals {
	ranked := make([]domain.RepDealTotals, 0, len(reps))
	for _, rep := range reps {
		if rep.Closed >= MinClosedDealsPerRep {
			ranked = append(ranked, rep)
		}
	}

	slices.SortStableFunc(ranked, func(a, b domain.RepDealTotals) int {
		return cmp.Compare(a.WinRate(), b.WinRate())
	})

	return ranked
}

// topSegment retorna o segmento com mais ocorrências; empates ficam com o menor nome
func topSegment[T any](rows []T, segment func(T) domain.Segment, count func(T) int) (T, bool) {
	var top T
	found := false
	for _, row := range rows {
		if !found ||
			count(row) > count(top) ||
			(count(row) == count(top) && segment(row) < segment(top)) {
			top, found = row, true
		}
	}
	return top, found
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
