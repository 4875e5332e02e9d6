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

// recommendationSnapshot contém todos os agregados avaliados pelas regras
type recommendationSnapshot struct {
	enterpriseStale   domain.DealTotals
	repTotals         []domain.RepDealTotals
	team              domain.DealTotals
	inactiveBySegment []domain.SegmentCount
	openByStage       []domain.StageCount
	longNegotiation   domain.DealTotals
	industries        []domain.IndustryDealTotals
}

// recommendationRule avalia uma condição sobre o snapshot; ok falso omite a recomendação
type recommendationRule func(snap recommendationSnapshot) (domain.Recommendation, bool)

// recommendationRules é a bateria na ordem de avaliação, que desempata prioridades iguais
var recommendationRules = []recommendationRule{
	focusEnterpriseDeals,
	coachUnderperformingRep,
	increaseSegmentActivity,
	accelerateProspecting,
	streamlineNegotiation,
	industryFocus,
}

// RecommendationsAt avalia as regras de recomendação a partir da data de referência
func (s *Service) RecommendationsAt(ctx context.Context, asOf time.Time) ([]domain.Recommendation, error) {
	w, err := s.start(ctx, opRecommendations, asOf)
	if err != nil {
		return nil, err
	}

	var snap recommendationSnapshot

	err = collect(ctx, opRecommendations,
		func(ctx context.Context) error {
			var err error
			snap.enterpriseStale, err = s.deals.Totals(ctx, staleDeals(w).InSegment(domain.SegmentEnterprise))
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
			snap.inactiveBySegment, err = s.activities.InactiveAccountsBySegment(ctx, w.recentSince())
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.openByStage, err = s.deals.CountByStage(ctx, domain.OpenDeals())
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.longNegotiation, err = s.deals.Totals(ctx, longNegotiation(w))
			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.industries, err = s.deals.TotalsByIndustry(ctx, domain.ClosedDeals())
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return buildRecommendations(snap, recommendationRules), nil
}

func longNegotiation(w window) domain.DealFilter {
	return domain.DealsIn(domain.StageNegotiation).OlderThan(w.asOf, LongNegotiationDays)
}

// buildRecommendations avalia cada regra de forma independente, ordena por prioridade e corta no máximo
func buildRecommendations(snap recommendationSnapshot, rules []recommendationRule) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(rules))
	for _, rule := range rules {
		if rec, ok := rule(snap); ok {
			recommendations = append(recommendations, rec)
		}
	}

	slices.SortStableFunc(recommendations, func(a, b domain.Recommendation) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	})

	if len(recommendations) > MaxRecommendations {
		recommendations = recommendations[:MaxRecommendations]
	}

	return recommendations
}

func focusEnterpriseDeals(snap recommendationSnapshot) (domain.Recommendation, bool) {
	stale := snap.enterpriseStale
	if stale.Count <= enterpriseStaleMinAbove {
		return domain.Recommendation{}, false
	}

	value := utils.FormatThousands(stale.Amount)
	return domain.Recommendation{
		ID:       "focus-enterprise-deals",
		Priority: domain.PriorityHigh,
		Category: domain.CategoryDeals,
		Title:    "Focus on aging deals in Enterprise segment",
		Description: fmt.Sprintf(
			"%d Enterprise deals are stuck for over %d days with potential value of %s. Schedule executive reviews to unblock these opportunities.",
			stale.Count, StaleDealDays, value,
		),
		ImpactMetric: value + " potential revenue",
	}, true
}

func coachUnderperformingRep(snap recommendationSnapshot) (domain.Recommendation, bool) {
	ranked := rankedReps(snap.repTotals)
	if len(ranked) == 0 {
		return domain.Recommendation{}, false
	}

	rep := ranked[0]
	rate := rep.WinRate()
	teamRate := snap.team.WinRate()
	if rate >= teamRate*underperformingRatio {
		return domain.Recommendation{}, false
	}

	return domain.Recommendation{
		ID:       "coach-underperforming-rep",
		Priority: domain.PriorityHigh,
		Category: domain.CategoryReps,
		Title:    fmt.Sprintf("Coach %s to improve closing skills", rep.RepName),
		Description: fmt.Sprintf(
			"%s's win rate (%.0f%%) is significantly below team average (%.0f%%). Schedule weekly 1:1 coaching sessions focusing on objection handling and negotiation.",
			rep.RepName, utils.RoundWhole(rate), utils.RoundWhole(teamRate),
		),
		ImpactMetric: fmt.Sprintf("+%.0f%% win rate improvement potential", utils.RoundWhole(teamRate-rate)),
	}, true
}

func increaseSegmentActivity(snap recommendationSnapshot) (domain.Recommendation, bool) {
	top, ok := topSegment(snap.inactiveBySegment,
		func(r domain.SegmentCount) domain.Segment { return r.Segment },
		func(r domain.SegmentCount) int { return r.Count },
	)
	if !ok || top.Count <= inactiveSegmentMinAbove {
		return domain.Recommendation{}, false
	}

	return domain.Recommendation{
		ID:       "increase-activity-segment",
		Priority: domain.PriorityMedium,
		Category: domain.CategoryAccounts,
		Title:    fmt.Sprintf("Increase outreach to inactive %s accounts", top.Segment),
		Description: fmt.Sprintf(
			"%d %s accounts with open deals have had no activity in %d+ days. Create a re-engagement campaign with personalized messaging.",
			top.Count, top.Segment, RecentActivityDays,
		),
		ImpactMetric: fmt.Sprintf("%d accounts to re-engage", top.Count),
	}, true
}

func accelerateProspecting(snap recommendationSnapshot) (domain.Recommendation, bool) {
	var prospecting, negotiation int
	for _, row := range snap.openByStage {
		switch row.Stage {
		case domain.StageProspecting:
			prospecting = row.Count
		case domain.StageNegotiation:
			negotiation = row.Count
		case domain.StageClosedWon, domain.StageClosedLost:
		}
	}

	if prospecting >= negotiation {
		return domain.Recommendation{}, false
	}

	return domain.Recommendation{
		ID:       "accelerate-prospecting",
		Priority: domain.PriorityMedium,
		Category: domain.CategoryPipeline,
		Title:    "Accelerate prospecting efforts",
		Description: fmt.Sprintf(
			"Pipeline is top-heavy with %d deals in Negotiation but only %d in Prospecting. Increase outbound activities to maintain healthy pipeline coverage.",
			negotiation, prospecting,
		),
		ImpactMetric: fmt.Sprintf("Need %d+ new prospects", negotiation-prospecting),
	}, true
}

func streamlineNegotiation(snap recommendationSnapshot) (domain.Recommendation, bool) {
	long := snap.longNegotiation
	if long.Count <= longNegotiationMinAbove {
		return domain.Recommendation{}, false
	}

	return domain.Recommendation{
		ID:       "streamline-negotiation",
		Priority: domain.PriorityMedium,
		Category: domain.CategoryDeals,
		Title:    "Streamline negotiation process",
		Description: fmt.Sprintf(
			"%d deals have been in Negotiation for over %d days. Review pricing approval workflows and empower reps with more flexibility on standard terms.",
			long.Count, LongNegotiationDays,
		),
		ImpactMetric: utils.FormatThousands(long.Amount) + " at stake",
	}, true
}

// industryFocus escolhe a indústria com maior taxa de conversão entre as com amostra mínima.
// Empates ficam com a primeira em ordem alfabética.
func industryFocus(snap recommendationSnapshot) (domain.Recommendation, bool) {
	var (
		best  domain.IndustryDealTotals
		found bool
	)
	for _, industry := range snap.industries {
		if industry.Closed < MinClosedDealsPerIndustry {
			continue
		}
		if !found ||
			industry.WinRate() > best.WinRate() ||
			(industry.WinRate() == best.WinRate() && industry.Industry < best.Industry) {
			best, found = industry, true
		}
	}

	if !found {
		return domain.Recommendation{}, false
	}

	rate := utils.RoundWhole(best.WinRate())
	return domain.Recommendation{
		ID:       "industry-focus",
		Priority: domain.PriorityLow,
		Category: domain.CategoryPipeline,
		Title:    fmt.Sprintf("Double down on %s vertical", best.Industry),
		Description: fmt.Sprintf(
			"%s has your highest win rate (%.0f%%). Consider allocating more marketing budget and SDR capacity to this vertical.",
			best.Industry, rate,
		),
		ImpactMetric: fmt.Sprintf("%.0f%% win rate", rate),
	}, true
}
