// Package analyzing implementa o motor de métricas de vendas e a fachada de análises
package analyzing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Limiares de política, calibrados para a escala do conjunto de dados de referência
const (
	TrailingMonths = 6

	StaleDealDays       = 30
	RecentActivityDays  = 30
	LargeDealDays       = 45
	LongNegotiationDays = 60
	LargeDealAmount     = 50000.0

	MinClosedDealsPerRep      = 5
	MinClosedDealsPerIndustry = 10
	MaxUnderperformingReps    = 2
	MaxRecommendations        = 5

	// frações da taxa de conversão do time
	underperformingRatio = 0.8
	severeRatio          = 0.6

	staleHighAbove          = 20
	staleMediumAbove        = 10
	lowActivityHighAbove    = 15
	lowActivityMediumAbove  = 8
	largeDealsHighAbove     = 5
	enterpriseStaleMinAbove = 5
	inactiveSegmentMinAbove = 5
	longNegotiationMinAbove = 10
)

const (
	opSummary         = "summary"
	opDrivers         = "drivers"
	opRiskFactors     = "risk_factors"
	opRecommendations = "recommendations"
)

type Service struct {
	deals      repository.DealRepository
	activities repository.ActivityRepository
	targets    repository.TargetRepository
	clock      func() time.Time
}

var _ Analyzer = (*Service)(nil)

func NewService(
	deals repository.DealRepository,
	activities repository.ActivityRepository,
	targets repository.TargetRepository,
) *Service {
	return &Service{
		deals:      deals,
		activities: activities,
		targets:    targets,
		clock:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock define a fonte da data de referência usada pelas operações sem data explícita
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

func (s *Service) GetSummary(ctx context.Context) (*domain.SummaryResponse, error) {
	return s.SummaryAt(ctx, s.clock())
}

func (s *Service) GetDrivers(ctx context.Context) (*domain.DriversResponse, error) {
	return s.DriversAt(ctx, s.clock())
}

func (s *Service) GetRiskFactors(ctx context.Context) ([]domain.RiskFactor, error) {
	return s.RiskFactorsAt(ctx, s.clock())
}

func (s *Service) GetRecommendations(ctx context.Context) ([]domain.Recommendation, error) {
	return s.RecommendationsAt(ctx, s.clock())
}

// window reúne os períodos derivados da data de referência
type window struct {
	asOf     time.Time
	current  domain.Period
	previous domain.Period
	trailing domain.Period
}

func newWindow(asOf time.Time) window {
	asOf = domain.TruncateDay(asOf)
	current := domain.LastCompleteQuarter(asOf)

	return window{
		asOf:     asOf,
		current:  current,
		previous: current.Previous(),
		trailing: domain.TrailingMonths(current.End, TrailingMonths),
	}
}

// recentSince é o início da janela de atividade recente
func (w window) recentSince() time.Time {
	return w.asOf.AddDate(0, 0, -RecentActivityDays)
}

// start valida a data de referência e registra o início da operação
func (s *Service) start(ctx context.Context, op string, asOf time.Time) (window, error) {
	if asOf.IsZero() {
		return window{}, newAnalysisError(op, ErrInvalidAsOf)
	}

	w := newWindow(asOf)
	log.ForContext(ctx).WithOperation(op).WithFields(log.Fields{
		"as_of":                   w.asOf.Format(domain.DateLayout),
		"analytics_quarter":       w.current.Label,
		"analytics_prev_quarter":  w.previous.Label,
		"analytics_trailing_from": w.trailing.StartMonth(),
	}).Debug("Calculando análise")

	return w, nil
}

// collect executa as consultas do snapshot em paralelo; a primeira falha cancela as demais
func collect(ctx context.Context, op string, queries ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, query := range queries {
		g.Go(func() error {
			return query(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return newAnalysisError(op, fmt.Errorf("%w: %w", ErrQueryFailed, err))
	}

	return nil
}
