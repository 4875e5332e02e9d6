// Package scheduler contém os jobs agendados sobre as análises de vendas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

const digestOperation = "analytics_digest"

type AnalyticsDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

// Digest é o resumo de uma execução, uma linha por rodada no log
type Digest struct {
	QuarterLabel        string  `json:"quarter_label"`
	Revenue             float64 `json:"revenue"`
	Target              float64 `json:"target"`
	GapPercentage       float64 `json:"gap_percentage"`
	PipelineValue       float64 `json:"pipeline_value"`
	WinRate             float64 `json:"win_rate"`
	HighRisks           int     `json:"high_risks"`
	Risks               int     `json:"risks"`
	HighRecommendations int     `json:"high_recommendations"`
	Recommendations     int     `json:"recommendations"`
}

// AnalyticsDigestService calcula periodicamente as quatro análises e registra o resumo
type AnalyticsDigestService struct {
	scheduler          *gocron.Scheduler
	analyzer           analyzing.Analyzer
	config             AnalyticsDigestConfig
	running            bool
	mutex              sync.Mutex
	lastDigest         *Digest
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewAnalyticsDigestService(analyzer analyzing.Analyzer, cfg *config.Config) *AnalyticsDigestService {
	digestConfig := AnalyticsDigestConfig{
		CronSchedule: cfg.Digest.CronSchedule,
		Enabled:      cfg.Digest.Enabled,
	}

	log.L.WithOperation(digestOperation).WithFields(log.Fields{
		"analytics_cron": digestConfig.CronSchedule,
	}).Info("Configuração do digest de análises carregada")

	return &AnalyticsDigestService{
		scheduler: gocron.NewScheduler(time.UTC),
		analyzer:  analyzer,
		config:    digestConfig,
	}
}

func (s *AnalyticsDigestService) Start(ctx context.Context) error {
	logger := log.L.WithOperation(digestOperation)

	if !s.config.Enabled {
		logger.Info("Digest de análises desabilitado por configuração")
		return nil
	}

	logger.WithField("analytics_cron", s.config.CronSchedule).Info("Iniciando cron do digest de análises")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Run(ctx); err != nil {
			logger.WithError(err).Error("Erro na execução do digest de análises")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar digest de análises: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logger.Info("Parando cron do digest de análises")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa uma rodada do digest. Retorna nil sem erro quando outra rodada já está em andamento.
func (s *AnalyticsDigestService) Run(ctx context.Context) (*Digest, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		log.ForContext(ctx).WithOperation(digestOperation).Warn("Digest de análises já está em execução")
		return nil, nil
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastRunCompletedAt = time.Now()
		s.mutex.Unlock()
	}()

	digest, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	s.lastDigest = digest
	s.mutex.Unlock()

	log.ForContext(ctx).WithOperation(digestOperation).WithFields(log.Fields{
		"analytics_quarter":         digest.QuarterLabel,
		"analytics_revenue":         digest.Revenue,
		"analytics_gap":             digest.GapPercentage,
		"analytics_risks":           digest.Risks,
		"analytics_recommendations": digest.Recommendations,
	}).Infof("Digest %s: receita %.2f de %.2f (%+.2f%%), %d riscos (%d altos), %d recomendações (%d altas)",
		digest.QuarterLabel, digest.Revenue, digest.Target, digest.GapPercentage,
		digest.Risks, digest.HighRisks, digest.Recommendations, digest.HighRecommendations)

	return digest, nil
}

// compute consulta as quatro análises em paralelo
func (s *AnalyticsDigestService) compute(ctx context.Context) (*Digest, error) {
	var (
		summary         *domain.SummaryResponse
		drivers         *domain.DriversResponse
		risks           []domain.RiskFactor
		recommendations []domain.Recommendation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.analyzer.GetSummary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		drivers, err = s.analyzer.GetDrivers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		risks, err = s.analyzer.GetRiskFactors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recommendations, err = s.analyzer.GetRecommendations(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("erro ao calcular digest de análises: %w", err)
	}

	digest := &Digest{
		QuarterLabel:    summary.QuarterLabel,
		Revenue:         summary.CurrentQuarterRevenue,
		Target:          summary.Target,
		GapPercentage:   summary.GapPercentage,
		PipelineValue:   drivers.PipelineValue.Current,
		WinRate:         drivers.WinRate.Current,
		Risks:           len(risks),
		Recommendations: len(recommendations),
	}
	for _, risk := range risks {
		if risk.Severity == domain.SeverityHigh {
			digest.HighRisks++
		}
	}
	for _, rec := range recommendations {
		if rec.Priority == domain.PriorityHigh {
			digest.HighRecommendations++
		}
	}

	return digest, nil
}

// TriggerManualRun inicia uma rodada fora do agendamento
func (s *AnalyticsDigestService) TriggerManualRun(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		log.L.WithOperation(digestOperation).Info("Digest de análises já em andamento, ignorando solicitação manual")
		return
	}
	s.mutex.Unlock()

	go func() {
		if _, err := s.Run(ctx); err != nil {
			log.L.WithOperation(digestOperation).WithError(err).Error("Erro na execução manual do digest de análises")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsDigestService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_digest":           s.lastDigest,
	}
}
