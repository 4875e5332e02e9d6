package analyzing

import (
	"context"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// Analyzer expõe as quatro análises consumidas pelo dashboard.
// Cada operação é independente e tudo-ou-nada: em erro nenhum resultado parcial é retornado.
type Analyzer interface {
	// GetSummary compara a receita do trimestre corrente com a meta
	GetSummary(ctx context.Context) (*domain.SummaryResponse, error)

	// GetDrivers calcula os indicadores de receita e suas tendências
	GetDrivers(ctx context.Context) (*domain.DriversResponse, error)

	// GetRiskFactors lista os sinais de risco ordenados por severidade
	GetRiskFactors(ctx context.Context) ([]domain.RiskFactor, error)

	// GetRecommendations lista até cinco recomendações ordenadas por prioridade
	GetRecommendations(ctx context.Context) ([]domain.Recommendation, error)
}
