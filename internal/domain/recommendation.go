package domain

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank ordena prioridades: menor valor é mais urgente
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

type RecommendationCategory string

const (
	CategoryDeals    RecommendationCategory = "deals"
	CategoryReps     RecommendationCategory = "reps"
	CategoryAccounts RecommendationCategory = "accounts"
	CategoryPipeline RecommendationCategory = "pipeline"
)

type Recommendation struct {
	ID           string                 `json:"id"`
	Priority     Priority               `json:"priority"`
	Category     RecommendationCategory `json:"category"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	ImpactMetric string                 `json:"impactMetric"`
}
