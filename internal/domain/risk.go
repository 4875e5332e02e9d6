package domain

// Severity é a gravidade de um fator de risco
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank ordena severidades: menor valor é mais grave
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	}
	return 3
}

type RiskType string

const (
	RiskStaleDeals         RiskType = "stale_deals"
	RiskUnderperformingRep RiskType = "underperforming_rep"
	RiskLowActivity        RiskType = "low_activity"
)

type RiskFactor struct {
	ID          string   `json:"id"`
	Type        RiskType `json:"type"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Count       *int     `json:"count,omitempty"`
	RepID       string   `json:"repId,omitempty"`
	RepName     string   `json:"repName,omitempty"`
	Metric      *float64 `json:"metric,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
}
