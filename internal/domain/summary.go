package domain

const (
	GapAhead  = "ahead"
	GapBehind = "behind"
)

// SummaryResponse é o resumo do trimestre corrente contra a meta
type SummaryResponse struct {
	CurrentQuarterRevenue float64          `json:"currentQuarterRevenue"`
	Target                float64          `json:"target"`
	GapPercentage         float64          `json:"gapPercentage"`
	GapText               string           `json:"gapText"`
	QuarterLabel          string           `json:"quarterLabel"`
	PreviousQuarterLabel  string           `json:"previousQuarterLabel"`
	QoQChange             *float64         `json:"qoqChange"` // nulo quando o trimestre anterior não tem receita
	MonthlyRevenue        []MonthlyRevenue `json:"monthlyRevenue"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Target  float64 `json:"target"`
}
