package domain

// DriverMetric é um indicador com valor atual, variação contra o trimestre anterior e tendência mensal
type DriverMetric struct {
	Current       float64   `json:"current"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Trend         []float64 `json:"trend"`
	Label         string    `json:"label"`
	LowerIsBetter bool      `json:"lowerIsBetter"`
	Improving     bool      `json:"improving"`
}

type DriversResponse struct {
	PipelineValue DriverMetric `json:"pipelineValue"`
	WinRate       DriverMetric `json:"winRate"`
	AvgDealSize   DriverMetric `json:"avgDealSize"`
	SalesCycle    DriverMetric `json:"salesCycle"`
}
