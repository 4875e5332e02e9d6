package domain

import "github.com/vfg2006/sales-insights-api/pkg/utils"

// DealTotals é o resultado de uma agregação sobre um DealFilter
type DealTotals struct {
	Count           int     `db:"deal_count"`
	Won             int     `db:"won_count"`
	Closed          int     `db:"closed_count"`
	Amount          float64 `db:"amount_sum"`
	AvgWonAmount    float64 `db:"won_amount_avg"`
	AvgWonCycleDays float64 `db:"won_cycle_days_avg"`
}

// WinRate retorna Won / Closed * 100, ou 0 sem negócios encerrados
func (t DealTotals) WinRate() float64 {
	return utils.Percentage(t.Won, t.Closed)
}

type MonthlyDealTotals struct {
	Month string `db:"month"`
	DealTotals
}

type SegmentDealTotals struct {
	Segment Segment `db:"segment"`
	DealTotals
}

type IndustryDealTotals struct {
	Industry string `db:"industry"`
	DealTotals
}

type RepDealTotals struct {
	RepID   string `db:"rep_id"`
	RepName string `db:"rep_name"`
	DealTotals
}

// SegmentCount é a contagem de contas distintas por segmento
type SegmentCount struct {
	Segment Segment `db:"segment"`
	Count   int     `db:"account_count"`
}

// StageCount é a contagem de negócios por estágio
type StageCount struct {
	Stage Stage `db:"stage"`
	Count int   `db:"deal_count"`
}
