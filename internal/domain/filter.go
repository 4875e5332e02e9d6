package domain

import "time"

// DateField identifica a coluna de data usada para agrupar negócios por mês
type DateField string

const (
	CreatedAt DateField = "created_at"
	ClosedAt  DateField = "closed_at"
)

// DealFilter é o objeto de consulta compartilhado pelas agregações de negócios.
// Datas zeradas e ponteiros nulos não filtram.
type DealFilter struct {
	Stages        []Stage
	ExcludeStages []Stage
	Segment       Segment
	ClosedFrom    time.Time
	ClosedTo      time.Time
	CreatedFrom   time.Time
	CreatedTo     time.Time
	CreatedBefore time.Time
	AmountAbove   *float64
	RequireAmount bool
}

// OpenDeals filtra negócios fora dos estágios terminais
func OpenDeals() DealFilter {
	return DealFilter{ExcludeStages: ClosedStages}
}

// ClosedDeals filtra negócios ganhos ou perdidos
func ClosedDeals() DealFilter {
	return DealFilter{Stages: ClosedStages}
}

// WonDeals filtra negócios ganhos
func WonDeals() DealFilter {
	return DealFilter{Stages: []Stage{StageClosedWon}}
}

// DealsIn filtra negócios nos estágios informados
func DealsIn(stages ...Stage) DealFilter {
	return DealFilter{Stages: stages}
}

func (f DealFilter) WithAmount() DealFilter {
	f.RequireAmount = true
	return f
}

func (f DealFilter) InSegment(s Segment) DealFilter {
	f.Segment = s
	return f
}

func (f DealFilter) ClosedWithin(p Period) DealFilter {
	f.ClosedFrom = p.Start
	f.ClosedTo = p.End
	return f
}

func (f DealFilter) CreatedWithin(p Period) DealFilter {
	f.CreatedFrom = p.Start
	f.CreatedTo = p.End
	return f
}

// CreatedUntil mantém negócios criados até a data, inclusive
func (f DealFilter) CreatedUntil(t time.Time) DealFilter {
	f.CreatedTo = TruncateDay(t)
	return f
}

// OlderThan mantém negócios com idade maior que days em relação a asOf
func (f DealFilter) OlderThan(asOf time.Time, days int) DealFilter {
	f.CreatedBefore = TruncateDay(asOf).AddDate(0, 0, -days)
	return f
}

func (f DealFilter) AmountGreaterThan(amount float64) DealFilter {
	f.AmountAbove = &amount
	return f
}
