package domain

import (
	"fmt"
	"time"
)

const (
	// MonthLayout é o formato da chave de mês usada em metas e séries
	MonthLayout = "2006-01"
	DateLayout  = time.DateOnly
)

// Period é uma janela fechada de dias [Start, End]
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// StartMonth retorna a chave yyyy-mm do primeiro mês do período
func (p Period) StartMonth() string {
	return p.Start.Format(MonthLayout)
}

// EndMonth retorna a chave yyyy-mm do último mês do período
func (p Period) EndMonth() string {
	return p.End.Format(MonthLayout)
}

// Months lista as chaves de mês do período em ordem de calendário
func (p Period) Months() []string {
	months := make([]string, 0, 12)
	for m := FirstOfMonth(p.Start); !m.After(p.End); m = m.AddDate(0, 1, 0) {
		months = append(months, m.Format(MonthLayout))
	}
	return months
}

// QuarterOf retorna o trimestre de calendário que contém a data
func QuarterOf(t time.Time) Period {
	d := TruncateDay(t)
	firstMonth := time.Month((int(d.Month())-1)/3*3 + 1)
	start := time.Date(d.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1)
	return Period{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("Q%d %d", (int(firstMonth)-1)/3+1, d.Year()),
	}
}

// LastCompleteQuarter retorna o trimestre mais recente cujo último dia é <= asOf
func LastCompleteQuarter(asOf time.Time) Period {
	q := QuarterOf(asOf)
	if q.End.After(TruncateDay(asOf)) {
		return q.Previous()
	}
	return q
}

// Previous retorna o trimestre imediatamente anterior
func (p Period) Previous() Period {
	return QuarterOf(p.Start.AddDate(0, 0, -1))
}

// TrailingMonths retorna a janela de n meses de calendário que termina no mês de end
func TrailingMonths(end time.Time, n int) Period {
	last := FirstOfMonth(end)
	start := last.AddDate(0, -(n - 1), 0)
	return Period{
		Start: start,
		End:   last.AddDate(0, 1, -1),
		Label: fmt.Sprintf("%s..%s", start.Format(MonthLayout), last.Format(MonthLayout)),
	}
}

func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
