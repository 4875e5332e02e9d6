// Package repository contém as consultas de agregação sobre o armazenamento de vendas
package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const (
	dealsTable   = "deals d"
	accountsJoin = "accounts a ON a.account_id = d.account_id"
	repsJoin     = "reps r ON r.rep_id = d.rep_id"
)

func dateValue(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// dealConditions traduz um DealFilter para o WHERE das consultas de negócios.
// É o único lugar onde os conjuntos de estágios e os limites de datas viram SQL.
func dealConditions(f domain.DealFilter) squirrel.And {
	conds := squirrel.And{}

	if len(f.Stages) > 0 {
		conds = append(conds, squirrel.Eq{"d.stage": domain.StageValues(f.Stages)})
	}
	if len(f.ExcludeStages) > 0 {
		conds = append(conds, squirrel.NotEq{"d.stage": domain.StageValues(f.ExcludeStages)})
	}
	if f.Segment != "" {
		conds = append(conds, squirrel.Eq{"a.segment": string(f.Segment)})
	}
	if !f.ClosedFrom.IsZero() {
		conds = append(conds, squirrel.GtOrEq{"d.closed_at": dateValue(f.ClosedFrom)})
	}
	if !f.ClosedTo.IsZero() {
		conds = append(conds, squirrel.LtOrEq{"d.closed_at": dateValue(f.ClosedTo)})
	}
	if !f.CreatedFrom.IsZero() {
		conds = append(conds, squirrel.GtOrEq{"d.created_at": dateValue(f.CreatedFrom)})
	}
	if !f.CreatedTo.IsZero() {
		conds = append(conds, squirrel.LtOrEq{"d.created_at": dateValue(f.CreatedTo)})
	}
	if !f.CreatedBefore.IsZero() {
		conds = append(conds, squirrel.Lt{"d.created_at": dateValue(f.CreatedBefore)})
	}
	if f.AmountAbove != nil {
		conds = append(conds, squirrel.Gt{"d.amount": *f.AmountAbove})
	}
	if f.RequireAmount {
		conds = append(conds, squirrel.NotEq{"d.amount": nil})
	}

	return conds
}
