package domain

import (
	"fmt"
	"slices"
	"time"
)

// Stage representa o estágio do ciclo de vida de um negócio
type Stage string

const (
	StageProspecting Stage = "Prospecting"
	StageNegotiation Stage = "Negotiation"
	StageClosedWon   Stage = "Closed Won"
	StageClosedLost  Stage = "Closed Lost"
)

var (
	// OpenStages são os estágios não terminais
	OpenStages = []Stage{StageProspecting, StageNegotiation}
	// ClosedStages são os estágios terminais
	ClosedStages = []Stage{StageClosedWon, StageClosedLost}
)

func (s Stage) Valid() bool {
	return slices.Contains(OpenStages, s) || slices.Contains(ClosedStages, s)
}

// Terminal indica se o negócio já foi encerrado (ganho ou perdido)
func (s Stage) Terminal() bool {
	return slices.Contains(ClosedStages, s)
}

func ParseStage(value string) (Stage, error) {
	s := Stage(value)
	if !s.Valid() {
		return "", fmt.Errorf("estágio inválido: %q", value)
	}
	return s, nil
}

// StageValues converte os estágios para string, formato aceito pelos drivers SQL
func StageValues(stages []Stage) []string {
	values := make([]string, 0, len(stages))
	for _, s := range stages {
		values = append(values, string(s))
	}
	return values
}

type ActivityType string

const (
	ActivityCall  ActivityType = "call"
	ActivityEmail ActivityType = "email"
	ActivityDemo  ActivityType = "demo"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityCall, ActivityEmail, ActivityDemo:
		return true
	}
	return false
}

func ParseActivityType(value string) (ActivityType, error) {
	t := ActivityType(value)
	if !t.Valid() {
		return "", fmt.Errorf("tipo de atividade inválido: %q", value)
	}
	return t, nil
}

// Deal é um negócio do funil. ClosedAt só existe em estágios terminais.
type Deal struct {
	ID        string     `json:"deal_id"`
	AccountID string     `json:"account_id"`
	RepID     string     `json:"rep_id"`
	Stage     Stage      `json:"stage"`
	Amount    *float64   `json:"amount"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at"`
}

// Validate verifica as invariantes do negócio
func (d Deal) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("negócio sem deal_id")
	}
	if !d.Stage.Valid() {
		return fmt.Errorf("negócio %s: estágio inválido %q", d.ID, d.Stage)
	}
	if d.Amount != nil && *d.Amount < 0 {
		return fmt.Errorf("negócio %s: valor negativo", d.ID)
	}
	if d.CreatedAt.IsZero() {
		return fmt.Errorf("negócio %s: created_at ausente", d.ID)
	}
	if d.Stage.Terminal() != (d.ClosedAt != nil) {
		return fmt.Errorf("negócio %s: closed_at deve existir somente em estágios terminais", d.ID)
	}
	if d.ClosedAt != nil && d.ClosedAt.Before(d.CreatedAt) {
		return fmt.Errorf("negócio %s: closed_at anterior a created_at", d.ID)
	}
	return nil
}

type Activity struct {
	ID        string       `json:"activity_id"`
	DealID    string       `json:"deal_id"`
	Type      ActivityType `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
}
