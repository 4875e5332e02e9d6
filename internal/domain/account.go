// Package domain contém as entidades e os tipos de resposta das análises de vendas
package domain

import (
	"fmt"
	"slices"
)

// Segment representa a faixa de porte de uma conta
type Segment string

const (
	SegmentSMB        Segment = "SMB"
	SegmentMidMarket  Segment = "Mid-Market"
	SegmentEnterprise Segment = "Enterprise"
)

// Segments lista os segmentos válidos na ordem de porte
var Segments = []Segment{SegmentSMB, SegmentMidMarket, SegmentEnterprise}

func (s Segment) Valid() bool {
	return slices.Contains(Segments, s)
}

// Slug retorna o segmento em minúsculas e sem espaços, usado em IDs
func (s Segment) Slug() string {
	switch s {
	case SegmentSMB:
		return "smb"
	case SegmentMidMarket:
		return "mid-market"
	case SegmentEnterprise:
		return "enterprise"
	}
	return "unknown"
}

func ParseSegment(value string) (Segment, error) {
	s := Segment(value)
	if !s.Valid() {
		return "", fmt.Errorf("segmento inválido: %q", value)
	}
	return s, nil
}

type Account struct {
	ID       string  `json:"account_id" db:"account_id"`
	Name     string  `json:"name" db:"name"`
	Industry string  `json:"industry" db:"industry"`
	Segment  Segment `json:"segment" db:"segment"`
}

type Rep struct {
	ID   string `json:"rep_id" db:"rep_id"`
	Name string `json:"name" db:"name"`
}
