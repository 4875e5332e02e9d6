package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate aceita yyyy-mm-dd ou um timestamp RFC3339 e retorna apenas a data em UTC
func ParseDate(dateStr string) (time.Time, error) {
	t, err := ParseTimestamp(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseTimestamp aceita yyyy-mm-dd, yyyy-mm-dd hh:mm:ss ou RFC3339
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	layouts := []string{time.RFC3339Nano, time.RFC3339, time.DateTime, "2006-01-02T15:04:05", time.DateOnly}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data inválido: %q", value)
}

// ParseOptionalDate trata nil e string vazia como ausência de data
func ParseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	t, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ValidMonth verifica uma chave de mês yyyy-mm
func ValidMonth(month string) bool {
	_, err := time.Parse("2006-01", month)
	return err == nil
}
