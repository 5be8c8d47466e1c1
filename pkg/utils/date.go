package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos para datas vindas do Adjust e das planilhas (planilhas em locale francês usam dia/mês/ano)
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"2006/01/02",
	"02/01/2006 15:04:05",
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseFlexibleDate interpreta uma data em qualquer um dos formatos conhecidos
func ParseFlexibleDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", value)
}

// NormalizeDate devolve a data no formato YYYY-MM-DD
func NormalizeDate(value string) (string, error) {
	t, err := ParseFlexibleDate(value)
	if err != nil {
		return "", err
	}
	return t.Format(time.DateOnly), nil
}

// Yesterday retorna a data de ontem em relação a now, no formato YYYY-MM-DD
func Yesterday(now time.Time) string {
	return now.AddDate(0, 0, -1).Format(time.DateOnly)
}

// DaysAgo retorna a data de n dias atrás em relação a now, no formato YYYY-MM-DD
func DaysAgo(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(time.DateOnly)
}
