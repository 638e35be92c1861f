package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data estritamente no formato YYYY-MM-DD; espaços
// nas pontas tornam a data inválida
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), nil
}

// MonthKey retorna o mês da data no formato YYYY-MM
func MonthKey(date time.Time) string {
	return date.Format("2006-01")
}
