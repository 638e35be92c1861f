package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingColumns indica que a tabela não tem todas as colunas obrigatórias
var ErrMissingColumns = errors.New("faltam colunas obrigatórias")

// ColumnsError lista as colunas obrigatórias ausentes
type ColumnsError struct {
	Columns []string
}

// Error implementa a interface error
func (e *ColumnsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumns.Error(), strings.Join(e.Columns, ", "))
}

// Unwrap retorna o erro base
func (e *ColumnsError) Unwrap() error {
	return ErrMissingColumns
}

// CheckColumns retorna um *ColumnsError com as colunas obrigatórias ausentes (em ordem alfabética)
func CheckColumns(columns []string, required ...string) error {
	present := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		present[column] = struct{}{}
	}

	var missing []string
	for _, column := range required {
		if _, ok := present[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return &ColumnsError{Columns: missing}
}
