package cleaning

import (
	"errors"

	"github.com/vfg2006/sales-analytics/internal/domain"
)

// Erros específicos da limpeza
var (
	ErrNoTable        = errors.New("sales table is nil")
	ErrMissingColumns = domain.ErrMissingColumns
)
