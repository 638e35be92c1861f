package aggregating

import "github.com/vfg2006/sales-analytics/internal/domain"

// ErrMissingColumns indica que a tabela limpa não tem as colunas necessárias para agregar
var ErrMissingColumns = domain.ErrMissingColumns
