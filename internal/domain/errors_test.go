package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckColumns(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		validate func(t *testing.T, err error)
	}{
		{
			name:    "Todas as colunas presentes, extras toleradas",
			columns: []string{"cliente", ColumnPrecioUnitario, ColumnCantidad, ColumnProducto, ColumnFecha},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "Colunas ausentes em ordem alfabética",
			columns: []string{ColumnProducto, ColumnFecha},
			validate: func(t *testing.T, err error) {
				var columnsErr *ColumnsError
				require.True(t, errors.As(err, &columnsErr))
				assert.Equal(t, []string{ColumnCantidad, ColumnPrecioUnitario}, columnsErr.Columns)
				assert.ErrorIs(t, err, ErrMissingColumns)
				assert.Contains(t, err.Error(), "cantidad, precio_unitario")
			},
		},
		{
			name:    "Sem cabeçalho",
			columns: nil,
			validate: func(t *testing.T, err error) {
				var columnsErr *ColumnsError
				require.True(t, errors.As(err, &columnsErr))
				assert.Len(t, columnsErr.Columns, len(SalesColumns))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CheckColumns(tt.columns, SalesColumns...))
		})
	}
}
