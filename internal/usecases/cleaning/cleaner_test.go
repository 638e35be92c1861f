package cleaning

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-analytics/internal/domain"
)

func ptr(s string) *string {
	return &s
}

func row(fecha, producto, cantidad, precio *string) domain.RawRecord {
	return domain.RawRecord{Fecha: fecha, Producto: producto, Cantidad: cantidad, PrecioUnitario: precio}
}

func salesTable(rows ...domain.RawRecord) *domain.SalesTable {
	return &domain.SalesTable{
		Source:  "memoria",
		Columns: append([]string{}, domain.SalesColumns...),
		Rows:    rows,
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name      string
		table     *domain.SalesTable
		allowZero bool
		validate  func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error)
	}{
		{
			name: "Café e CAFE viram o mesmo produto",
			table: salesTable(
				row(ptr("2024-01-01"), ptr("Café"), ptr("2"), ptr("10")),
				row(ptr("2024-01-01"), ptr("CAFE"), ptr("1"), ptr("10")),
				row(ptr("2024-02-01"), ptr("Te"), ptr("5"), ptr("2")),
			),
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				require.NoError(t, err)
				require.Len(t, table.Rows, 3)
				assert.Equal(t, "CAFE", table.Rows[0].Producto)
				assert.Equal(t, "CAFE", table.Rows[1].Producto)
				assert.Equal(t, "TE", table.Rows[2].Producto)
				assert.Equal(t, 20.0, table.Rows[0].Total)
				assert.Equal(t, 10.0, table.Rows[2].Total)
				assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), table.Rows[2].Fecha)
				assert.Equal(t, domain.CleaningReport{InitialCount: 3, FinalCount: 3, RemovedCount: 0}, report)
			},
		},
		{
			name: "straße e STRASSE viram o mesmo produto",
			table: salesTable(
				row(ptr("2024-01-01"), ptr("straße"), ptr("1"), ptr("3")),
				row(ptr("2024-01-02"), ptr("STRASSE"), ptr("2"), ptr("3")),
				row(ptr("2024-01-03"), ptr("ß"), ptr("1"), ptr("1")),
			),
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				require.NoError(t, err)
				require.Len(t, table.Rows, 3)
				assert.Equal(t, "STRASSE", table.Rows[0].Producto)
				assert.Equal(t, "STRASSE", table.Rows[1].Producto)
				assert.Equal(t, "SS", table.Rows[2].Producto)
				assert.Equal(t, 0, report.RemovedCount)
			},
		},
		{
			name:  "Quantidade zero é removida quando zero não é permitido",
			table: salesTable(row(ptr("2024-03-10"), ptr("pan"), ptr("0"), ptr("4.5"))),
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				require.NoError(t, err)
				assert.Empty(t, table.Rows)
				assert.Equal(t, domain.CleaningReport{InitialCount: 1, FinalCount: 0, RemovedCount: 1}, report)
			},
		},
		{
			name:      "Quantidade zero é mantida com total zero quando permitido",
			table:     salesTable(row(ptr("2024-03-10"), ptr("pan"), ptr("0"), ptr("4.5"))),
			allowZero: true,
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				require.NoError(t, err)
				require.Len(t, table.Rows, 1)
				assert.Equal(t, 0.0, table.Rows[0].Total)
				assert.Equal(t, domain.CleaningReport{InitialCount: 1, FinalCount: 1, RemovedCount: 0}, report)
			},
		},
		{
			name:      "Negativos são removidos mesmo com zero permitido",
			table:     salesTable(row(ptr("2024-03-10"), ptr("pan"), ptr("-1"), ptr("4.5"))),
			allowZero: true,
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				require.NoError(t, err)
				assert.Empty(t, table.Rows)
				assert.Equal(t, 1, report.RemovedCount)
			},
		},
		{
			name:  "Tabela vazia",
			table: salesTable(),
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				require.NoError(t, err)
				assert.NotNil(t, table.Rows)
				assert.Empty(t, table.Rows)
				assert.Equal(t, domain.CleaningReport{}, report)
				assert.Contains(t, table.Columns, domain.ColumnTotal)
			},
		},
		{
			name: "Linhas inválidas são removidas e a ordem é preservada",
			table: salesTable(
				row(ptr("2024-01-05"), ptr("leche"), ptr("1"), ptr("3")),
				row(nil, ptr("leche"), ptr("1"), ptr("3")),
				row(ptr("05/01/2024"), ptr("leche"), ptr("1"), ptr("3")),
				row(ptr("2024-02-30"), ptr("leche"), ptr("1"), ptr("3")),
				row(ptr("2024-01-06"), ptr("  ?? "), ptr("1"), ptr("3")),
				row(ptr("2024-01-07"), ptr("azúcar"), ptr("dos"), ptr("3")),
				row(ptr("2024-01-08"), ptr("azúcar"), ptr("2"), ptr("NaN")),
				row(ptr("2024-01-09"), ptr("azúcar"), ptr("2"), ptr("inf")),
				row(ptr("2024-01-10"), ptr("azúcar"), ptr(" 2 "), ptr("1.25")),
				row(ptr("2024-01-11"), ptr("arroz"), ptr("3"), nil),
				row(ptr(" 2024-01-12 "), ptr("arroz"), ptr("1"), ptr("2")),
			),
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				require.NoError(t, err)
				require.Len(t, table.Rows, 2)
				assert.Equal(t, "LECHE", table.Rows[0].Producto)
				assert.Equal(t, "AZUCAR", table.Rows[1].Producto)
				assert.Equal(t, 2.5, table.Rows[1].Total)
				assert.Equal(t, domain.CleaningReport{InitialCount: 11, FinalCount: 2, RemovedCount: 9}, report)
			},
		},
		{
			name: "Coluna extra ausente remove a linha",
			table: &domain.SalesTable{
				Columns: append(append([]string{}, domain.SalesColumns...), "tienda"),
				Rows: []domain.RawRecord{
					{Fecha: ptr("2024-01-05"), Producto: ptr("leche"), Cantidad: ptr("1"), PrecioUnitario: ptr("3"), Extra: map[string]*string{"tienda": ptr("centro")}},
					{Fecha: ptr("2024-01-05"), Producto: ptr("leche"), Cantidad: ptr("1"), PrecioUnitario: ptr("3"), Extra: map[string]*string{"tienda": nil}},
					{Fecha: ptr("2024-01-05"), Producto: ptr("leche"), Cantidad: ptr("1"), PrecioUnitario: ptr("3")},
				},
			},
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				require.NoError(t, err)
				require.Len(t, table.Rows, 1)
				assert.Equal(t, map[string]string{"tienda": "centro"}, table.Rows[0].Extra)
				assert.Equal(t, []string{"fecha", "producto", "cantidad", "precio_unitario", "tienda", "total"}, table.Columns)
			},
		},
		{
			name: "Colunas obrigatórias ausentes",
			table: &domain.SalesTable{
				Columns: []string{"fecha", "producto"},
				Rows:    []domain.RawRecord{row(ptr("2024-01-05"), ptr("leche"), nil, nil)},
			},
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingColumns))

				var columnsErr *domain.ColumnsError
				require.True(t, errors.As(err, &columnsErr))
				assert.Equal(t, []string{"cantidad", "precio_unitario"}, columnsErr.Columns)

				assert.Empty(t, table.Rows)
				assert.Equal(t, domain.CleaningReport{InitialCount: 1, FinalCount: 0, RemovedCount: 1}, report)
			},
		},
		{
			name:  "Tabela nil",
			table: nil,
			validate: func(t *testing.T, table *domain.CleanTable, report domain.CleaningReport, err error) {
				assert.ErrorIs(t, err, ErrNoTable)
				require.NotNil(t, table)
				assert.Empty(t, table.Rows)
				assert.Equal(t, 0, report.FinalCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, report, err := Clean(tt.table, tt.allowZero)
			tt.validate(t, table, report, err)
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	for _, allowZero := range []bool{false, true} {
		input := salesTable(
			row(ptr("2024-01-01"), ptr(" café  con leche"), ptr("2"), ptr("1.15")),
			row(ptr("2024-01-02"), ptr("pan"), ptr("0"), ptr("3")),
			row(ptr("2024-01-03"), ptr("!!"), ptr("1"), ptr("3")),
			row(ptr("2024-01-04"), ptr("té"), ptr("0.1"), ptr("19.99")),
			row(ptr("bad"), ptr("té"), ptr("1"), ptr("1")),
		)

		first, _, err := Clean(input, allowZero)
		require.NoError(t, err)

		again := salesTable()
		for _, record := range first.Rows {
			again.Rows = append(again.Rows, record.Raw())
		}

		second, report, err := Clean(again, allowZero)
		require.NoError(t, err)

		assert.Equal(t, len(first.Rows), len(second.Rows))
		assert.Equal(t, 0, report.RemovedCount)
		assert.Equal(t, first.Rows, second.Rows)
	}
}
