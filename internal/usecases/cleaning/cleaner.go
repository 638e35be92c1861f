package cleaning

import (
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

// candidate acompanha uma linha enquanto ela atravessa as etapas
type candidate struct {
	raw    domain.RawRecord
	record domain.CleanRecord
}

type stage struct {
	name string
	keep func(c *candidate) bool
}

// Clean valida e converte a tabela de vendas. As etapas rodam em ordem e cada
// uma só remove linhas; a ordem relativa das linhas é preservada.
func Clean(table *domain.SalesTable, allowZero bool) (*domain.CleanTable, domain.CleaningReport, error) {
	if table == nil {
		return &domain.CleanTable{Columns: cleanColumns(nil), Rows: []domain.CleanRecord{}}, domain.CleaningReport{}, ErrNoTable
	}

	report := domain.CleaningReport{InitialCount: len(table.Rows)}

	if err := domain.CheckColumns(table.Columns, domain.SalesColumns...); err != nil {
		report.RemovedCount = report.InitialCount
		logrus.WithFields(logrus.Fields{
			"source": table.Source,
			"error":  err,
		}).Warn("Tabela sem colunas obrigatórias")
		return &domain.CleanTable{Columns: cleanColumns(table.Columns), Rows: []domain.CleanRecord{}}, report, err
	}

	candidates := make([]*candidate, 0, len(table.Rows))
	for _, row := range table.Rows {
		candidates = append(candidates, &candidate{raw: row})
	}

	stages := []stage{
		{name: "valores ausentes", keep: completeIn(table.Columns)},
		{name: "fecha", keep: parseFecha},
		{name: "producto", keep: normalizeProducto},
		{name: "numéricos", keep: coerceNumbers},
		{name: "sinal", keep: signFilter(allowZero)},
	}

	for _, s := range stages {
		before := len(candidates)
		candidates = filter(candidates, s.keep)
		if removed := before - len(candidates); removed > 0 {
			logrus.WithFields(logrus.Fields{
				"stage":   s.name,
				"removed": removed,
			}).Debug("Linhas removidas na limpeza")
		}
	}

	rows := make([]domain.CleanRecord, 0, len(candidates))
	for _, c := range candidates {
		c.record.Total = utils.CalculateTotal(c.record.Cantidad, c.record.PrecioUnitario)
		c.record.Extra = extraValues(c.raw)
		rows = append(rows, c.record)
	}

	report.FinalCount = len(rows)
	report.RemovedCount = report.InitialCount - report.FinalCount

	return &domain.CleanTable{Columns: cleanColumns(table.Columns), Rows: rows}, report, nil
}

func filter(candidates []*candidate, keep func(c *candidate) bool) []*candidate {
	kept := candidates[:0]
	for _, c := range candidates {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

func completeIn(columns []string) func(c *candidate) bool {
	return func(c *candidate) bool {
		for _, column := range columns {
			if c.raw.Value(column) == nil {
				return false
			}
		}
		return true
	}
}

func parseFecha(c *candidate) bool {
	fecha, err := utils.ParseDate(*c.raw.Fecha)
	if err != nil {
		return false
	}
	c.record.Fecha = fecha
	return true
}

func normalizeProducto(c *candidate) bool {
	producto, ok := Normalize(*c.raw.Producto)
	if !ok {
		return false
	}
	c.record.Producto = producto
	return true
}

func coerceNumbers(c *candidate) bool {
	cantidad, ok := utils.ParseNumber(*c.raw.Cantidad)
	if !ok {
		return false
	}
	precio, ok := utils.ParseNumber(*c.raw.PrecioUnitario)
	if !ok {
		return false
	}
	c.record.Cantidad = cantidad
	c.record.PrecioUnitario = precio
	return true
}

func signFilter(allowZero bool) func(c *candidate) bool {
	if allowZero {
		return func(c *candidate) bool {
			return c.record.Cantidad >= 0 && c.record.PrecioUnitario >= 0
		}
	}
	return func(c *candidate) bool {
		return c.record.Cantidad > 0 && c.record.PrecioUnitario > 0
	}
}

func extraValues(raw domain.RawRecord) map[string]string {
	if len(raw.Extra) == 0 {
		return nil
	}
	extra := make(map[string]string, len(raw.Extra))
	for column, value := range raw.Extra {
		if column == domain.ColumnTotal || value == nil {
			continue
		}
		extra[column] = *value
	}
	return extra
}

// cleanColumns devolve o esquema de entrada acrescido de total
func cleanColumns(columns []string) []string {
	out := make([]string, 0, len(columns)+1)
	for _, column := range columns {
		if column != domain.ColumnTotal {
			out = append(out, column)
		}
	}
	return append(out, domain.ColumnTotal)
}
