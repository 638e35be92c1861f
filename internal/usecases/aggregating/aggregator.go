package aggregating

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

var requiredColumns = []string{
	domain.ColumnFecha,
	domain.ColumnProducto,
	domain.ColumnCantidad,
	domain.ColumnPrecioUnitario,
	domain.ColumnTotal,
}

// Aggregate calcula os rankings por quantidade e por faturamento e a série de
// faturamento mensal. Sem as colunas necessárias nenhuma métrica parcial é devolvida.
func Aggregate(table *domain.CleanTable) (*domain.Metrics, error) {
	if table == nil {
		return nil, &domain.ColumnsError{Columns: sortedCopy(requiredColumns)}
	}

	if err := domain.CheckColumns(table.Columns, requiredColumns...); err != nil {
		logrus.WithError(err).Warn("Tabela limpa sem colunas para agregação")
		return nil, err
	}

	quantity := newAccumulator()
	revenue := newAccumulator()
	monthly := newAccumulator()

	for _, record := range table.Rows {
		quantity.add(record.Producto, record.Cantidad)
		revenue.add(record.Producto, record.Total)
		monthly.add(utils.MonthKey(record.Fecha), record.Total)
	}

	metrics := &domain.Metrics{
		RankingByQuantity: quantity.ranking(),
		RankingByRevenue:  revenue.ranking(),
		MonthlyRevenue:    monthly.monthly(),
	}

	if len(metrics.RankingByQuantity) > 0 {
		top := metrics.RankingByQuantity[0]
		metrics.TopByQuantity = &top
	}
	if len(metrics.RankingByRevenue) > 0 {
		top := metrics.RankingByRevenue[0]
		metrics.TopByRevenue = &top
	}

	logrus.WithFields(logrus.Fields{
		"rows":     len(table.Rows),
		"products": len(metrics.RankingByQuantity),
		"months":   len(metrics.MonthlyRevenue),
	}).Debug("Métricas calculadas")

	return metrics, nil
}

// accumulator soma valores por chave na ordem das linhas
type accumulator struct {
	keys []string
	sums map[string]float64
}

func newAccumulator() *accumulator {
	return &accumulator{sums: make(map[string]float64)}
}

func (a *accumulator) add(key string, value float64) {
	if _, ok := a.sums[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.sums[key] += value
}

// ranking ordena por valor decrescente e, no empate, por produto crescente
func (a *accumulator) ranking() []domain.RankingEntry {
	entries := make([]domain.RankingEntry, 0, len(a.keys))
	for _, key := range a.keys {
		entries = append(entries, domain.RankingEntry{Producto: key, Valor: a.sums[key]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Valor != entries[j].Valor {
			return entries[i].Valor > entries[j].Valor
		}
		return entries[i].Producto < entries[j].Producto
	})

	return entries
}

func (a *accumulator) monthly() []domain.MonthlyRevenueEntry {
	months := sortedCopy(a.keys)

	entries := make([]domain.MonthlyRevenueEntry, 0, len(months))
	for _, month := range months {
		entries = append(entries, domain.MonthlyRevenueEntry{Mes: month, FacturacionTotal: a.sums[month]})
	}

	return entries
}

func sortedCopy(values []string) []string {
	out := append([]string{}, values...)
	sort.Strings(out)
	return out
}
