package analyzing

import (
	"context"

	"github.com/vfg2006/sales-analytics/internal/domain"
)

// TableReader carrega a tabela de vendas de um arquivo ou URL
type TableReader interface {
	Read(ctx context.Context, location string) (*domain.SalesTable, error)
}

// ChartRenderer desenha o faturamento mensal e devolve o caminho do arquivo gerado
type ChartRenderer interface {
	RenderMonthlyRevenue(entries []domain.MonthlyRevenueEntry, path string) (string, error)
}
