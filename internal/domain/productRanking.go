// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// RankingEntry é uma posição do ranking de produtos (quantidade ou faturamento)
type RankingEntry struct {
	Producto string  `json:"producto"`
	Valor    float64 `json:"valor"`
}

// MonthlyRevenueEntry é o faturamento total de um mês no formato YYYY-MM
type MonthlyRevenueEntry struct {
	Mes              string  `json:"mes"`
	FacturacionTotal float64 `json:"facturacion_total"`
}

// Metrics são as métricas calculadas sobre a tabela limpa
type Metrics struct {
	RankingByQuantity []RankingEntry        `json:"ranking_cantidad"`
	RankingByRevenue  []RankingEntry        `json:"ranking_facturacion"`
	MonthlyRevenue    []MonthlyRevenueEntry `json:"facturacion_mensual"`
	TopByQuantity     *RankingEntry         `json:"producto_top_cantidad"`
	TopByRevenue      *RankingEntry         `json:"producto_top_facturacion"`
}
