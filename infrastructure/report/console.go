// Package report exibe os resultados da análise no console e gera o gráfico mensal
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

type ConsolePrinter struct {
	out io.Writer
}

func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{out: out}
}

func (p *ConsolePrinter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// PrintMode exibe o modo de execução, ex: [MODO CSV,PERMITE_CERO] arquivo=ventas.csv permite_cero=true
func (p *ConsolePrinter) PrintMode(source string, explicitSource, allowZero bool) {
	var modes []string
	if explicitSource {
		modes = append(modes, "CSV")
	}
	if allowZero {
		modes = append(modes, "PERMITE_CERO")
	}
	if len(modes) == 0 {
		modes = []string{"DEFAULT"}
	}

	p.printf("\n[MODO %s] arquivo=%s permite_cero=%t\n\n", strings.Join(modes, ","), source, allowZero)
}

// PrintCleaning exibe a amostra de linhas limpas e o resumo da limpeza
func (p *ConsolePrinter) PrintCleaning(sample []domain.CleanRecord, report domain.CleaningReport) {
	if len(sample) > 0 {
		extras := extraColumns(sample)
		headers := append([]string{domain.ColumnFecha, domain.ColumnProducto, domain.ColumnCantidad, domain.ColumnPrecioUnitario}, extras...)
		headers = append(headers, domain.ColumnTotal)

		rows := make([][]string, 0, len(sample))
		for _, record := range sample {
			row := []string{
				record.Fecha.Format(time.DateOnly),
				record.Producto,
				utils.FormatValue(record.Cantidad),
				utils.FormatValue(record.PrecioUnitario),
			}
			for _, column := range extras {
				row = append(row, record.Extra[column])
			}
			row = append(row, utils.FormatValue(record.Total))
			rows = append(rows, row)
		}
		_ = writeTable(p.out, headers, rows)
	}

	p.printf("\n=== RESUMO FINAL ===\n")
	p.printf("Linhas iniciais:  %d\n", report.InitialCount)
	p.printf("Linhas finais:    %d\n", report.FinalCount)
	p.printf("Removidas total:  %d\n", report.RemovedCount)
}

// PrintAnalysis exibe os produtos top e o faturamento mensal
func (p *ConsolePrinter) PrintAnalysis(metrics *domain.Metrics) {
	if metrics == nil {
		p.printf("Não foi possível calcular a análise.\n")
		return
	}

	p.printf("\n=== ANÁLISE ===\n")
	if top := metrics.TopByQuantity; top != nil {
		p.printf("Produto mais vendido (quantidade): %s -> %d\n", top.Producto, int64(top.Valor))
	}
	if top := metrics.TopByRevenue; top != nil {
		p.printf("Produto com maior faturamento: %s -> %.2f\n", top.Producto, top.Valor)
	}

	p.printf("\nFaturamento total por mês:\n")
	if len(metrics.MonthlyRevenue) == 0 {
		p.printf("(sem dados)\n")
		return
	}

	rows := make([][]string, 0, len(metrics.MonthlyRevenue))
	for _, entry := range metrics.MonthlyRevenue {
		rows = append(rows, []string{entry.Mes, utils.FormatValue(entry.FacturacionTotal)})
	}
	_ = writeTable(p.out, []string{"mes", "facturacion_total"}, rows)
}

// PrintChart informa onde o gráfico foi salvo ou por que não foi gerado
func (p *ConsolePrinter) PrintChart(path string, err error) {
	if err != nil {
		p.printf("Gráfico não gerado: %v\n", err)
		return
	}
	p.printf("Gráfico salvo em: %s\n", path)
}

// PrintSnapshotSaved informa o id do snapshot gravado
func (p *ConsolePrinter) PrintSnapshotSaved(id int64) {
	if id == 0 {
		p.printf("Não foi possível salvar a análise.\n")
		return
	}
	p.printf("Análise salva (id=%d).\n", id)
}

// PrintNoData é exibido quando a limpeza não deixou nenhuma linha utilizável
func (p *ConsolePrinter) PrintNoData() {
	p.printf("Não foi possível gerar resultados (tabela vazia).\n")
}

// PrintResult exibe uma execução completa do pipeline
func (p *ConsolePrinter) PrintResult(result *domain.AnalysisResult) {
	p.PrintCleaning(result.Sample, result.Report)

	if result.Report.FinalCount == 0 {
		p.PrintNoData()
		return
	}

	p.PrintAnalysis(result.Metrics)
	if result.ChartPath != "" {
		p.PrintChart(result.ChartPath, nil)
	}
	p.PrintSnapshotSaved(result.SnapshotID)
}

// PrintRecent lista os snapshots com o preview do ranking
func (p *ConsolePrinter) PrintRecent(previews []*domain.SnapshotPreview, limit int) {
	if len(previews) == 0 {
		p.printf("Não há análises salvas.\n")
		return
	}

	p.printf("=== ÚLTIMAS %d ANÁLISES ===\n", limit)
	for _, preview := range previews {
		p.printf("- id=%d ts=%s\n", preview.ID, preview.CreatedAt.Format("2006-01-02 15:04:05"))
		p.printRanking(preview.Preview, "   ")
	}
}

// PrintTopN exibe o Top-N de um snapshot
func (p *ConsolePrinter) PrintTopN(entries []domain.RankingEntry, n int, title string) {
	if len(entries) == 0 {
		p.printf("Não há análises anteriores ou o id informado não existe.\n")
		return
	}

	p.printf("=== TOP %d - %s ===\n", n, title)
	p.printRanking(entries, "")
}

func (p *ConsolePrinter) printRanking(entries []domain.RankingEntry, indent string) {
	for i, entry := range entries {
		p.printf("%s%d. %s: %s\n", indent, i+1, entry.Producto, utils.FormatValue(entry.Valor))
	}
}

func extraColumns(sample []domain.CleanRecord) []string {
	seen := make(map[string]struct{})
	var columns []string
	for _, record := range sample {
		for column := range record.Extra {
			if _, ok := seen[column]; !ok {
				seen[column] = struct{}{}
				columns = append(columns, column)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
