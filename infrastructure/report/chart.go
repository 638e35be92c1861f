package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

// ErrNoMonthlyData indica que não há faturamento mensal para desenhar
var ErrNoMonthlyData = errors.New("no monthly revenue data to plot")

var defaultColors = []string{"#4C78A8", "#F58518"}

const (
	chartHeight = 600
	barWidth    = 48
	barSpacing  = 24
	minWidth    = 640
)

type ChartRenderer struct {
	colors []drawing.Color
}

// NewChartRenderer cria o renderizador; as cores (hex) alternam entre as barras
func NewChartRenderer(colors []string) *ChartRenderer {
	if len(colors) == 0 {
		colors = defaultColors
	}

	parsed := make([]drawing.Color, 0, len(colors))
	for _, color := range colors {
		parsed = append(parsed, drawing.ColorFromHex(strings.TrimPrefix(strings.TrimSpace(color), "#")))
	}

	return &ChartRenderer{colors: parsed}
}

// RenderMonthlyRevenue grava um gráfico de barras PNG do faturamento mensal em path
func (r *ChartRenderer) RenderMonthlyRevenue(entries []domain.MonthlyRevenueEntry, path string) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoMonthlyData
	}

	bars := make([]chart.Value, 0, len(entries))
	maxValue := 0.0
	for i, entry := range entries {
		if entry.FacturacionTotal > maxValue {
			maxValue = entry.FacturacionTotal
		}
		bars = append(bars, chart.Value{
			Label: entry.Mes,
			Value: entry.FacturacionTotal,
			Style: chart.Style{
				FillColor:   r.colors[i%len(r.colors)],
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
			},
		})
	}

	top := maxValue * 1.1
	if top <= 0 {
		top = 1
	}

	width := len(entries)*(barWidth+barSpacing) + 200
	if width < minWidth {
		width = minWidth
	}

	graph := chart.BarChart{
		Title:      "Faturamento total por mês (YYYY-MM)",
		Background: chart.Style{Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20}},
		Width:      width,
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name:           "Faturamento total",
			Range:          &chart.ContinuousRange{Min: 0, Max: top},
			ValueFormatter: thousandsFormatter,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("erro ao renderizar gráfico: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar gráfico em %s: %w", path, err)
	}

	return path, nil
}

func thousandsFormatter(v interface{}) string {
	if value, ok := v.(float64); ok {
		return utils.FormatThousands(value)
	}
	return fmt.Sprintf("%v", v)
}
