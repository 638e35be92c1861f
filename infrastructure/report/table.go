package report

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeTable escreve uma tabela de texto com as colunas alinhadas à direita,
// medindo a largura visível de cada célula (nomes acentuados ou largos).
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if width := runewidth.StringWidth(cell); width > widths[i] {
					widths[i] = width
				}
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = runewidth.FillLeft(cell, widths[i])
	}
	return strings.Join(padded, " ")
}
