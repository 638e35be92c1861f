// Package source carrega a tabela de vendas a partir de CSV, XLSX ou de uma URL
package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

const utf8BOM = "\ufeff"

var (
	ErrEmptySource     = errors.New("source has no header row")
	ErrMalformedRow    = errors.New("row has more fields than the header")
	ErrDuplicateColumn = errors.New("duplicated column in header")
)

// Downloader baixa o conteúdo de uma URL
type Downloader func(ctx context.Context, url string) ([]byte, error)

type TableReader struct {
	download Downloader
}

func NewTableReader() *TableReader {
	return &TableReader{download: utils.MakeRequest}
}

// NewTableReaderWithDownloader permite trocar o cliente HTTP
func NewTableReaderWithDownloader(download Downloader) *TableReader {
	return &TableReader{download: download}
}

// Read carrega a tabela de vendas de location. URLs http(s) são lidas como CSV,
// arquivos .xlsx pela primeira planilha e qualquer outro arquivo como CSV.
func (r *TableReader) Read(ctx context.Context, location string) (*domain.SalesTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.load(ctx, location)
	if err != nil {
		return nil, err
	}

	var (
		header  []string
		records [][]string
	)
	if isXLSX(location) {
		header, records, err = parseXLSX(data)
	} else {
		header, records, err = parseCSV(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar %s", location)
	}

	table, err := buildTable(location, header, records)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar %s", location)
	}
	table.Checksum = Checksum(data)

	logrus.WithFields(logrus.Fields{
		"source":   location,
		"rows":     len(table.Rows),
		"columns":  len(table.Columns),
		"checksum": table.Checksum,
	}).Debug("Tabela de vendas carregada")

	return table, nil
}

func (r *TableReader) load(ctx context.Context, location string) ([]byte, error) {
	if isURL(location) {
		data, err := r.download(ctx, location)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao baixar %s", location)
		}
		return data, nil
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", location)
	}
	return data, nil
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isXLSX(location string) bool {
	if isURL(location) {
		return false
	}
	return strings.EqualFold(filepath.Ext(location), ".xlsx")
}

// buildTable monta a tabela a partir do cabeçalho e das linhas textuais.
// Campos finais ausentes viram valores ausentes.
func buildTable(location string, header []string, records [][]string) (*domain.SalesTable, error) {
	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		if _, ok := seen[name]; ok {
			return nil, errors.Wrap(ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
		columns[i] = name
	}

	rows := make([]domain.RawRecord, 0, len(records))
	for line, record := range records {
		if len(record) > len(columns) {
			return nil, errors.Wrapf(ErrMalformedRow, "linha %d: %d campos, cabeçalho com %d", line+2, len(record), len(columns))
		}

		var row domain.RawRecord
		for i, column := range columns {
			var value *string
			if i < len(record) && !isMissing(record[i]) {
				v := record[i]
				value = &v
			}
			row.SetValue(column, value)
		}
		rows = append(rows, row)
	}

	return &domain.SalesTable{
		Source:  location,
		Columns: columns,
		Rows:    rows,
	}, nil
}

// marcadores tratados como valor ausente, além da célula vazia
var missingMarkers = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isMissing(value string) bool {
	_, ok := missingMarkers[value]
	return ok
}
