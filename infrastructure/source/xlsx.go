package source

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// parseXLSX lê a primeira planilha da pasta de trabalho
func parseXLSX(data []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao abrir planilha")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptySource
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao ler planilha %s", sheets[0])
	}

	// linhas totalmente vazias são ignoradas, como no CSV
	nonEmpty := rows[:0]
	for _, row := range rows {
		if len(row) > 0 {
			nonEmpty = append(nonEmpty, row)
		}
	}

	if len(nonEmpty) == 0 {
		return nil, nil, ErrEmptySource
	}

	return nonEmpty[0], nonEmpty[1:], nil
}
