package source

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

func parseCSV(data []byte) ([]string, [][]string, error) {
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptySource
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao ler linhas")
	}

	return header, records, nil
}
