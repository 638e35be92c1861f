package domain

import (
	"strconv"
	"time"
)

// Colunas da tabela de vendas
const (
	ColumnFecha          = "fecha"
	ColumnProducto       = "producto"
	ColumnCantidad       = "cantidad"
	ColumnPrecioUnitario = "precio_unitario"
	ColumnTotal          = "total"
)

// SalesColumns são as colunas obrigatórias de entrada
var SalesColumns = []string{ColumnFecha, ColumnProducto, ColumnCantidad, ColumnPrecioUnitario}

// RawRecord é uma linha da tabela de vendas como foi lida. Ponteiro nil = valor ausente.
type RawRecord struct {
	Fecha          *string
	Producto       *string
	Cantidad       *string
	PrecioUnitario *string
	Extra          map[string]*string
}

// SalesTable é a tabela de vendas carregada em memória
type SalesTable struct {
	Source   string
	Checksum string
	Columns  []string
	Rows     []RawRecord
}

// Value retorna o valor de uma coluna declarada
func (r RawRecord) Value(column string) *string {
	switch column {
	case ColumnFecha:
		return r.Fecha
	case ColumnProducto:
		return r.Producto
	case ColumnCantidad:
		return r.Cantidad
	case ColumnPrecioUnitario:
		return r.PrecioUnitario
	default:
		return r.Extra[column]
	}
}

// SetValue atribui o valor de uma coluna
func (r *RawRecord) SetValue(column string, value *string) {
	switch column {
	case ColumnFecha:
		r.Fecha = value
	case ColumnProducto:
		r.Producto = value
	case ColumnCantidad:
		r.Cantidad = value
	case ColumnPrecioUnitario:
		r.PrecioUnitario = value
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]*string)
		}
		r.Extra[column] = value
	}
}

// CleanRecord é uma linha que passou por todas as etapas de limpeza
type CleanRecord struct {
	Fecha          time.Time         `json:"fecha"`
	Producto       string            `json:"producto"`
	Cantidad       float64           `json:"cantidad"`
	PrecioUnitario float64           `json:"precio_unitario"`
	Total          float64           `json:"total"`
	Extra          map[string]string `json:"extra,omitempty"`
}

// Raw converte a linha limpa de volta para a forma textual de entrada
func (c CleanRecord) Raw() RawRecord {
	fecha := c.Fecha.Format(time.DateOnly)
	producto := c.Producto
	cantidad := strconv.FormatFloat(c.Cantidad, 'f', -1, 64)
	precio := strconv.FormatFloat(c.PrecioUnitario, 'f', -1, 64)

	raw := RawRecord{
		Fecha:          &fecha,
		Producto:       &producto,
		Cantidad:       &cantidad,
		PrecioUnitario: &precio,
	}

	for column, value := range c.Extra {
		v := value
		raw.SetValue(column, &v)
	}

	return raw
}

// CleanTable é o resultado da limpeza. Columns inclui a coluna total.
type CleanTable struct {
	Columns []string
	Rows    []CleanRecord
}

// CleaningReport resume a limpeza
type CleaningReport struct {
	InitialCount int `json:"initial_count"`
	FinalCount   int `json:"final_count"`
	RemovedCount int `json:"removed_count"`
}
