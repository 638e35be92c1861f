package utils

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ParseNumber converte um valor qualquer em float64. Valores vazios, não
// numéricos, NaN e infinitos não são aceitos.
func ParseNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return parseNumberString(v)
	case *string:
		if v == nil {
			return 0, false
		}
		return parseNumberString(*v)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64 {
			return finite(rv.Convert(reflect.TypeOf(float64(0))).Float())
		}
		return 0, false
	}
}

func parseNumberString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return finite(f)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CalculateTotal calcula quantidade * preço unitário. O operando que não puder
// ser convertido contribui com 0.0; nunca retorna erro.
func CalculateTotal(quantity, unitPrice any) float64 {
	q, ok := ParseNumber(quantity)
	if !ok {
		q = 0.0
	}

	p, ok := ParseNumber(unitPrice)
	if !ok {
		p = 0.0
	}

	return q * p
}

// FormatValue formata inteiros sem casa decimal e os demais com duas casas
func FormatValue(f float64) string {
	if f == 0 {
		return "0"
	}

	if !math.IsInf(f, 0) && f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}

	return fmt.Sprintf("%.2f", f)
}

// FormatThousands arredonda para inteiro e separa milhares com vírgula (ex: 12,345)
func FormatThousands(f float64) string {
	rounded := math.Round(f)
	if rounded == 0 {
		return "0"
	}

	digits := strconv.FormatFloat(math.Abs(rounded), 'f', 0, 64)

	var b strings.Builder
	if rounded < 0 {
		b.WriteByte('-')
	}

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
