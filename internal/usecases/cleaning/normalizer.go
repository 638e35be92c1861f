package cleaning

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize devolve o nome canônico de um produto: maiúsculas, sem acentos e
// com espaços colapsados. Retorna false quando não sobra nenhuma letra ou dígito.
func Normalize(text string) (string, bool) {
	// ß vira SS e ligaduras como ﬁ viram FI; os transformers guardam estado,
	// então são criados a cada chamada
	upper := cases.Upper(language.Und).String(text)

	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(stripper, upper)
	if err != nil {
		stripped = upper
	}

	normalized := strings.Join(strings.Fields(cases.Upper(language.Und).String(stripped)), " ")
	if !hasAlphanumeric(normalized) {
		return "", false
	}

	return normalized, true
}

func hasAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return true
		}
	}
	return false
}
