package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "remove acento", input: "café", expected: "CAFE", ok: true},
		{name: "já normalizado", input: "CAFE", expected: "CAFE", ok: true},
		{name: "espaços nas pontas e internos", input: "  café   com\tleite ", expected: "CAFE COM LEITE", ok: true},
		{name: "til e acento agudo", input: "ñandú", expected: "NANDU", ok: true},
		{name: "cedilha", input: "açaí", expected: "ACAI", ok: true},
		{name: "dígitos", input: " produto 7 ", expected: "PRODUTO 7", ok: true},
		{name: "somente dígitos", input: "42", expected: "42", ok: true},
		{name: "pontuação preservada", input: "pão-de-queijo!", expected: "PAO-DE-QUEIJO!", ok: true},
		{name: "marca combinante solta", input: " \u0301a", expected: "A", ok: true},
		{name: "j com caron", input: "ǰ", expected: "J", ok: true},
		{name: "eszett vira SS", input: "ß", expected: "SS", ok: true},
		{name: "eszett no meio da palavra", input: "straße", expected: "STRASSE", ok: true},
		{name: "ligadura fi", input: "ﬁno", expected: "FINO", ok: true},
		{name: "i com ponto", input: "İstanbul", expected: "ISTANBUL", ok: true},
		{name: "vazio", input: "", ok: false},
		{name: "apenas espaços", input: "   \t ", ok: false},
		{name: "apenas pontuação", input: "¿?!...", ok: false},
		{name: "apenas acento", input: "\u0301", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"café", "Café ", "CAFE", " té  verde ", "ǰ", " \u0301a", "ß", "ǅungla",
		"ﬁno", "Ångström", "İstanbul", "ẍy", "  ", "órgão 2", "Ω ohm",
	}

	for _, input := range inputs {
		first, ok := Normalize(input)
		if !ok {
			continue
		}
		require.NotContains(t, first, "ß", input)
		second, ok := Normalize(first)
		assert.True(t, ok, input)
		assert.Equal(t, first, second, input)
	}
}
