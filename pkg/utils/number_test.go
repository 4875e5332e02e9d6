package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "arredonda para cima", in: 33.336, want: 33.34},
		{name: "empate positivo sobe", in: 0.125, want: 0.13},
		{name: "empate negativo sobe", in: -0.125, want: -0.12},
		{name: "escala em ponto flutuante", in: 1.005, want: 1},
		{name: "negativo", in: -12.345, want: -12.34},
		{name: "negativo abaixo do empate", in: -66.666, want: -66.67},
		{name: "inteiro", in: 25, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "empate positivo sobe", in: 41.5, want: 42},
		{name: "abaixo do empate", in: 41.49, want: 41},
		{name: "empate negativo sobe", in: -2.5, want: -2},
		{name: "variação negativa no empate", in: -1234.5, want: -1234},
		{name: "negativo além do empate", in: -2.51, want: -3},
		{name: "maior valor abaixo de meio", in: 0.49999999999999994, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWhole(tt.in))
		})
	}
}

func TestPercentChange(t *testing.T) {
	value, ok := PercentChange(150, 100)
	assert.True(t, ok)
	assert.Equal(t, 50.0, value)

	value, ok = PercentChange(100, 0)
	assert.False(t, ok)
	assert.Equal(t, 0.0, value)

	value, ok = PercentChange(0, 200)
	assert.True(t, ok)
	assert.Equal(t, -100.0, value)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 50.0, Percentage(5, 10))
	assert.Equal(t, 100.0, Percentage(7, 7))
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "$125K", FormatThousands(125400))
	assert.Equal(t, "$126K", FormatThousands(125500))
	assert.Equal(t, "$0K", FormatThousands(0))
}
