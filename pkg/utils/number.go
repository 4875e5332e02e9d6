package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	half     = decimal.NewFromFloat(0.5)
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// roundHalfUp arredonda para o inteiro mais próximo; empates vão para +∞ (-2.5 -> -2)
func roundHalfUp(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Add(half).Floor()
}

// RoundWithTwoDecimalPlace arredonda para duas casas com empates para +∞.
// A escala por 100 é feita em float64, então 1.005 vira 100.49999999999999 e arredonda para 1.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return roundHalfUp(f * 100).Div(hundred).InexactFloat64()
}

// RoundWhole arredonda para a unidade inteira mais próxima, empates para +∞
func RoundWhole(f float64) float64 {
	if f == 0 {
		return 0
	}

	return roundHalfUp(f).InexactFloat64()
}

// PercentChange retorna (current-previous)/previous*100 sem arredondar.
// ok é falso quando previous é zero e a comparação não está definida.
func PercentChange(current, previous float64) (value float64, ok bool) {
	if previous == 0 {
		return 0, false
	}

	prev := decimal.NewFromFloat(previous)
	return decimal.NewFromFloat(current).Sub(prev).Div(prev).Mul(hundred).InexactFloat64(), true
}

// Percentage retorna part/total*100, ou 0 quando total é zero
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return decimal.NewFromInt(int64(part)).Div(decimal.NewFromInt(int64(total))).Mul(hundred).InexactFloat64()
}

// FormatThousands formata um valor monetário em milhares, ex.: 125400 -> "$125K"
func FormatThousands(amount float64) string {
	return fmt.Sprintf("$%sK", decimal.NewFromFloat(amount).Div(thousand).Round(0).String())
}
