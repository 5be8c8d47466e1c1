package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Multiply multiplica dois valores monetários sem erro de ponto flutuante
func Multiply(a, b float64) float64 {
	return decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).InexactFloat64()
}

// SafeDivide divide a por b, retornando 0 quando b <= 0
func SafeDivide(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return decimal.NewFromFloat(a).DivRound(decimal.NewFromFloat(b), 10).InexactFloat64()
}

// SumDecimal soma os valores com precisão decimal
func SumDecimal(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}
