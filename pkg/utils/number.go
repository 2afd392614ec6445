package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// SafeDiv é a única primitiva de divisão do motor de métricas: divisor zero resulta em zero
func SafeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return Finite(numerator / denominator)
}

// Finite substitui NaN e infinitos por zero
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// Round arredonda para a quantidade de casas informada, com meio para longe do zero
func Round(f float64, places int32) float64 {
	f = Finite(f)
	if f == 0 {
		return 0
	}

	rounded, _ := decimal.NewFromFloat(f).Round(places).Float64()

	return rounded
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}
