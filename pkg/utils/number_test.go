package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    float64
	}{
		{name: "divisão normal", numerator: 10, denominator: 4, expected: 2.5},
		{name: "divisor zero", numerator: 10, denominator: 0, expected: 0},
		{name: "zero sobre zero", numerator: 0, denominator: 0, expected: 0},
		{name: "negativo", numerator: -9, denominator: 3, expected: -3},
		{name: "numerador infinito", numerator: math.Inf(1), denominator: 2, expected: 0},
		{name: "numerador NaN", numerator: math.NaN(), denominator: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeDiv(tt.numerator, tt.denominator))
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int32
		expected float64
	}{
		{name: "meio para cima", value: 1234.565, places: 2, expected: 1234.57},
		{name: "meio negativo para longe do zero", value: -2.5, places: 0, expected: -3},
		{name: "uma casa", value: 18.05, places: 1, expected: 18.1},
		{name: "zero", value: 0, places: 2, expected: 0},
		{name: "infinito vira zero", value: math.Inf(-1), places: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round(tt.value, tt.places))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 5.43, RoundWithTwoDecimalPlace(5.4321))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
