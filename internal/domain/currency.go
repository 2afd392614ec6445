package domain

import (
	"fmt"
	"strings"
)

// Currency é a moeda nativa de uma campanha ou a moeda de exibição do dashboard
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
)

// SupportedCurrencies lista as moedas aceitas pelo motor de métricas
var SupportedCurrencies = []Currency{CurrencyBRL, CurrencyUSD}

func (c Currency) IsValid() bool {
	return c == CurrencyBRL || c == CurrencyUSD
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency converte um código de moeda (case-insensitive) para Currency
func ParseCurrency(code string) (Currency, error) {
	currency := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !currency.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}

	return currency, nil
}
