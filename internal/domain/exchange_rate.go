package domain

import (
	"math"
	"time"
)

// FallbackUSDBRLRate é a cotação usada enquanto nenhuma busca teve sucesso
const FallbackUSDBRLRate = 5.50

// Origens possíveis de uma cotação
const (
	RateSourceFallback   = "fallback"
	RateSourceAwesomeAPI = "awesomeapi"
	RateSourceDatabase   = "database"
	RateSourceCampaign   = "campaign"
)

// ExchangeRate é a cotação USD→BRL em uso
type ExchangeRate struct {
	ID        string    `json:"id,omitempty"`
	Rate      float64   `json:"rate"`
	FetchedAt time.Time `json:"fetched_at"`
	Source    string    `json:"source"`
}

// NewFallbackRate cria a cotação padrão, sem data de atualização
func NewFallbackRate(rate float64) ExchangeRate {
	if !IsUsableRate(rate) {
		rate = FallbackUSDBRLRate
	}

	return ExchangeRate{
		Rate:   rate,
		Source: RateSourceFallback,
	}
}

// IsFallback indica que a cotação nunca foi obtida de uma fonte externa
func (r ExchangeRate) IsFallback() bool {
	return r.FetchedAt.IsZero()
}

// IsUsableRate valida que a cotação é positiva e finita
func IsUsableRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate)
}
