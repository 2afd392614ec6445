package domain

import "errors"

var (
	// ErrUnknownMetric indica uma chave de métrica que não existe no registro.
	// É um erro de programação e nunca deve ser convertido silenciosamente em zero.
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrRateFetchFailed indica que a atualização da cotação falhou.
	// É recuperável: a última cotação válida (ou o fallback) continua em uso.
	ErrRateFetchFailed = errors.New("exchange rate fetch failed")

	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidAggregation  = errors.New("invalid aggregation mode")
	ErrCampaignNotFound    = errors.New("campaign not found")
)
