package domain

// DisplayOptions controla a moeda e a precisão da resposta
type DisplayOptions struct {
	Currency            Currency
	PercentagePrecision int
}

// MetricValue é uma métrica calculada e formatada para exibição
type MetricValue struct {
	Key       string   `json:"key"`
	Category  Category `json:"category"`
	Unit      Unit     `json:"unit"`
	Value     float64  `json:"value"`
	Formatted string   `json:"formatted"`
}

// CampaignMetricsResponse representa as métricas de uma campanha na moeda de exibição
type CampaignMetricsResponse struct {
	CampaignID      string        `json:"campaign_id"`
	CampaignName    string        `json:"campaign_name"`
	Active          bool          `json:"active"`
	NativeCurrency  Currency      `json:"native_currency"`
	DisplayCurrency Currency      `json:"display_currency"`
	ExchangeRate    ExchangeRate  `json:"exchange_rate"`
	Metrics         []MetricValue `json:"metrics"`
}

// AggregateResponse representa o resultado de uma agregação de métrica
type AggregateResponse struct {
	Metric          string       `json:"metric"`
	Mode            string       `json:"mode"`
	Unit            Unit         `json:"unit"`
	Value           float64      `json:"value"`
	Formatted       string       `json:"formatted"`
	CampaignCount   int          `json:"campaign_count"`
	DisplayCurrency Currency     `json:"display_currency"`
	ExchangeRate    ExchangeRate `json:"exchange_rate"`
}

// SummaryResponse representa os KPIs consolidados do dashboard
type SummaryResponse struct {
	CampaignCount       int           `json:"campaign_count"`
	ActiveCampaignCount int           `json:"active_campaign_count"`
	DisplayCurrency     Currency      `json:"display_currency"`
	ExchangeRate        ExchangeRate  `json:"exchange_rate"`
	StaleExchangeRate   bool          `json:"stale_exchange_rate"`
	KPIs                []MetricValue `json:"kpis"`
}

// MetricDefinitionResponse expõe uma entrada do catálogo de métricas
type MetricDefinitionResponse struct {
	Key       string   `json:"key"`
	Category  Category `json:"category"`
	Unit      Unit     `json:"unit"`
	DependsOn []string `json:"depends_on"`
	Raw       bool     `json:"raw"`
}

// ExchangeRateResponse expõe a cotação atual com o indicador de desatualização
type ExchangeRateResponse struct {
	ExchangeRate ExchangeRate `json:"exchange_rate"`
	Stale        bool         `json:"stale"`
	Refreshed    *bool        `json:"refreshed,omitempty"`
	Warning      string       `json:"warning,omitempty"`
}
