package converting

import (
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

// RateSource fornece a cotação corrente sem realizar I/O
type RateSource interface {
	GetRate() domain.ExchangeRate
}

// Convert converte um valor entre BRL e USD usando a cotação USD→BRL informada.
// Não arredonda: o arredondamento acontece apenas na formatação.
func Convert(amount float64, from, to domain.Currency, rate float64) float64 {
	if from == to {
		return amount
	}

	switch {
	case from == domain.CurrencyUSD && to == domain.CurrencyBRL:
		return utils.Finite(amount * rate)
	case from == domain.CurrencyBRL && to == domain.CurrencyUSD:
		return utils.SafeDiv(amount, rate)
	}

	return amount
}

// NormalizeCampaign devolve uma cópia da campanha com todos os campos monetários
// convertidos para a moeda de destino. A campanha original não é alterada.
func NormalizeCampaign(c domain.Campaign, to domain.Currency, rate float64) domain.Campaign {
	normalized := c
	if c.Currency == to {
		return normalized
	}

	normalized.Orcamento = convertField(c.Orcamento, c.Currency, to, rate)
	normalized.Custo = convertField(c.Custo, c.Currency, to, rate)
	normalized.CPCMedio = convertField(c.CPCMedio, c.Currency, to, rate)
	normalized.Comissao = convertField(c.Comissao, c.Currency, to, rate)
	normalized.Faturamento = convertField(c.Faturamento, c.Currency, to, rate)
	normalized.Currency = to

	return normalized
}

// NormalizeCampaigns normaliza cada campanha com a cotação escolhida por RateFor
func NormalizeCampaigns(campaigns []domain.Campaign, to domain.Currency, source RateSource) []domain.Campaign {
	normalized := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		normalized = append(normalized, NormalizeCampaign(c, to, RateFor(c, source).Rate))
	}

	return normalized
}

// RateFor escolhe a cotação de uma campanha: a taxa gravada na própria campanha,
// quando válida, tem prioridade sobre a cotação corrente do provedor
func RateFor(c domain.Campaign, source RateSource) domain.ExchangeRate {
	if c.TaxaCambio != nil && domain.IsUsableRate(*c.TaxaCambio) {
		return domain.ExchangeRate{
			Rate:      *c.TaxaCambio,
			FetchedAt: c.UpdatedAt,
			Source:    domain.RateSourceCampaign,
		}
	}

	return source.GetRate()
}

// NeedsProviderRate indica se exibir a campanha em `to` depende da cotação do provedor
func NeedsProviderRate(c domain.Campaign, to domain.Currency) bool {
	if c.Currency == to {
		return false
	}

	return c.TaxaCambio == nil || !domain.IsUsableRate(*c.TaxaCambio)
}

func convertField(value *float64, from, to domain.Currency, rate float64) *float64 {
	if value == nil {
		return nil
	}

	converted := Convert(*value, from, to, rate)

	return &converted
}
