package deriving

import (
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

// Chaves das métricas brutas, lidas diretamente dos campos da campanha
const (
	KeyImpressoes        = "impressoes"
	KeyCliques           = "cliques"
	KeyCliquesInvalidos  = "cliquesInvalidos"
	KeyConversoes        = "conversoes"
	KeyVisitantes        = "visitantes"
	KeyCheckouts         = "checkouts"
	KeyParcelaImpressoes = "parcelaImpressoes"
	KeyIndiceQualidade   = "indiceQualidade"
	KeyOrcamento         = "orcamento"
	KeyCusto             = "custo"
	KeyComissao          = "comissao"
	KeyCPCInformado      = "cpcInformado"
	KeyReceitaInformada  = "receitaInformada"
)

// Chaves das métricas derivadas
const (
	KeyCTR                  = "ctr"
	KeyCPC                  = "cpc"
	KeyCPCMedio             = "cpcMedio"
	KeyCPM                  = "cpm"
	KeyTaxaConversao        = "taxaConversao"
	KeyCustoConversao       = "custoConversao"
	KeyFaturamento          = "faturamento"
	KeyLucro                = "lucro"
	KeyROI                  = "roi"
	KeyROAS                 = "roas"
	KeyTaxaCliquesInvalidos = "taxaCliquesInvalidos"
	KeyTaxaCheckout         = "taxaCheckout"
	KeyUsoOrcamento         = "usoOrcamento"
)

// RawValues extrai os campos brutos da campanha; campos ausentes valem zero
func RawValues(c domain.Campaign) domain.Values {
	return domain.Values{
		KeyImpressoes:        domain.Value(c.Impressoes),
		KeyCliques:           domain.Value(c.Cliques),
		KeyCliquesInvalidos:  domain.Value(c.CliquesInvalidos),
		KeyConversoes:        domain.Value(c.Conversoes),
		KeyVisitantes:        domain.Value(c.Visitantes),
		KeyCheckouts:         domain.Value(c.Checkouts),
		KeyParcelaImpressoes: domain.Value(c.ParcelaImpressoes),
		KeyIndiceQualidade:   domain.Value(c.IndiceQualidade),
		KeyOrcamento:         domain.Value(c.Orcamento),
		KeyCusto:             domain.Value(c.Custo),
		KeyComissao:          domain.Value(c.Comissao),
		KeyCPCInformado:      domain.Value(c.CPCMedio),
		KeyReceitaInformada:  domain.Value(c.Faturamento),
	}
}

func raw(key string, category domain.Category, unit domain.Unit) domain.MetricDefinition {
	return domain.MetricDefinition{
		Key:      key,
		Category: category,
		Unit:     unit,
		Raw:      true,
		Formula: func(v domain.Values) float64 {
			return v.Get(key)
		},
	}
}

func derived(key string, category domain.Category, unit domain.Unit, formula domain.Formula, dependsOn ...string) domain.MetricDefinition {
	return domain.MetricDefinition{
		Key:       key,
		Category:  category,
		Unit:      unit,
		DependsOn: dependsOn,
		Formula:   formula,
	}
}

// Definitions retorna o catálogo padrão de métricas, fonte única de todas as fórmulas
func Definitions() []domain.MetricDefinition {
	return []domain.MetricDefinition{
		raw(KeyImpressoes, domain.CategoryAlcance, domain.UnitCount),
		raw(KeyCliques, domain.CategoryEngajamento, domain.UnitCount),
		raw(KeyCliquesInvalidos, domain.CategoryQualidade, domain.UnitCount),
		raw(KeyConversoes, domain.CategoryConversao, domain.UnitCount),
		raw(KeyVisitantes, domain.CategoryAlcance, domain.UnitCount),
		raw(KeyCheckouts, domain.CategoryConversao, domain.UnitCount),
		raw(KeyParcelaImpressoes, domain.CategoryAlcance, domain.UnitPercentage),
		raw(KeyIndiceQualidade, domain.CategoryQualidade, domain.UnitCount),
		raw(KeyOrcamento, domain.CategoryCusto, domain.UnitCurrency),
		raw(KeyCusto, domain.CategoryCusto, domain.UnitCurrency),
		raw(KeyComissao, domain.CategoryFinanceiro, domain.UnitCurrency),
		raw(KeyCPCInformado, domain.CategoryCusto, domain.UnitCurrency),
		raw(KeyReceitaInformada, domain.CategoryFinanceiro, domain.UnitCurrency),

		derived(KeyCTR, domain.CategoryEngajamento, domain.UnitPercentage, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyCliques), v.Get(KeyImpressoes)) * 100
		}, KeyCliques, KeyImpressoes),

		derived(KeyCPC, domain.CategoryCusto, domain.UnitCurrency, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyCusto), v.Get(KeyCliques))
		}, KeyCusto, KeyCliques),

		// cpcMedio é sempre recalculado; o valor informado pela plataforma fica em cpcInformado
		derived(KeyCPCMedio, domain.CategoryCusto, domain.UnitCurrency, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyCusto), v.Get(KeyCliques))
		}, KeyCusto, KeyCliques),

		derived(KeyCPM, domain.CategoryCusto, domain.UnitCurrency, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyCusto), v.Get(KeyImpressoes)) * 1000
		}, KeyCusto, KeyImpressoes),

		derived(KeyTaxaConversao, domain.CategoryConversao, domain.UnitPercentage, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyConversoes), v.Get(KeyCliques)) * 100
		}, KeyConversoes, KeyCliques),

		derived(KeyCustoConversao, domain.CategoryConversao, domain.UnitCurrency, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyCusto), v.Get(KeyConversoes))
		}, KeyCusto, KeyConversoes),

		derived(KeyFaturamento, domain.CategoryFinanceiro, domain.UnitCurrency, func(v domain.Values) float64 {
			return v.Get(KeyComissao) * v.Get(KeyConversoes)
		}, KeyComissao, KeyConversoes),

		derived(KeyLucro, domain.CategoryFinanceiro, domain.UnitCurrency, func(v domain.Values) float64 {
			return v.Get(KeyFaturamento) - v.Get(KeyCusto)
		}, KeyFaturamento, KeyCusto),

		derived(KeyROI, domain.CategoryFinanceiro, domain.UnitPercentage, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyLucro), v.Get(KeyCusto)) * 100
		}, KeyLucro, KeyCusto),

		derived(KeyROAS, domain.CategoryFinanceiro, domain.UnitMultiplier, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyFaturamento), v.Get(KeyCusto))
		}, KeyFaturamento, KeyCusto),

		derived(KeyTaxaCliquesInvalidos, domain.CategoryQualidade, domain.UnitPercentage, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyCliquesInvalidos), v.Get(KeyCliques)+v.Get(KeyCliquesInvalidos)) * 100
		}, KeyCliquesInvalidos, KeyCliques),

		derived(KeyTaxaCheckout, domain.CategoryConversao, domain.UnitPercentage, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyCheckouts), v.Get(KeyVisitantes)) * 100
		}, KeyCheckouts, KeyVisitantes),

		derived(KeyUsoOrcamento, domain.CategoryCusto, domain.UnitPercentage, func(v domain.Values) float64 {
			return utils.SafeDiv(v.Get(KeyCusto), v.Get(KeyOrcamento)) * 100
		}, KeyCusto, KeyOrcamento),
	}
}

// MonetaryKeys são as métricas expressas na moeda da campanha
func MonetaryKeys(r *Registry) []string {
	keys := make([]string, 0)
	for _, def := range r.Definitions() {
		if def.Unit == domain.UnitCurrency {
			keys = append(keys, def.Key)
		}
	}

	return keys
}
