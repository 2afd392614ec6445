package deriving

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

const epsilon = 1e-9

func TestEngine_DeriveAll_CampanhaCompleta(t *testing.T) {
	engine := NewEngine(NewDefaultRegistry())

	campaign := domain.Campaign{
		ID:         "cmp-a",
		Currency:   domain.CurrencyBRL,
		Impressoes: domain.Float(1000),
		Cliques:    domain.Float(50),
		Custo:      domain.Float(100),
		Comissao:   domain.Float(20),
		Conversoes: domain.Float(3),
	}

	values := engine.DeriveAll(campaign)

	assert.InDelta(t, 5.0, values[KeyCTR], epsilon)
	assert.InDelta(t, 2.0, values[KeyCPCMedio], epsilon)
	assert.InDelta(t, 2.0, values[KeyCPC], epsilon)
	assert.InDelta(t, 100.0, values[KeyCPM], epsilon)
	assert.InDelta(t, 6.0, values[KeyTaxaConversao], epsilon)
	assert.InDelta(t, 100.0/3, values[KeyCustoConversao], epsilon)
	assert.InDelta(t, 60.0, values[KeyFaturamento], epsilon)
	assert.InDelta(t, -40.0, values[KeyLucro], epsilon)
	assert.InDelta(t, -40.0, values[KeyROI], epsilon)
	assert.InDelta(t, 0.6, values[KeyROAS], epsilon)
}

func TestEngine_DeriveAll_CustoZero(t *testing.T) {
	engine := NewEngine(NewDefaultRegistry())

	for _, conversoes := range []float64{1, 7, 1e6} {
		campaign := domain.Campaign{
			Currency:   domain.CurrencyUSD,
			Custo:      domain.Float(0),
			Conversoes: domain.Float(conversoes),
			Comissao:   domain.Float(15),
		}

		values := engine.DeriveAll(campaign)

		assert.Equal(t, 0.0, values[KeyCustoConversao])
		assert.Equal(t, 0.0, values[KeyROI])
		assert.Equal(t, 0.0, values[KeyROAS])
		assert.Equal(t, 15*conversoes, values[KeyFaturamento])
	}
}

func TestEngine_DeriveAll_SempreFinito(t *testing.T) {
	engine := NewEngine(NewDefaultRegistry())

	options := []*float64{nil, domain.Float(0), domain.Float(1), domain.Float(-3)}

	// todas as combinações de campos ausentes, zerados e preenchidos para os divisores
	for _, impressoes := range options {
		for _, cliques := range options {
			for _, custo := range options {
				for _, conversoes := range options {
					for _, orcamento := range options {
						campaign := domain.Campaign{
							Impressoes:       impressoes,
							Cliques:          cliques,
							CliquesInvalidos: cliques,
							Custo:            custo,
							Conversoes:       conversoes,
							Orcamento:        orcamento,
							Comissao:         custo,
						}

						values := engine.DeriveAll(campaign)
						require.Len(t, values, len(Definitions()))

						for key, value := range values {
							require.False(t, math.IsNaN(value) || math.IsInf(value, 0), "%s não finito: %v", key, value)
						}
					}
				}
			}
		}
	}
}

func TestEngine_DeriveAll_CampanhaVazia(t *testing.T) {
	engine := NewEngine(NewDefaultRegistry())

	values := engine.DeriveAll(domain.Campaign{})

	for _, key := range engine.Registry().AllKeys() {
		assert.Equal(t, 0.0, values[key], key)
	}
}

func TestEngine_DeriveAll_Idempotente(t *testing.T) {
	engine := NewEngine(NewDefaultRegistry())

	campaign := domain.Campaign{
		Impressoes: domain.Float(12345),
		Cliques:    domain.Float(321),
		Custo:      domain.Float(987.65),
		Comissao:   domain.Float(12.5),
		Conversoes: domain.Float(17),
	}

	assert.Equal(t, engine.DeriveAll(campaign), engine.DeriveAll(campaign))
	assert.Equal(t, 987.65, *campaign.Custo)
}

func TestEngine_DeriveAll_MetricasComplementares(t *testing.T) {
	engine := NewEngine(NewDefaultRegistry())

	campaign := domain.Campaign{
		Cliques:          domain.Float(90),
		CliquesInvalidos: domain.Float(10),
		Visitantes:       domain.Float(200),
		Checkouts:        domain.Float(20),
		Custo:            domain.Float(250),
		Orcamento:        domain.Float(1000),
		CPCMedio:         domain.Float(2.5),
		Faturamento:      domain.Float(400),
	}

	values := engine.DeriveAll(campaign)

	assert.InDelta(t, 10.0, values[KeyTaxaCliquesInvalidos], epsilon)
	assert.InDelta(t, 10.0, values[KeyTaxaCheckout], epsilon)
	assert.InDelta(t, 25.0, values[KeyUsoOrcamento], epsilon)
	assert.InDelta(t, 2.5, values[KeyCPCInformado], epsilon)
	assert.InDelta(t, 400.0, values[KeyReceitaInformada], epsilon)
}

func TestEngine_Derive(t *testing.T) {
	engine := NewEngine(NewDefaultRegistry())

	campaign := domain.Campaign{
		Impressoes: domain.Float(1000),
		Cliques:    domain.Float(50),
	}

	ctr, err := engine.Derive(campaign, KeyCTR)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, ctr, epsilon)

	_, err = engine.Derive(campaign, "ctrr")
	assert.ErrorIs(t, err, domain.ErrUnknownMetric)
}

func TestEngine_FormulaNaoFinitaViraZero(t *testing.T) {
	registry := MustNewRegistry([]domain.MetricDefinition{
		{Key: "infinito", Formula: func(domain.Values) float64 { return math.Inf(1) }},
		{Key: "dependente", DependsOn: []string{"infinito"}, Formula: func(v domain.Values) float64 { return v.Get("infinito") + 1 }},
	})

	values := NewEngine(registry).DeriveAll(domain.Campaign{})

	assert.Equal(t, 0.0, values["infinito"])
	assert.Equal(t, 1.0, values["dependente"])
}
