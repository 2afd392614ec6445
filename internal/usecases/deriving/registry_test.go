package deriving

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

func constant(v float64) domain.Formula {
	return func(domain.Values) float64 { return v }
}

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name        string
		definitions []domain.MetricDefinition
		expectErr   bool
		isUnknown   bool
	}{
		{
			name: "catálogo válido",
			definitions: []domain.MetricDefinition{
				{Key: "a", Formula: constant(1)},
				{Key: "b", Formula: constant(2), DependsOn: []string{"a"}},
			},
		},
		{
			name: "dependência desconhecida",
			definitions: []domain.MetricDefinition{
				{Key: "a", Formula: constant(1), DependsOn: []string{"inexistente"}},
			},
			expectErr: true,
			isUnknown: true,
		},
		{
			name: "ciclo",
			definitions: []domain.MetricDefinition{
				{Key: "a", Formula: constant(1), DependsOn: []string{"b"}},
				{Key: "b", Formula: constant(2), DependsOn: []string{"a"}},
			},
			expectErr: true,
		},
		{
			name: "chave duplicada",
			definitions: []domain.MetricDefinition{
				{Key: "a", Formula: constant(1)},
				{Key: "a", Formula: constant(2)},
			},
			expectErr: true,
		},
		{
			name: "sem fórmula",
			definitions: []domain.MetricDefinition{
				{Key: "a"},
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := NewRegistry(tt.definitions)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, registry)
				assert.Equal(t, tt.isUnknown, errors.Is(err, domain.ErrUnknownMetric))
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, registry)
		})
	}
}

func TestMustNewRegistry_PanicsOnCycle(t *testing.T) {
	assert.Panics(t, func() {
		MustNewRegistry([]domain.MetricDefinition{
			{Key: "a", Formula: constant(1), DependsOn: []string{"a"}},
		})
	})
}

func TestRegistry_AllKeysOrder(t *testing.T) {
	registry := MustNewRegistry([]domain.MetricDefinition{
		{Key: "roas", Formula: constant(0), DependsOn: []string{"faturamento", "custo"}},
		{Key: "custo", Formula: constant(0)},
		{Key: "faturamento", Formula: constant(0), DependsOn: []string{"comissao"}},
		{Key: "comissao", Formula: constant(0)},
	})

	assert.Equal(t, []string{"custo", "comissao", "faturamento", "roas"}, registry.AllKeys())
}

func TestRegistry_AllKeysReturnsFreshSlice(t *testing.T) {
	registry := NewDefaultRegistry()

	first := registry.AllKeys()
	first[0] = "alterado"

	second := registry.AllKeys()
	assert.NotEqual(t, "alterado", second[0])
	assert.Equal(t, len(Definitions()), len(second))
}

func TestRegistry_DependenciesComeFirst(t *testing.T) {
	registry := NewDefaultRegistry()

	position := make(map[string]int)
	for i, key := range registry.AllKeys() {
		position[key] = i
	}

	for _, def := range registry.Definitions() {
		for _, dep := range def.DependsOn {
			assert.Less(t, position[dep], position[def.Key], "%s deve vir antes de %s", dep, def.Key)
		}
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewDefaultRegistry()

	def, err := registry.Lookup(KeyROAS)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitMultiplier, def.Unit)
	assert.Equal(t, domain.CategoryFinanceiro, def.Category)
	assert.ElementsMatch(t, []string{KeyFaturamento, KeyCusto}, def.DependsOn)

	ctr, err := registry.Lookup(KeyCTR)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryEngajamento, ctr.Category)
	assert.Equal(t, domain.Category("engajamento"), ctr.Category)

	_, err = registry.Lookup("naoExiste")
	assert.ErrorIs(t, err, domain.ErrUnknownMetric)
}

func TestMonetaryKeys(t *testing.T) {
	keys := MonetaryKeys(NewDefaultRegistry())

	assert.Contains(t, keys, KeyCusto)
	assert.Contains(t, keys, KeyComissao)
	assert.Contains(t, keys, KeyLucro)
	assert.NotContains(t, keys, KeyCTR)
	assert.NotContains(t, keys, KeyROAS)
}
