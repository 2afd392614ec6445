package repository

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

func TestBuildListCampaignsQuery(t *testing.T) {
	usd := domain.CurrencyUSD

	tests := []struct {
		name          string
		filters       domain.CampaignFilters
		expectedWhere string
		expectedArgs  []any
	}{
		{
			name:          "sem filtros",
			filters:       domain.CampaignFilters{},
			expectedWhere: "",
			expectedArgs:  nil,
		},
		{
			name:          "por ids",
			filters:       domain.CampaignFilters{IDs: []string{"a", "b"}},
			expectedWhere: "WHERE c.id IN ($1,$2)",
			expectedArgs:  []any{"a", "b"},
		},
		{
			name:          "ativas inclui status nulo",
			filters:       domain.CampaignFilters{Active: domain.Bool(true)},
			expectedWhere: "WHERE (c.ativo = $1 OR c.ativo IS NULL)",
			expectedArgs:  []any{true},
		},
		{
			name:          "inativas",
			filters:       domain.CampaignFilters{Active: domain.Bool(false)},
			expectedWhere: "WHERE c.ativo = $1",
			expectedArgs:  []any{false},
		},
		{
			name:          "por moeda",
			filters:       domain.CampaignFilters{Currency: &usd},
			expectedWhere: "WHERE c.moeda = $1",
			expectedArgs:  []any{"USD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListCampaignsQuery(tt.filters)
			require.NoError(t, err)

			assert.Contains(t, query, "FROM campaigns c")
			assert.Contains(t, query, "ORDER BY c.name ASC, c.id ASC")
			if tt.expectedWhere != "" {
				assert.Contains(t, query, tt.expectedWhere)
			} else {
				assert.NotContains(t, query, "WHERE")
			}
			if tt.expectedArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.expectedArgs, args)
			}
		})
	}
}

type fakeRow struct {
	values []any
}

func (f fakeRow) Scan(dest ...any) error {
	if len(dest) != len(f.values) {
		return fmt.Errorf("esperado %d colunas, recebido %d", len(f.values), len(dest))
	}

	for i, d := range dest {
		switch target := d.(type) {
		case *string:
			*target = f.values[i].(string)
		case *sql.NullBool:
			if f.values[i] != nil {
				*target = sql.NullBool{Bool: f.values[i].(bool), Valid: true}
			}
		case *sql.NullFloat64:
			if f.values[i] != nil {
				*target = sql.NullFloat64{Float64: f.values[i].(float64), Valid: true}
			}
		case *time.Time:
			*target = f.values[i].(time.Time)
		default:
			return fmt.Errorf("tipo não suportado %T", d)
		}
	}

	return nil
}

func TestScanCampaign(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	row := fakeRow{values: []any{
		"cmp-1", "Black Friday", "USD", nil,
		1000.0, 50.0, nil, 3.0,
		nil, nil, 42.5, nil,
		500.0, 100.0, 2.1, 20.0, nil,
		5.43, now, now,
	}}

	campaign, err := scanCampaign(row)
	require.NoError(t, err)

	assert.Equal(t, "cmp-1", campaign.ID)
	assert.Equal(t, domain.CurrencyUSD, campaign.Currency)
	assert.Nil(t, campaign.Ativo)
	assert.True(t, campaign.IsActive())
	assert.Equal(t, 1000.0, *campaign.Impressoes)
	assert.Nil(t, campaign.CliquesInvalidos)
	assert.Equal(t, 42.5, *campaign.ParcelaImpressoes)
	assert.Equal(t, 100.0, *campaign.Custo)
	assert.Equal(t, 2.1, *campaign.CPCMedio)
	assert.Nil(t, campaign.Faturamento)
	assert.Equal(t, 5.43, *campaign.TaxaCambio)
	assert.Equal(t, now, campaign.UpdatedAt)
}

func TestScanCampaign_Erro(t *testing.T) {
	_, err := scanCampaign(fakeRow{values: []any{"só uma coluna"}})
	assert.Error(t, err)
}
