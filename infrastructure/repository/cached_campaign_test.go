package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// fakeRedis implementa apenas os comandos usados pelo cache
type fakeRedis struct {
	redis.Cmdable
	data    map[string][]byte
	failing bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string][]byte)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failing {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(string(v), nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.failing {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	f.data[key] = value.([]byte)
	return redis.NewStatusResult("OK", nil)
}

func TestCachedCampaignRepository_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mocks.NewMockCampaignRepository(ctrl)
	rdb := newFakeRedis()
	repo := NewCachedCampaignRepository(primary, rdb, time.Minute)

	campaign := &domain.Campaign{ID: "cmp-1", Name: "Verão", Currency: domain.CurrencyBRL, Custo: domain.Float(550)}
	primary.EXPECT().GetByID(gomock.Any(), "cmp-1").Return(campaign, nil).Times(1)

	first, err := repo.GetByID(context.Background(), "cmp-1")
	require.NoError(t, err)
	assert.Equal(t, campaign, first)

	// segunda leitura vem do cache
	second, err := repo.GetByID(context.Background(), "cmp-1")
	require.NoError(t, err)
	assert.Equal(t, "Verão", second.Name)
	assert.Equal(t, 550.0, *second.Custo)
}

func TestCachedCampaignRepository_NaoGuardaAusente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mocks.NewMockCampaignRepository(ctrl)
	rdb := newFakeRedis()
	repo := NewCachedCampaignRepository(primary, rdb, time.Minute)

	primary.EXPECT().GetByID(gomock.Any(), "nao-existe").Return(nil, nil).Times(2)

	for i := 0; i < 2; i++ {
		c, err := repo.GetByID(context.Background(), "nao-existe")
		require.NoError(t, err)
		assert.Nil(t, c)
	}
	assert.Empty(t, rdb.data)
}

func TestCachedCampaignRepository_RedisIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mocks.NewMockCampaignRepository(ctrl)
	rdb := newFakeRedis()
	rdb.failing = true
	repo := NewCachedCampaignRepository(primary, rdb, time.Minute)

	filters := domain.CampaignFilters{Active: domain.Bool(true)}
	campaigns := []domain.Campaign{{ID: "a"}, {ID: "b"}}
	primary.EXPECT().List(gomock.Any(), filters).Return(campaigns, nil).Times(2)

	for i := 0; i < 2; i++ {
		result, err := repo.List(context.Background(), filters)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	}
}

func TestCachedCampaignRepository_ListPropagaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mocks.NewMockCampaignRepository(ctrl)
	repo := NewCachedCampaignRepository(primary, newFakeRedis(), time.Minute)

	dbErr := errors.New("banco indisponível")
	primary.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := repo.List(context.Background(), domain.CampaignFilters{})
	assert.ErrorIs(t, err, dbErr)
}

func TestCampaignListKey(t *testing.T) {
	usd := domain.CurrencyUSD

	a := campaignListKey(domain.CampaignFilters{IDs: []string{"b", "a"}, Active: domain.Bool(true), Currency: &usd})
	b := campaignListKey(domain.CampaignFilters{IDs: []string{"a", "b"}, Active: domain.Bool(true), Currency: &usd})

	assert.Equal(t, a, b)
	assert.Equal(t, "campaigns:ids=a,b:active=true:currency=USD", a)
	assert.NotEqual(t, a, campaignListKey(domain.CampaignFilters{}))
}
