package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/instrumentation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CachedCampaignRepository envolve o repositório de campanhas com um cache
// read-through no Redis. Falhas do Redis nunca impedem a leitura no banco.
type CachedCampaignRepository struct {
	primary CampaignRepository
	rdb     redis.Cmdable
	ttl     time.Duration
}

func NewCachedCampaignRepository(primary CampaignRepository, rdb redis.Cmdable, ttl time.Duration) *CachedCampaignRepository {
	return &CachedCampaignRepository{
		primary: primary,
		rdb:     rdb,
		ttl:     ttl,
	}
}

func (r *CachedCampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	data, err := r.rdb.Get(ctx, campaignKey(id)).Bytes()
	if err == nil {
		var c domain.Campaign
		if json.Unmarshal(data, &c) == nil {
			instrumentation.RecordCacheLookup(true)
			return &c, nil
		}
	}
	instrumentation.RecordCacheLookup(false)

	c, err := r.primary.GetByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}

	r.store(ctx, campaignKey(id), c)
	return c, nil
}

func (r *CachedCampaignRepository) List(ctx context.Context, filters domain.CampaignFilters) ([]domain.Campaign, error) {
	key := campaignListKey(filters)

	data, err := r.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var campaigns []domain.Campaign
		if json.Unmarshal(data, &campaigns) == nil {
			instrumentation.RecordCacheLookup(true)
			return campaigns, nil
		}
	}
	instrumentation.RecordCacheLookup(false)

	campaigns, err := r.primary.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, campaigns)
	return campaigns, nil
}

func (r *CachedCampaignRepository) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Debug("campaign-cache: falha ao gravar no redis")
	}
}

func campaignKey(id string) string { return fmt.Sprintf("campaign:%s", id) }

// campaignListKey gera uma chave estável para o mesmo conjunto de filtros
func campaignListKey(filters domain.CampaignFilters) string {
	ids := slices.Clone(filters.IDs)
	slices.Sort(ids)

	status := "all"
	if filters.Active != nil {
		status = fmt.Sprintf("%t", *filters.Active)
	}

	currency := "all"
	if filters.Currency != nil {
		currency = string(*filters.Currency)
	}

	return fmt.Sprintf("campaigns:ids=%s:active=%s:currency=%s", strings.Join(ids, ","), status, currency)
}
