package reporting

import (
	"context"
	"fmt"

	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/aggregating"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/converting"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/deriving"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/exchanging"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/formatting"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/instrumentation"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Reporter entrega as métricas das campanhas na moeda de exibição
type Reporter interface {
	// GetCampaignMetrics calcula todas as métricas de uma campanha
	GetCampaignMetrics(ctx context.Context, id string, opts domain.DisplayOptions) (*domain.CampaignMetricsResponse, error)

	// ListCampaignMetrics calcula as métricas de cada campanha do filtro
	ListCampaignMetrics(ctx context.Context, filters domain.CampaignFilters, opts domain.DisplayOptions) ([]domain.CampaignMetricsResponse, error)

	// Aggregate combina uma métrica entre as campanhas do filtro
	Aggregate(ctx context.Context, filters domain.CampaignFilters, key string, mode aggregating.Mode, opts domain.DisplayOptions) (*domain.AggregateResponse, error)

	// GetSummary calcula os KPIs consolidados do dashboard
	GetSummary(ctx context.Context, filters domain.CampaignFilters, opts domain.DisplayOptions) (*domain.SummaryResponse, error)

	// Definitions expõe o catálogo de métricas
	Definitions() []domain.MetricDefinitionResponse
}

type Service struct {
	campaigns       repository.CampaignRepository
	rates           exchanging.RateProvider
	engine          deriving.Deriver
	aggregator      *aggregating.Aggregator
	defaultCurrency domain.Currency
}

func NewService(
	campaigns repository.CampaignRepository,
	rates exchanging.RateProvider,
	engine deriving.Deriver,
	defaultCurrency domain.Currency,
) *Service {
	if !defaultCurrency.IsValid() {
		defaultCurrency = domain.CurrencyBRL
	}

	return &Service{
		campaigns:       campaigns,
		rates:           rates,
		engine:          engine,
		aggregator:      aggregating.NewAggregator(engine),
		defaultCurrency: defaultCurrency,
	}
}

func (s *Service) GetCampaignMetrics(ctx context.Context, id string, opts domain.DisplayOptions) (*domain.CampaignMetricsResponse, error) {
	opts = s.resolve(opts)

	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": id,
			"error":       err.Error(),
		}).Error("reporting: erro ao buscar campanha")
		return nil, NewReportError(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if campaign == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, id)
	}
	s.refreshRateIfNeeded(ctx, []domain.Campaign{*campaign}, opts.Currency)

	response := s.campaignMetrics(*campaign, opts)
	return &response, nil
}

func (s *Service) ListCampaignMetrics(ctx context.Context, filters domain.CampaignFilters, opts domain.DisplayOptions) ([]domain.CampaignMetricsResponse, error) {
	opts = s.resolve(opts)

	campaigns, err := s.listCampaigns(ctx, filters)
	if err != nil {
		return nil, err
	}
	s.refreshRateIfNeeded(ctx, campaigns, opts.Currency)

	responses := make([]domain.CampaignMetricsResponse, 0, len(campaigns))
	for _, c := range campaigns {
		responses = append(responses, s.campaignMetrics(c, opts))
	}

	return responses, nil
}

func (s *Service) Aggregate(ctx context.Context, filters domain.CampaignFilters, key string, mode aggregating.Mode, opts domain.DisplayOptions) (*domain.AggregateResponse, error) {
	opts = s.resolve(opts)

	def, err := s.engine.Registry().Lookup(key)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.listCampaigns(ctx, filters)
	if err != nil {
		return nil, err
	}
	s.refreshRateIfNeeded(ctx, campaigns, opts.Currency)

	normalized := converting.NormalizeCampaigns(campaigns, opts.Currency, s.rates)
	value, err := s.aggregator.Aggregate(normalized, key, mode)
	if err != nil {
		return nil, err
	}
	instrumentation.CampaignsDerived.Add(float64(len(normalized)))

	return &domain.AggregateResponse{
		Metric:          key,
		Mode:            string(mode),
		Unit:            def.Unit,
		Value:           value,
		Formatted:       formatting.Format(value, def.Unit, opts.Currency, formatting.WithPrecision(opts.PercentagePrecision)),
		CampaignCount:   len(normalized),
		DisplayCurrency: opts.Currency,
		ExchangeRate:    s.rates.GetRate(),
	}, nil
}

// summaryRatios são os KPIs calculados como razão entre totais, nunca como média das razões
var summaryRatios = map[string]func(totals domain.Values) float64{
	deriving.KeyCTR: func(t domain.Values) float64 {
		return utils.SafeDiv(t[deriving.KeyCliques], t[deriving.KeyImpressoes]) * 100
	},
	deriving.KeyCPC: func(t domain.Values) float64 {
		return utils.SafeDiv(t[deriving.KeyCusto], t[deriving.KeyCliques])
	},
	deriving.KeyCPM: func(t domain.Values) float64 {
		return utils.SafeDiv(t[deriving.KeyCusto], t[deriving.KeyImpressoes]) * 1000
	},
	deriving.KeyTaxaConversao: func(t domain.Values) float64 {
		return utils.SafeDiv(t[deriving.KeyConversoes], t[deriving.KeyCliques]) * 100
	},
	deriving.KeyCustoConversao: func(t domain.Values) float64 {
		return utils.SafeDiv(t[deriving.KeyCusto], t[deriving.KeyConversoes])
	},
	deriving.KeyROI: func(t domain.Values) float64 {
		return utils.SafeDiv(t[deriving.KeyLucro], t[deriving.KeyCusto]) * 100
	},
	deriving.KeyROAS: func(t domain.Values) float64 {
		return utils.SafeDiv(t[deriving.KeyFaturamento], t[deriving.KeyCusto])
	},
}

// summaryKeys define a ordem dos KPIs no dashboard
var summaryKeys = []string{
	deriving.KeyImpressoes,
	deriving.KeyCliques,
	deriving.KeyConversoes,
	deriving.KeyCusto,
	deriving.KeyFaturamento,
	deriving.KeyLucro,
	deriving.KeyCTR,
	deriving.KeyCPC,
	deriving.KeyCPM,
	deriving.KeyTaxaConversao,
	deriving.KeyCustoConversao,
	deriving.KeyROI,
	deriving.KeyROAS,
}

func (s *Service) GetSummary(ctx context.Context, filters domain.CampaignFilters, opts domain.DisplayOptions) (*domain.SummaryResponse, error) {
	if opts.PercentagePrecision == 0 {
		opts.PercentagePrecision = formatting.HeadlinePrecision
	}
	opts = s.resolve(opts)

	campaigns, err := s.listCampaigns(ctx, filters)
	if err != nil {
		return nil, err
	}
	s.refreshRateIfNeeded(ctx, campaigns, opts.Currency)

	normalized := converting.NormalizeCampaigns(campaigns, opts.Currency, s.rates)
	totals := s.aggregator.Totals(normalized)
	instrumentation.CampaignsDerived.Add(float64(len(normalized)))

	kpis := make([]domain.MetricValue, 0, len(summaryKeys))
	for _, key := range summaryKeys {
		def, err := s.engine.Registry().Lookup(key)
		if err != nil {
			return nil, err
		}

		value := totals[key]
		if ratio, ok := summaryRatios[key]; ok {
			value = ratio(totals)
		}

		kpis = append(kpis, s.metricValue(def, value, opts))
	}

	active := 0
	for _, c := range campaigns {
		if c.IsActive() {
			active++
		}
	}

	return &domain.SummaryResponse{
		CampaignCount:       len(campaigns),
		ActiveCampaignCount: active,
		DisplayCurrency:     opts.Currency,
		ExchangeRate:        s.rates.GetRate(),
		StaleExchangeRate:   s.rates.IsStale(),
		KPIs:                kpis,
	}, nil
}

func (s *Service) Definitions() []domain.MetricDefinitionResponse {
	defs := s.engine.Registry().Definitions()

	response := make([]domain.MetricDefinitionResponse, 0, len(defs))
	for _, def := range defs {
		dependsOn := def.DependsOn
		if dependsOn == nil {
			dependsOn = []string{}
		}

		response = append(response, domain.MetricDefinitionResponse{
			Key:       def.Key,
			Category:  def.Category,
			Unit:      def.Unit,
			DependsOn: dependsOn,
			Raw:       def.Raw,
		})
	}

	return response
}

func (s *Service) listCampaigns(ctx context.Context, filters domain.CampaignFilters) ([]domain.Campaign, error) {
	campaigns, err := s.campaigns.List(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: erro ao listar campanhas")
		return nil, NewReportError(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithField("campaign_count", len(campaigns)).Debug("reporting: campanhas carregadas")

	return campaigns, nil
}

// refreshRateIfNeeded só aciona a atualização preguiçosa quando alguma campanha
// depende da cotação do provedor para ser exibida
func (s *Service) refreshRateIfNeeded(ctx context.Context, campaigns []domain.Campaign, to domain.Currency) {
	for _, c := range campaigns {
		if converting.NeedsProviderRate(c, to) {
			s.rates.RefreshIfStale(ctx)
			return
		}
	}
}

// campaignMetrics converte a campanha para a moeda de exibição e calcula todas as métricas
func (s *Service) campaignMetrics(c domain.Campaign, opts domain.DisplayOptions) domain.CampaignMetricsResponse {
	rate := converting.RateFor(c, s.rates)
	normalized := converting.NormalizeCampaign(c, opts.Currency, rate.Rate)
	values := s.engine.DeriveAll(normalized)
	instrumentation.CampaignsDerived.Inc()

	defs := s.engine.Registry().Definitions()
	metrics := make([]domain.MetricValue, 0, len(defs))
	for _, def := range defs {
		metrics = append(metrics, s.metricValue(def, values[def.Key], opts))
	}

	return domain.CampaignMetricsResponse{
		CampaignID:      c.ID,
		CampaignName:    c.Name,
		Active:          c.IsActive(),
		NativeCurrency:  c.Currency,
		DisplayCurrency: opts.Currency,
		ExchangeRate:    rate,
		Metrics:         metrics,
	}
}

func (s *Service) metricValue(def domain.MetricDefinition, value float64, opts domain.DisplayOptions) domain.MetricValue {
	return domain.MetricValue{
		Key:       def.Key,
		Category:  def.Category,
		Unit:      def.Unit,
		Value:     value,
		Formatted: formatting.Format(value, def.Unit, opts.Currency, formatting.WithPrecision(opts.PercentagePrecision)),
	}
}

// resolve aplica a moeda padrão e a precisão padrão quando não informadas
func (s *Service) resolve(opts domain.DisplayOptions) domain.DisplayOptions {
	if !opts.Currency.IsValid() {
		opts.Currency = s.defaultCurrency
	}

	if opts.PercentagePrecision <= 0 {
		opts.PercentagePrecision = formatting.DefaultPercentagePrecision
	}

	return opts
}
