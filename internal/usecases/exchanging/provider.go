package exchanging

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/integrator/exchangerate"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/instrumentation"
	"golang.org/x/sync/singleflight"
)

const (
	refreshKey = "USD-BRL"

	// StaleAfter é a idade a partir da qual a cotação é exibida como desatualizada
	StaleAfter = 24 * time.Hour

	// RetryAfterFailure é o intervalo mínimo entre atualizações preguiçosas após uma falha
	RetryAfterFailure = time.Minute

	maxFetchDuration = 30 * time.Second
)

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

// RateProvider mantém a cotação USD→BRL do processo
type RateProvider interface {
	// GetRate retorna a cotação em cache, sem I/O
	GetRate() domain.ExchangeRate
	// Refresh busca uma nova cotação; em falha a cotação anterior continua em uso
	Refresh(ctx context.Context) (domain.ExchangeRate, error)
	// RefreshIfStale inicia uma atualização em segundo plano quando a cotação está desatualizada
	RefreshIfStale(ctx context.Context) bool
	IsStale() bool
}

// Provider guarda a cotação em uma célula atômica e deduplica atualizações concorrentes.
// A cotação nunca expira sozinha e sempre tem um valor utilizável.
type Provider struct {
	integrator exchangerate.RateIntegrator
	repository repository.ExchangeRateRepository
	current    atomic.Pointer[domain.ExchangeRate]
	failedAt   atomic.Int64 // unix nano da última falha; 0 após sucesso
	group      singleflight.Group
	now        func() time.Time
}

// NewProvider cria o provedor com a cotação de fallback. repo pode ser nil.
func NewProvider(integrator exchangerate.RateIntegrator, repo repository.ExchangeRateRepository, fallback float64) *Provider {
	p := &Provider{
		integrator: integrator,
		repository: repo,
		now:        time.Now,
	}

	initial := domain.NewFallbackRate(fallback)
	p.current.Store(&initial)
	instrumentation.RecordExchangeRate(initial.Rate, initial.FetchedAt)

	return p
}

// Seed carrega a última cotação persistida, enquanto nenhuma busca tiver ocorrido
func (p *Provider) Seed(ctx context.Context) error {
	if p.repository == nil {
		return nil
	}

	latest, err := p.repository.GetLatest(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar a última cotação: %w", err)
	}

	if latest == nil || !domain.IsUsableRate(latest.Rate) {
		logrus.Info("exchange-rate: nenhuma cotação persistida, usando fallback")
		return nil
	}

	seeded := *latest
	seeded.Source = domain.RateSourceDatabase

	current := p.current.Load()
	if current.IsFallback() && p.current.CompareAndSwap(current, &seeded) {
		instrumentation.RecordExchangeRate(seeded.Rate, seeded.FetchedAt)
		logrus.WithFields(logrus.Fields{
			"rate":       seeded.Rate,
			"fetched_at": seeded.FetchedAt,
		}).Info("exchange-rate: cotação carregada do banco")
	}

	return nil
}

func (p *Provider) GetRate() domain.ExchangeRate {
	return *p.current.Load()
}

func (p *Provider) IsStale() bool {
	rate := p.GetRate()
	if rate.IsFallback() {
		return true
	}

	return p.now().Sub(rate.FetchedAt) > StaleAfter
}

func (p *Provider) Refresh(ctx context.Context) (domain.ExchangeRate, error) {
	// a busca continua mesmo se quem a iniciou desistir de esperar
	ch := p.group.DoChan(refreshKey, func() (any, error) {
		return p.fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return p.GetRate(), fmt.Errorf("%w: %w", domain.ErrRateFetchFailed, ctx.Err())
	case result := <-ch:
		if result.Err != nil {
			return p.GetRate(), result.Err
		}
		return result.Val.(domain.ExchangeRate), nil
	}
}

func (p *Provider) RefreshIfStale(ctx context.Context) bool {
	if !p.IsStale() || p.coolingDown() {
		return false
	}

	go func() {
		if _, err := p.Refresh(context.WithoutCancel(ctx)); err != nil {
			logrus.WithError(err).Debug("exchange-rate: atualização em segundo plano falhou")
		}
	}()

	return true
}

func (p *Provider) coolingDown() bool {
	failedAt := p.failedAt.Load()
	if failedAt == 0 {
		return false
	}

	return p.now().Sub(time.Unix(0, failedAt)) < RetryAfterFailure
}

func (p *Provider) fetch(ctx context.Context) (domain.ExchangeRate, error) {
	ctx, cancel := context.WithTimeout(ctx, maxFetchDuration)
	defer cancel()

	start := p.now()
	rate, err := p.integrator.FetchUSDBRL(ctx)
	if err == nil && !domain.IsUsableRate(rate.Rate) {
		err = fmt.Errorf("cotação inválida: %v", rate.Rate)
	}

	if err != nil {
		instrumentation.RecordRefresh(false)
		p.failedAt.Store(p.now().UnixNano())
		previous := p.GetRate()
		logrus.WithFields(logrus.Fields{
			"error":         err.Error(),
			"current_rate":  previous.Rate,
			"current_since": previous.FetchedAt,
		}).Warn("exchange-rate: falha ao atualizar cotação, mantendo valor anterior")
		return domain.ExchangeRate{}, fmt.Errorf("%w: %w", domain.ErrRateFetchFailed, err)
	}

	if rate.FetchedAt.IsZero() {
		rate.FetchedAt = p.now()
	}

	p.current.Store(&rate)
	p.failedAt.Store(0)
	instrumentation.RecordRefresh(true)
	instrumentation.RecordExchangeRate(rate.Rate, rate.FetchedAt)

	logrus.WithFields(logrus.Fields{
		"rate":        rate.Rate,
		"source":      rate.Source,
		"duration_ms": p.now().Sub(start).Milliseconds(),
	}).Info("exchange-rate: cotação atualizada")

	if p.repository != nil {
		persisted := rate
		if err := p.repository.Save(ctx, &persisted); err != nil {
			logrus.WithError(err).Warn("exchange-rate: falha ao salvar histórico da cotação")
		}
	}

	return rate, nil
}
