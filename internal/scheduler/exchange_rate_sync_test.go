package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	ratemocks "github.com/vfg2006/campaign-metrics-api/internal/usecases/exchanging/mocks"
	"go.uber.org/mock/gomock"
)

func newSyncConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		ExchangeRateSync: config.ExchangeRateSync{
			CronSchedule:         cron,
			Enabled:              enabled,
			HistoryRetentionDays: 90,
		},
	}
}

func TestExchangeRateSyncService_syncExchangeRate(t *testing.T) {
	tests := []struct {
		name      string
		rate      domain.ExchangeRate
		err       error
		wantError string
	}{
		{
			name: "Cotação atualizada com sucesso",
			rate: domain.ExchangeRate{Rate: 5.43, Source: domain.RateSourceAwesomeAPI, FetchedAt: time.Now()},
		},
		{
			name:      "Falha mantém a última cotação válida",
			rate:      domain.NewFallbackRate(domain.FallbackUSDBRLRate),
			err:       fmt.Errorf("%w: timeout", domain.ErrRateFetchFailed),
			wantError: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := ratemocks.NewMockRateProvider(ctrl)
			provider.EXPECT().Refresh(gomock.Any()).Return(tt.rate, tt.err)
			provider.EXPECT().GetRate().Return(tt.rate)
			provider.EXPECT().IsStale().Return(tt.err != nil)

			service := NewExchangeRateSyncService(provider, mocks.NewMockExchangeRateRepository(ctrl), newSyncConfig(true, "0 */6 * * *"))
			service.syncExchangeRate()

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.rate, status["current_rate"])
			assert.Equal(t, tt.err != nil, status["stale"])

			if tt.wantError == "" {
				assert.Empty(t, status["last_sync_error"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			} else {
				assert.Contains(t, status["last_sync_error"], tt.wantError)
				assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
			}
		})
	}
}

func TestExchangeRateSyncService_purgeHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := ratemocks.NewMockRateProvider(ctrl)
	repo := mocks.NewMockExchangeRateRepository(ctrl)

	repo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(12), nil)

	service := NewExchangeRateSyncService(provider, repo, newSyncConfig(true, "0 */6 * * *"))
	service.purgeHistory()

	assert.False(t, service.lastPurgeAt.IsZero())
}

func TestExchangeRateSyncService_purgeHistoryErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockExchangeRateRepository(ctrl)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(0), errors.New("connection reset"))

	service := NewExchangeRateSyncService(ratemocks.NewMockRateProvider(ctrl), repo, newSyncConfig(true, "0 */6 * * *"))
	service.purgeHistory()

	assert.True(t, service.lastPurgeAt.IsZero())
}

func TestExchangeRateSyncService_purgeHistorySemRetencao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newSyncConfig(true, "0 */6 * * *")
	cfg.ExchangeRateSync.HistoryRetentionDays = 0

	// Nenhuma chamada ao repositório esperada
	service := NewExchangeRateSyncService(ratemocks.NewMockRateProvider(ctrl), mocks.NewMockExchangeRateRepository(ctrl), cfg)
	service.purgeHistory()
}

func TestExchangeRateSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := ratemocks.NewMockRateProvider(ctrl)
	repo := mocks.NewMockExchangeRateRepository(ctrl)

	done := make(chan struct{})
	provider.EXPECT().Refresh(gomock.Any()).Return(domain.ExchangeRate{Rate: 5.43, Source: domain.RateSourceAwesomeAPI}, nil)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), 90).DoAndReturn(func(_ context.Context, _ int) (int64, error) {
		close(done)
		return 0, nil
	})

	service := NewExchangeRateSyncService(provider, repo, newSyncConfig(true, "0 */6 * * *"))
	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não executada")
	}
}

func TestExchangeRateSyncService_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Refresh não deve ser chamado enquanto outra sincronização está em andamento
	service := NewExchangeRateSyncService(ratemocks.NewMockRateProvider(ctrl), nil, newSyncConfig(true, "0 */6 * * *"))
	service.syncRunning = true

	service.syncExchangeRate()
	service.TriggerManualSync()

	assert.True(t, service.syncRunning)
}

func TestExchangeRateSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Desabilitado não agenda jobs", func(t *testing.T) {
		service := NewExchangeRateSyncService(ratemocks.NewMockRateProvider(ctrl), nil, newSyncConfig(false, "0 */6 * * *"))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Habilitado agenda sincronização e limpeza", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewExchangeRateSyncService(ratemocks.NewMockRateProvider(ctrl), mocks.NewMockExchangeRateRepository(ctrl), newSyncConfig(true, "0 */6 * * *"))

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 2)
		service.scheduler.Stop()
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		service := NewExchangeRateSyncService(ratemocks.NewMockRateProvider(ctrl), nil, newSyncConfig(true, "a cada hora"))

		assert.Error(t, service.Start(context.Background()))
	})
}
