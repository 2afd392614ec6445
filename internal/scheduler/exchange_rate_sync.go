package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/exchanging"
)

const (
	retentionCronSchedule = "0 3 * * *"
	syncTimeout           = time.Minute
)

// ExchangeRateSyncConfig representa a configuração do agendador de cotação
type ExchangeRateSyncConfig struct {
	CronSchedule         string
	HistoryRetentionDays int
	SyncEnabled          bool
}

// ExchangeRateSyncService agenda a atualização da cotação USD-BRL e a limpeza do histórico
type ExchangeRateSyncService struct {
	scheduler           *gocron.Scheduler
	config              ExchangeRateSyncConfig
	provider            exchanging.RateProvider
	rateRepo            repository.ExchangeRateRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastRate            domain.ExchangeRate
	lastPurgeAt         time.Time
}

// NewExchangeRateSyncService cria uma nova instância do serviço de sincronização de cotação
func NewExchangeRateSyncService(
	provider exchanging.RateProvider,
	rateRepo repository.ExchangeRateRepository,
	appConfig *config.Config,
) *ExchangeRateSyncService {
	syncConfig := ExchangeRateSyncConfig{
		CronSchedule:         appConfig.ExchangeRateSync.CronSchedule,
		HistoryRetentionDays: appConfig.ExchangeRateSync.HistoryRetentionDays,
		SyncEnabled:          appConfig.ExchangeRateSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.HistoryRetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de cotação carregada")

	return &ExchangeRateSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		provider:  provider,
		rateRepo:  rateRepo,
	}
}

// Start inicia o agendador
func (s *ExchangeRateSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de cotação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de cotação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncExchangeRate()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de cotação: %w", err)
	}

	if s.rateRepo != nil && s.config.HistoryRetentionDays > 0 {
		_, err = s.scheduler.Cron(retentionCronSchedule).Do(func() {
			s.purgeHistory()
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar limpeza do histórico de cotação: %w", err)
		}
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de cotação")
		s.scheduler.Stop()
	}()

	return nil
}

// syncExchangeRate busca uma nova cotação; em caso de falha o provedor mantém a última válida
func (s *ExchangeRateSyncService) syncExchangeRate() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de cotação já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	rate, err := s.provider.Refresh(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastRate = rate

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithFields(logrus.Fields{
			"rate":   rate.Rate,
			"source": rate.Source,
			"error":  err.Error(),
		}).Warn("Falha na sincronização de cotação, mantendo a última cotação válida")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"rate":       rate.Rate,
		"fetched_at": rate.FetchedAt.Format(time.RFC3339),
		"duration":   time.Since(s.lastSyncStartedAt).String(),
	}).Info("Sincronização de cotação concluída")
}

// purgeHistory remove as cotações mais antigas que o período de retenção
func (s *ExchangeRateSyncService) purgeHistory() {
	if s.rateRepo == nil || s.config.HistoryRetentionDays <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	deleted, err := s.rateRepo.DeleteOlderThan(ctx, s.config.HistoryRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar histórico de cotação")
		return
	}

	s.syncMutex.Lock()
	s.lastPurgeAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"deleted":        deleted,
		"retention_days": s.config.HistoryRetentionDays,
	}).Info("Histórico de cotação limpo")
}

// TriggerManualSync dispara uma sincronização imediata da cotação
func (s *ExchangeRateSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de cotação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de cotação")
	go func() {
		s.syncExchangeRate()
		s.purgeHistory()
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ExchangeRateSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"retention_days":         s.config.HistoryRetentionDays,
		"retention_cron":         retentionCronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_purge_at":          s.lastPurgeAt,
		"current_rate":           s.provider.GetRate(),
		"stale":                  s.provider.IsStale(),
	}
}
