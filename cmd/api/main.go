package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/integrator/exchangerate"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/integrator/exchangerate/rateclient"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/api"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/scheduler"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/deriving"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/exchanging"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := campaignRepository(ctx, cfg.Redis, pgConn)
	exchangeRateRepo := repository.NewExchangeRateRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	rateClient := rateclient.NewClient(cfg)
	rateIntegrator := exchangerate.New(rateClient)

	rateProvider := exchanging.NewProvider(rateIntegrator, exchangeRateRepo, cfg.ExchangeRate.Fallback)
	if err := rateProvider.Seed(ctx); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar a última cotação persistida")
	}
	// Primeira busca em background; até lá vale a cotação carregada ou o fallback
	rateProvider.RefreshIfStale(ctx)

	engine := deriving.NewEngine(deriving.NewDefaultRegistry())

	displayCurrency, err := domain.ParseCurrency(cfg.Display.Currency)
	if err != nil {
		logrus.WithError(err).Warnf("Moeda de exibição inválida: %s, usando BRL", cfg.Display.Currency)
		displayCurrency = domain.CurrencyBRL
	}

	reportingService := reporting.NewService(campaignRepo, rateProvider, engine, displayCurrency)

	exchangeRateSyncService := scheduler.NewExchangeRateSyncService(rateProvider, exchangeRateRepo, cfg)
	if err := exchangeRateSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de cotação")
	} else {
		logrus.Info("Agendador de sincronização de cotação iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		rateProvider,
		authenticator,
		exchangeRateSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// campaignRepository usa o Redis como cache de leitura quando configurado
func campaignRepository(ctx context.Context, redisConfig config.Redis, conn postgres.Queryer) repository.CampaignRepository {
	primary := repository.NewCampaignRepository(conn)
	if !redisConfig.Enabled() {
		logrus.Info("Cache de campanhas desabilitado")
		return primary
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de campanhas")
		return primary
	}

	logrus.WithFields(logrus.Fields{
		"addr": redisConfig.Addr,
		"ttl":  redisConfig.CampaignCacheTTL().String(),
	}).Info("Cache de campanhas habilitado")

	return repository.NewCachedCampaignRepository(primary, rdb, redisConfig.CampaignCacheTTL())
}
