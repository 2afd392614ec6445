package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/internal/api/handler"
	"github.com/vfg2006/campaign-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/scheduler"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/exchanging"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-metrics-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	rateProvider exchanging.RateProvider,
	authenticator authenticating.Authenticator,
	exchangeRateSyncService *scheduler.ExchangeRateSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if exchangeRateSyncService != nil {
		cronServices.ExchangeRateSyncService = exchangeRateSyncService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.MetricDefinitions(reporter)...),
		router.WithRoutes(handler.ExchangeRate(rateProvider)...),
		router.WithRoutes(handler.CampaignMetrics(reporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      45 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende até receber SIGINT/SIGTERM, o contexto ser cancelado ou o listener falhar
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, failed := <-serveErr:
		if failed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Encerrando servidor")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

// Shutdown aguarda as requisições em andamento; o agendador para pelo cancelamento do contexto em main
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
