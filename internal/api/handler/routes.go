package handler

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/vfg2006/campaign-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/exchanging"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-metrics-api/pkg/instrumentation"
	"github.com/vfg2006/campaign-metrics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: instrumentation.Handler(),
		},
	}
}

func MetricDefinitions(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics/definitions",
			Method:      http.MethodGet,
			Handler:     GetMetricDefinitions(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
	}
}

func ExchangeRate(provider exchanging.RateProvider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/exchange-rate",
			Method:      http.MethodGet,
			Handler:     GetExchangeRate(provider),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/v1/exchange-rate/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshExchangeRate(provider),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
	}
}

func CampaignMetrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetCampaignMetrics(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaign-metrics",
			Method:      http.MethodGet,
			Handler:     ListCampaignMetrics(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaign-metrics/aggregate",
			Method:      http.MethodGet,
			Handler:     AggregateCampaignMetrics(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaign-metrics/summary",
			Method:      http.MethodGet,
			Handler:     GetCampaignSummary(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []alice.Constructor{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []alice.Constructor{middleware.AdminOrSupervisor()},
		},
	}
}
