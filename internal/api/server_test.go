package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	ratemocks "github.com/vfg2006/campaign-metrics-api/internal/usecases/exchanging/mocks"
	reportmocks "github.com/vfg2006/campaign-metrics-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type staticAuthenticator struct{}

func (staticAuthenticator) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString != "token-valido" {
		return nil, errors.New("invalid token")
	}
	return &domain.Claims{UserID: 1, UserRoleID: domain.RoleClient}, nil
}

func newTestServer(t *testing.T) (*Server, *ratemocks.MockRateProvider) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0"}}
	provider := ratemocks.NewMockRateProvider(ctrl)

	srv, err := New(cfg, reportmocks.NewMockReporter(ctrl), provider, staticAuthenticator{}, nil)
	require.NoError(t, err)

	return srv, provider
}

func TestServer_RotasPublicas(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/healthcheck", "/metrics"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestServer_ExigeToken(t *testing.T) {
	srv, provider := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/exchange-rate", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	provider.EXPECT().GetRate().Return(domain.ExchangeRate{Rate: 5.43, FetchedAt: time.Now(), Source: domain.RateSourceAwesomeAPI})
	provider.EXPECT().IsStale().Return(false)

	req := httptest.NewRequest(http.MethodGet, "/v1/exchange-rate", nil)
	req.Header.Set("Authorization", "Bearer token-valido")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "5.43")
}

func TestServer_Shutdown(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, srv.Shutdown(ctx))
}

func TestServer_RunEncerraQuandoContextoCancela(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não encerrou após o cancelamento do contexto")
	}
}

func TestServer_RunRetornaErroDoListener(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{Server: config.Server{Host: "endereco-invalido", Port: "-1"}}
	srv, err := New(cfg, reportmocks.NewMockReporter(ctrl), ratemocks.NewMockRateProvider(ctrl), staticAuthenticator{}, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("falha do listener não foi propagada")
	}
}
