package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-metrics-api/pkg/instrumentation"
)

func TestRouter_MiddlewaresNaOrdemDeclarada(t *testing.T) {
	var calls []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/campaigns/:id/metrics",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, httprouter.ParamsFromContext(r.Context()).ByName("id"))
			w.WriteHeader(http.StatusAccepted)
		}),
		Middlewares: []alice.Constructor{tag("primeiro"), tag("segundo")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/cmp001/metrics", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"primeiro", "segundo", "cmp001"}, calls)
}

func TestRouter_InstrumentaPeloPadraoDaRota(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/v1/router-test/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}),
	}))

	for _, id := range []string{"a", "b", "c"} {
		rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/router-test/"+id, nil))
	}

	counter := instrumentation.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/router-test/:id", "404")
	assert.Equal(t, 3.0, testutil.ToFloat64(counter))
}

func TestRouter_RotaInexistente(t *testing.T) {
	rt := New()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nao-existe", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
