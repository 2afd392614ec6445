package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/vfg2006/campaign-metrics-api/pkg/instrumentation"
)

// Route é um endpoint com os middlewares que só valem para ele (ex.: perfis permitidos)
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []alice.Constructor
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

func New(configs ...ConfigRouter) Router {
	router := &Router{router: httprouter.New()}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra cada rota com a instrumentação por padrão de rota envolvendo
// os middlewares próprios, na ordem declarada
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		chain := alice.New(instrumentation.InstrumentRoute(route.Path)).Append(route.Middlewares...)
		r.router.Handler(route.Method, route.Path, chain.Then(route.Handler))
	}
}
