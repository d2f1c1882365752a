// Package api serves password estimates over HTTP.
package api

import (
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"github.com/pivotal-cf/pwdkek/estimator"
	"github.com/pivotal-cf/pwdkek/metrics"
)

//go:generate counterfeiter . Estimator

type Estimator interface {
	Estimate(password string) (estimator.Estimate, error)
}

// NewServer routes estimate and health requests. A nil metricsHandler leaves
// /metrics unrouted.
func NewServer(
	logger lager.Logger,
	est Estimator,
	emitter metrics.Emitter,
	metricsHandler http.Handler,
) (http.Handler, error) {
	handlers := rata.Handlers{
		Estimate: NewEstimateHandler(logger, est, emitter),
		Health:   NewHealthHandler(),
	}

	routes := rata.Routes{}
	for _, route := range Routes {
		if route.Name == Metrics {
			if metricsHandler == nil {
				continue
			}
			handlers[Metrics] = metricsHandler
		}
		routes = append(routes, route)
	}

	return rata.NewRouter(routes, handlers)
}

type healthHandler struct{}

func NewHealthHandler() http.Handler {
	return &healthHandler{}
}

func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}
