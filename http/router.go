package http

import (
	"net/http"

	"invest-agent/service"
)

type RouterDeps struct {
	CompoundInterest *service.CompoundInterestService
	RealEstate       *service.RealEstateService
	RateLimiter      *RateLimiter
}

// NewRouter wires the calculator endpoints. Calculation routes are rate
// limited; the health check is not.
func NewRouter(deps RouterDeps) http.Handler {
	compoundHandler := NewCompoundInterestHandler(deps.CompoundInterest)
	realEstateHandler := NewRealEstateHandler(deps.RealEstate)

	limited := func(h http.HandlerFunc) http.Handler {
		if deps.RateLimiter == nil {
			return h
		}
		return RateLimitMiddleware(deps.RateLimiter, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/compound-interest", limited(compoundHandler.Project))
	mux.Handle("/real-estate/profitability", limited(realEstateHandler.Analyze))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	return RequestLogMiddleware(mux)
}
