package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/legends-backend/internal/config"
	mw "github.com/heartmarshall/legends-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Geo      *GeoHandler
	Category *CategoryHandler
	Legend   *LegendHandler
}

// RouterDeps carries the cross-cutting pieces of the middleware chain.
type RouterDeps struct {
	Logger         *slog.Logger
	CORS           config.CORSConfig
	TokenValidator mw.TokenValidator
	RateLimiter    *mw.RateLimiter
	LoginRateLimit int
}

// NewRouter builds the HTTP surface. Every route resolves a bearer token when
// one is sent; catalog routes other than /districts also require one.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	gated := mw.RequireAuth

	mux.HandleFunc("GET /{$}", h.Health.Root)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	authLimit := func(scope string) mw.Middleware {
		if deps.RateLimiter == nil {
			return mw.Chain()
		}
		return deps.RateLimiter.Limit(scope, deps.LoginRateLimit)
	}
	mux.Handle("POST /auth/register", mw.Wrap(h.Auth.Register, authLimit("register")))
	mux.Handle("POST /auth/login", mw.Wrap(h.Auth.Login, authLimit("login")))

	mux.Handle("GET /provinces", mw.Wrap(h.Geo.ListProvinces, gated))
	mux.Handle("GET /cantons", mw.Wrap(h.Geo.ListCantons, gated))
	mux.HandleFunc("GET /districts", h.Geo.ListDistricts)
	mux.Handle("GET /categories", mw.Wrap(h.Category.List, gated))

	mux.Handle("GET /legends", mw.Wrap(h.Legend.List, gated))
	mux.Handle("GET /legends/filters", mw.Wrap(h.Legend.Filter, gated))
	mux.Handle("GET /legends/{id}", mw.Wrap(h.Legend.Get, gated))
	mux.Handle("POST /legends", mw.Wrap(h.Legend.Create, gated))
	mux.Handle("PATCH /legends/{id}", mw.Wrap(h.Legend.Update, gated))
	mux.Handle("DELETE /legends/{id}", mw.Wrap(h.Legend.Delete, gated))

	return mw.Chain(
		mw.RequestID(),
		mw.Logger(deps.Logger),
		mw.Recovery(deps.Logger),
		mw.CORS(deps.CORS),
		mw.Auth(deps.TokenValidator, deps.Logger),
	)(mux)
}
