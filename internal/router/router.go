package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nanoapp/hostkit/internal/pairing"
)

func New(
	bridge http.Handler,
	issuer *pairing.Issuer,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Group(func(r chi.Router) {
		r.Use(RequireToken(issuer, logger))
		r.Get("/bridge", bridge.ServeHTTP)
	})

	return r
}

// RequireToken guards the bridge endpoint: the connect URL must carry a
// valid pairing token in its query string.
func RequireToken(issuer *pairing.Issuer, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.URL.Query().Get("token")
			claims, err := issuer.Verify(token)
			if err != nil {
				logger.Warn("bridge connection refused", "err", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			logger.Debug("bridge client paired", "client", claims.Client)
			next.ServeHTTP(w, r)
		})
	}
}
