package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/surgeguard-io/surgeguard/pkg/usecase"
	"github.com/surgeguard-io/surgeguard/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard/kpi", getKPIHandler(uc.Dashboard))
		r.Get("/hospitals", listHospitalsHandler(uc.Dashboard))

		r.Route("/actions", func(r chi.Router) {
			r.Get("/pending", listPendingActionsHandler(uc.Action))
			r.Post("/{actionID}/approve", approveActionHandler(uc.Action))
			r.Post("/{actionID}/reject", rejectActionHandler(uc.Action))
		})

		r.Post("/advisory/generate", generateAdvisoryHandler(uc.Advisory))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
