package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	nextHolidayPath = "/next-holiday"
	versionPath     = "/version"
)

// Init builds the router. Routes are registered with their full path so that
// CheckHTTPMethod can find them by exact pattern.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get(h.cfg.URLPrefix+nextHolidayPath, h.getNextHoliday)
	router.Get(h.cfg.URLPrefix+versionPath, h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
