// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 Not Found instead of chi's default 405 when the path is known
// but the method is not, so callers cannot probe which routes exist.
//
// Routes are looked up by exact pattern against the request path; parameterised
// patterns are not expanded.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := findRoute(router, r.URL.Path)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if _, ok = route.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func findRoute(router *chi.Mux, path string) (chi.Route, bool) {
	for _, route := range router.Routes() {
		if route.Pattern == path {
			return route, true
		}
	}
	return chi.Route{}, false
}
