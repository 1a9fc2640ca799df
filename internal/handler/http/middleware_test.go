package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/MKhiriev/next-holiday/internal/logger"
	"github.com/MKhiriev/next-holiday/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(s string) string {
	return strconv.Quote(s)
}

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		logger:   &logger.Logger{Logger: zerolog.New(buf)},
		traceIDs: utils.NewTraceIDGenerator(),
	}
}

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "my-trace")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "my-trace", rec.Header().Get(traceIDHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWithTraceID_GeneratesUUIDv7(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	seen := make(map[string]struct{})

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(traceIDHeader)
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerInContextCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["trace_id"])
	assert.Equal(t, "inside", entry["message"])
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
	}{
		{
			name: "explicit status with body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("nope"))
			},
			wantStatus: http.StatusNotFound,
			wantSize:   4,
		},
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("hello"))
				_, _ = w.Write([]byte("!"))
			},
			wantStatus: http.StatusOK,
			wantSize:   6,
		},
		{
			name:       "nothing written",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: 0,
			wantSize:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)
			req := httptest.NewRequest(http.MethodGet, "/api/holidays/version?x=1", nil)

			h.withTraceID(h.withLogging(tt.handler)).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "/api/holidays/version?x=1", entry["uri"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.NotEmpty(t, entry["trace_id"])
		})
	}
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ProxiesHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Header().Set("X-Test", "1")
	_, err := w.Write([]byte("ok"))

	require.NoError(t, err)
	assert.Equal(t, "1", rec.Header().Get("X-Test"))
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, 2, w.size)
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/items", http.StatusOK},
		{http.MethodPost, "/items", http.StatusCreated},
		{http.MethodPut, "/items", http.StatusNotFound},
		{http.MethodDelete, "/items", http.StatusNotFound},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(router, tt.method, tt.path).Code)
		})
	}
}

func TestCheckHTTPMethod_DirectCallUnknownPath(t *testing.T) {
	router := chi.NewRouter()
	rec := httptest.NewRecorder()

	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodPatch, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
