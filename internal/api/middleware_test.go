package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/platform/requestid"
)

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestid.ID(r.Context())
		require.True(t, ok)
		seen = id
	})

	rr := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))

	require.NotEmpty(t, seen)
	require.Equal(t, seen, rr.Header().Get("X-Request-ID"))
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := requestid.ID(r.Context())
		require.Equal(t, "upstream-id", id)
	})

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rr := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rr, req)

	require.Equal(t, "upstream-id", rr.Header().Get("X-Request-ID"))
}

func TestLoggingRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	Logging(logger)(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, buf.String(), `"status":404`)
	require.Contains(t, buf.String(), `"method":"GET"`)
}

func TestCORSPreflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	})

	rr := httptest.NewRecorder()
	CORS(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/activities", nil))

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
