package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elonulator/wealth-calculator/internal/dataset"
	"github.com/elonulator/wealth-calculator/internal/output"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return New(ds, opts...)
}

func do(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func assertCORS(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
}

func TestBillionaires(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/billionaires")

	require.Equal(t, http.StatusOK, rec.Code)
	assertCORS(t, rec.Header())

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "billionaires")
	assert.Contains(t, body, "medianAmericanNetWorth")
	assert.Contains(t, body, "lastUpdated")

	var resp output.BillionairesDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Billionaires, 5)
	assert.Equal(t, "Elon Musk", resp.Billionaires[0].Name)
	assert.Equal(t, float64(744000000000), resp.Billionaires[0].NetWorth)
	assert.Equal(t, "$744.00 billion", resp.Billionaires[0].NetWorthLabel)
	assert.Equal(t, float64(193000), resp.MedianAmericanNetWorth)
	assert.Equal(t, "2024-12-27", resp.LastUpdated)
	for i, b := range resp.Billionaires {
		assert.NotZero(t, b.ID)
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Source)
		assert.Greater(t, b.NetWorth, float64(0))
		if i > 0 {
			assert.LessOrEqual(t, b.NetWorth, resp.Billionaires[i-1].NetWorth)
		}
	}
}

func TestBillionairesNetWorthIsJSONNumber(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/billionaires")
	assert.Contains(t, rec.Body.String(), `"netWorth":744000000000`)
	assert.Contains(t, rec.Body.String(), `"medianAmericanNetWorth":193000`)
}

func TestPreflight(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/billionaires", "/api/compare", "/api/anything"} {
		rec := do(t, s, http.MethodOptions, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Empty(t, rec.Body.String(), path)
		assertCORS(t, rec.Header())
	}
}

func TestUnknownEndpoint(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/unknown")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assertCORS(t, rec.Header())
	assert.JSONEq(t, `{"error":"Unknown API endpoint"}`, rec.Body.String())
}

func TestCompare(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/compare?billionaire=1&amount=100,000,000,000")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assertCORS(t, rec.Header())

	var resp compareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Elon Musk", resp.Billionaire.Name)
	assert.Equal(t, "billionaire-to-median", resp.Direction)
	assert.Equal(t, "13.4", resp.PercentageOfWealth)
	assert.InDelta(t, 25940.86, resp.MedianAmount, 0.001)
	assert.Equal(t, float64(100000000000), resp.BillionaireAmount)
	assert.Equal(t, "25,940.86", resp.EquivalentDisplay)
	assert.Equal(t, "$100.00 billion", resp.BillionaireLabel)
	assert.Equal(t, "$25.94 thousand", resp.MedianLabel)
	assert.Equal(t,
		"Elon Musk spending $100.00 billion (13.4% of their wealth) is like the median American spending $25.94 thousand.",
		resp.Message)
}

func TestCompareReverse(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/compare?billionaire=1&amount=1000&direction=median-to-billionaire")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp compareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "median-to-billionaire", resp.Direction)
	assert.Equal(t, "0.5", resp.PercentageOfWealth)
	assert.InDelta(t, 3854922279.79, resp.BillionaireAmount, 0.001)
	assert.Equal(t, "3,854,922,279.79", resp.EquivalentDisplay)
}

func TestCompareWithEditedNetWorths(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/compare?billionaire=1&amount=100,000,000,000&medianNetWorth=100,000")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp compareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "13,440.86", resp.EquivalentDisplay)
	assert.Equal(t, float64(100000), resp.MedianWorth)
	assert.Equal(t, float64(744000000000), resp.BillionaireWorth)
	assert.Contains(t, resp.Message, "is like the median American spending $13.44 thousand.")

	rec = do(t, s, http.MethodGet, "/api/compare?billionaire=1&amount=100,000,000,000&netWorth=1,000,000,000,000")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp = compareResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "19,300.00", resp.EquivalentDisplay)
	assert.Equal(t, "10.0", resp.PercentageOfWealth)
	assert.Equal(t, float64(1000000000000), resp.BillionaireWorth)
}

func TestCompareRejectsBadEditedNetWorths(t *testing.T) {
	s := newTestServer(t)
	for target, want := range map[string]string{
		"/api/compare?amount=5&medianNetWorth=none": "medianNetWorth must be a number",
		"/api/compare?amount=5&netWorth=1.2.3":      "netWorth: invalid amount",
		"/api/compare?amount=5&medianNetWorth=0":    "target net worth must be positive",
		"/api/compare?amount=5&netWorth=0":          "source net worth must be positive",
	} {
		rec := do(t, s, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, want, target)
	}
}

func TestCompareDefaultsToRichest(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/compare?amount=0")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp compareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Billionaire.ID)
	assert.Equal(t, "0.0", resp.PercentageOfWealth)
	assert.Zero(t, resp.MedianAmount)
}

func TestCompareErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
		err    string
	}{
		{"missing amount", "/api/compare?billionaire=1", http.StatusBadRequest, "amount is required"},
		{"text amount", "/api/compare?amount=lots", http.StatusBadRequest, "amount is required"},
		{"malformed amount", "/api/compare?amount=1.2.3", http.StatusBadRequest, "invalid amount"},
		{"non numeric id", "/api/compare?billionaire=elon&amount=5", http.StatusBadRequest, "billionaire must be a numeric id"},
		{"unknown id", "/api/compare?billionaire=99&amount=5", http.StatusNotFound, "Unknown billionaire"},
		{"bad direction", "/api/compare?amount=5&direction=up", http.StatusBadRequest, "unknown direction"},
	}
	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assertCORS(t, rec.Header())

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.err)
		})
	}
}

func TestStaticAssets(t *testing.T) {
	assets := fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte("<h1>Elonulator</h1>")},
		"app.js":     &fstest.MapFile{Data: []byte("load();")},
	}
	s := newTestServer(t, WithAssets(assets))

	rec := do(t, s, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Elonulator")

	rec = do(t, s, http.MethodGet, "/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "load();", rec.Body.String())

	rec = do(t, s, http.MethodGet, "/missing.css")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoAssets(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/index.html")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/billionaires")
	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/billionaires", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodGet, "/api/billionaires")
	do(t, s, http.MethodGet, "/api/nope")

	rec := do(t, s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `elonulator_http_requests_total{method="GET",route="/api/billionaires",status="200"} 1`)
	assert.Contains(t, body, `elonulator_http_requests_total{method="GET",route="/api/unknown",status="404"} 1`)
	assert.Contains(t, body, "elonulator_http_request_duration_seconds")
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/api/billionaires", routeLabel("/api/billionaires"))
	assert.Equal(t, "/api/compare", routeLabel("/api/compare"))
	assert.Equal(t, "/api/unknown", routeLabel("/api/whatever/else"))
	assert.Equal(t, "/metrics", routeLabel("/metrics"))
	assert.Equal(t, "static", routeLabel("/index.html"))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln, time.Second) }()

	url := "http://" + ln.Addr().String() + "/api/billionaires"
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
