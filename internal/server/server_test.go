package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/emergentai/formdocs/internal/assets"
	"github.com/emergentai/formdocs/internal/components"
	"github.com/emergentai/formdocs/internal/config"
	"github.com/emergentai/formdocs/internal/features"
	"github.com/emergentai/formdocs/internal/handlers"
	"github.com/emergentai/formdocs/internal/metrics"
	"github.com/emergentai/formdocs/internal/styles"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRouter(t *testing.T, log *zap.Logger) http.Handler {
	t.Helper()
	m, err := metrics.New()
	require.NoError(t, err)

	pages := handlers.NewPages(handlers.Options{
		Site:     components.Site{Title: "Formdocs", DocsPath: "/docs/intro"},
		Section:  components.NewFeatureSection(assets.DefaultIcons(), styles.Default(), components.DefaultColumns),
		Catalog:  features.Default(),
		CacheTTL: time.Minute,
		Metrics:  m,
		Logger:   log,
	})
	return NewRouter(pages, m, log)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, zap.NewNop())

	tests := []struct {
		path        string
		status      int
		contentType string
		contains    string
	}{
		{"/", http.StatusOK, "text/html; charset=utf-8", "Validation by schema"},
		{"/api/features", http.StatusOK, "application/json", `"title":"Controlled form"`},
		{"/health", http.StatusOK, "application/json", `"status":"ok"`},
		{"/metrics", http.StatusOK, "text/plain", "go_goroutines"},
		{"/static/css/site.css", http.StatusOK, "text/css", ".features_t9XL"},
		{"/static/img/validations.svg", http.StatusOK, "image/svg+xml", "<svg"},
		{"/does-not-exist", http.StatusNotFound, "application/json", `"code":"not_found"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), tt.contentType),
				"content type %q should start with %q", rec.Header().Get("Content-Type"), tt.contentType)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router := newTestRouter(t, zap.New(core))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "http", fields["scope"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/health", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(ln.Addr().String(), newTestRouter(t, zap.NewNop()), 5*time.Second, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	client.CloseIdleConnections()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 6, strings.Count(string(body), `class="col col--4"`))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_StartListenError(t *testing.T) {
	srv := New("256.0.0.1:bad", http.NotFoundHandler(), time.Second, zap.NewNop())
	err := srv.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
	assert.NoError(t, srv.Shutdown(context.Background()), "shutdown of an unstarted server is a no-op")
}

func TestModule_Lifecycle(t *testing.T) {
	cfg := &config.Config{Address: "127.0.0.1", Port: ":0", ShutdownTimeout: 5 * time.Second}

	var srv *Server
	app := fxtest.New(t,
		fx.Supply(cfg, zap.NewNop()),
		fx.Provide(
			metrics.New,
			func(m *metrics.Metrics, log *zap.Logger) *handlers.Pages {
				return handlers.NewPages(handlers.Options{
					Section: components.NewFeatureSection(assets.DefaultIcons(), styles.Default(), components.DefaultColumns),
					Catalog: features.Default(),
					Metrics: m,
					Logger:  log,
				})
			},
		),
		Module,
		fx.Populate(&srv),
	)
	app.RequireStart()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + srv.Addr() + "/health")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	client.CloseIdleConnections()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app.RequireStop()
}
