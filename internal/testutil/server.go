package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"nailsbyceline.se/salon-web/internal/config"
	"nailsbyceline.se/salon-web/internal/server"
)

// FixedNow is the clock used by test servers.
var FixedNow = time.Date(2025, 3, 15, 0, 30, 0, 0, time.FixedZone("CET", 3600))

// Config returns the default configuration without reading the process environment.
func Config(t testing.TB, env map[string]string) config.Config {
	t.Helper()

	cfg, err := config.Load(config.WithEnvMap(env), config.WithoutSystemEnv())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

// NewApp builds the site with a fixed clock.
func NewApp(t testing.TB, env map[string]string, opts ...server.Option) *server.App {
	t.Helper()

	opts = append([]server.Option{server.WithClock(func() time.Time { return FixedNow })}, opts...)
	app, err := server.Build(Config(t, env), opts...)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app
}

// NewServer constructs an httptest server running the full HTTP stack.
func NewServer(t testing.TB, opts ...server.Option) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(NewApp(t, nil, opts...).Handler)
	t.Cleanup(ts.Close)
	return ts
}
