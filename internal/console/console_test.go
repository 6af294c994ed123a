package console_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/marcelsud/library-console/config"
	"github.com/marcelsud/library-console/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		APIBaseURL:   baseURL,
		Port:         "8080",
		StaleTime:    5 * time.Minute,
		GCTime:       5 * time.Minute,
		FallbackMode: "always",
		CacheBackend: "memory",
		LogLevel:     "error",
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	var requests atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Romance","description":"x"}]`))
	}))
	defer srv.Close()

	app, err := console.New(testConfig(srv.URL+"/api/v1"), "console-test")
	require.NoError(t, err)
	defer app.Close()

	t.Run("concurrent reads share one request", func(t *testing.T) {
		done := make(chan int, 2)
		for i := 0; i < 2; i++ {
			go func() {
				genres, err := app.Service.Genres(ctx)
				assert.NoError(t, err)
				done <- len(genres)
			}()
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		assert.Equal(t, 1, <-done)
		assert.Equal(t, 1, <-done)
		assert.Equal(t, int32(1), requests.Load())
	})
	t.Run("collector sees the activity", func(t *testing.T) {
		m, err := app.Collector.Collect(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), m.Cache.Fetches)
		assert.Equal(t, int64(1), m.CachedEntries)
		assert.Zero(t, m.Fallbacks)
	})
}

func TestNew_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	app, err := console.New(testConfig(base), "console-test")
	require.NoError(t, err)
	defer app.Close()

	books, err := app.Service.Books(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 4)
	assert.Equal(t, int64(1), app.Fallback.Fallbacks())
}
