package assetcache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okFetcher(calls *atomic.Int32) FetcherFunc {
	return func(ctx context.Context, url string) (Entry, error) {
		if calls != nil {
			calls.Add(1)
		}
		return Entry{Status: http.StatusOK, Body: []byte(url)}, nil
	}
}

func TestDefaultManifest(t *testing.T) {
	m := DefaultManifest("v1")
	assert.Equal(t, "nailsbyceline-v1", m.CacheName())
	assert.Equal(t, []string{"/", "/css/styles.css", "/images/og-image.jpg"}, m.URLs)
	require.NoError(t, m.Validate())

	assert.Error(t, Manifest{Prefix: "x", Version: "v 1", URLs: []string{"/"}}.Validate())
	assert.Error(t, Manifest{Prefix: "x", Version: "v1"}.Validate())
	assert.Error(t, Manifest{Prefix: "x", Version: "v1", URLs: []string{"https://evil.example/"}}.Validate())
	assert.Error(t, Manifest{Prefix: "x", Version: "v1", URLs: []string{"//evil.example/"}}.Validate())
}

func TestInstallCommitsAllEntries(t *testing.T) {
	var calls atomic.Int32
	store := NewMemoryStore()
	inst, err := NewInstaller(okFetcher(&calls), store)
	require.NoError(t, err)

	m := DefaultManifest("v1")
	require.NoError(t, inst.Install(context.Background(), m))
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []string{"/", "/css/styles.css", "/images/og-image.jpg"}, store.Keys("nailsbyceline-v1"))

	e, ok := store.Get("nailsbyceline-v1", "/css/styles.css")
	require.True(t, ok)
	assert.Equal(t, "/css/styles.css", string(e.Body))
}

func TestInstallIsAllOrNothing(t *testing.T) {
	for _, failing := range DefaultManifest("v1").URLs {
		t.Run(failing, func(t *testing.T) {
			fetcher := FetcherFunc(func(ctx context.Context, url string) (Entry, error) {
				if url == failing {
					return Entry{}, &FetchError{URL: url, Status: http.StatusNotFound}
				}
				return Entry{Status: http.StatusOK}, nil
			})
			store := NewMemoryStore()
			inst, err := NewInstaller(fetcher, store)
			require.NoError(t, err)

			err = inst.Install(context.Background(), DefaultManifest("v1"))
			require.Error(t, err)
			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, failing, fe.URL)

			assert.Empty(t, store.Keys("nailsbyceline-v1"))
			assert.Empty(t, store.Names())
		})
	}
}

func TestInstallFailureKeepsPreviousCache(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Commit("nailsbyceline-v1", []Entry{{URL: "/"}}))

	fetcher := FetcherFunc(func(ctx context.Context, url string) (Entry, error) {
		return Entry{}, errors.New("offline")
	})
	inst, err := NewInstaller(fetcher, store)
	require.NoError(t, err)

	require.Error(t, inst.Install(context.Background(), DefaultManifest("v2")))
	assert.Equal(t, []string{"nailsbyceline-v1"}, store.Names())
}

func TestActivatePrunesStaleVersions(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Commit("nailsbyceline-v1", nil))
	require.NoError(t, store.Commit("other-v1", nil))
	inst, err := NewInstaller(okFetcher(nil), store)
	require.NoError(t, err)

	m := DefaultManifest("v2")
	require.NoError(t, inst.Install(context.Background(), m))
	assert.Equal(t, []string{"nailsbyceline-v1"}, inst.Activate(m))
	assert.Equal(t, []string{"nailsbyceline-v2", "other-v1"}, store.Names())
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = w.Write([]byte("body{}"))
	}))
	defer srv.Close()

	f := HTTPFetcher{BaseURL: srv.URL + "/", Client: srv.Client()}
	e, err := f.Fetch(context.Background(), "/css/styles.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(e.Body))
	assert.Equal(t, "text/css; charset=utf-8", e.ContentType)

	_, err = f.Fetch(context.Background(), "/missing")
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.Status)
	assert.Contains(t, fe.Error(), "unexpected status 404")
}

func TestServiceWorker(t *testing.T) {
	js, err := ServiceWorker(DefaultManifest("v1"))
	require.NoError(t, err)
	body := string(js)
	assert.Contains(t, body, `const CACHE_NAME = "nailsbyceline-v1";`)
	assert.Contains(t, body, `const PRECACHE_URLS = ["/","/css/styles.css","/images/og-image.jpg"];`)
	assert.Contains(t, body, "cache.addAll(PRECACHE_URLS)")
	assert.Contains(t, body, "caches.delete(name)")

	_, err = ServiceWorker(Manifest{})
	require.Error(t, err)
}
