package assetcache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
)

// The install step uses cache.addAll, which rejects and stores nothing when
// any request fails.
var swTemplate = template.Must(template.New("sw").Parse(`const CACHE_PREFIX = {{.Prefix}};
const CACHE_NAME = {{.Name}};
const PRECACHE_URLS = {{.URLs}};

self.addEventListener('install', (event) => {
  event.waitUntil(
    caches.open(CACHE_NAME)
      .then((cache) => cache.addAll(PRECACHE_URLS))
      .then(() => self.skipWaiting())
  );
});

self.addEventListener('activate', (event) => {
  event.waitUntil(
    caches.keys()
      .then((names) => Promise.all(
        names
          .filter((name) => name.startsWith(CACHE_PREFIX + '-') && name !== CACHE_NAME)
          .map((name) => caches.delete(name))
      ))
      .then(() => self.clients.claim())
  );
});

self.addEventListener('fetch', (event) => {
  if (event.request.method !== 'GET') {
    return;
  }
  event.respondWith(
    caches.match(event.request).then((cached) => cached || fetch(event.request))
  );
});
`))

// ServiceWorker renders the worker script that precaches m in the browser.
func ServiceWorker(m Manifest) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("assetcache: invalid manifest: %w", err)
	}
	prefix, _ := json.Marshal(m.Prefix)
	name, _ := json.Marshal(m.CacheName())
	urls, err := json.Marshal(m.URLs)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = swTemplate.Execute(&buf, struct{ Prefix, Name, URLs string }{string(prefix), string(name), string(urls)})
	if err != nil {
		return nil, fmt.Errorf("assetcache: render service worker: %w", err)
	}
	return buf.Bytes(), nil
}
