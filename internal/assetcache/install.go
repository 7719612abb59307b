package assetcache

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Installer precaches a manifest into a Store.
type Installer struct {
	fetcher Fetcher
	store   Store
	logger  *zap.Logger
}

// InstallerOption customises an Installer.
type InstallerOption func(*Installer)

// WithLogger overrides the no-op logger.
func WithLogger(logger *zap.Logger) InstallerOption {
	return func(i *Installer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

func NewInstaller(fetcher Fetcher, store Store, opts ...InstallerOption) (*Installer, error) {
	if fetcher == nil || store == nil {
		return nil, errors.New("assetcache: fetcher and store are required")
	}
	i := &Installer{fetcher: fetcher, store: store, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	return i, nil
}

// Install fetches every manifest URL concurrently and commits them as one
// cache. If any fetch fails nothing is committed and outstanding fetches are
// cancelled.
func (i *Installer) Install(ctx context.Context, m Manifest) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("assetcache: invalid manifest: %w", err)
	}
	name := m.CacheName()

	staged := make([]Entry, len(m.URLs))
	g, gctx := errgroup.WithContext(ctx)
	for idx, url := range m.URLs {
		idx, url := idx, url
		g.Go(func() error {
			e, err := i.fetcher.Fetch(gctx, url)
			if err != nil {
				return err
			}
			e.URL = url
			staged[idx] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		i.logger.Warn("precache install failed", zap.String("cache", name), zap.Error(err))
		return fmt.Errorf("assetcache: install %s: %w", name, err)
	}

	if err := i.store.Commit(name, staged); err != nil {
		return fmt.Errorf("assetcache: commit %s: %w", name, err)
	}
	i.logger.Info("precache installed", zap.String("cache", name), zap.Int("entries", len(staged)))
	return nil
}

// Activate removes caches left behind by earlier versions of the manifest.
func (i *Installer) Activate(m Manifest) []string {
	deleted := Prune(i.store, m.Prefix, m.CacheName())
	if len(deleted) > 0 {
		i.logger.Info("stale caches removed", zap.Strings("caches", deleted))
	}
	return deleted
}
