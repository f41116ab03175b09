// Package fetch retrieves remote template content. Downloads come from a
// fixed GitHub raw-content base URL; on failure the tool falls back to the
// local cache, then to the bundled copy shipped in the binary.
package fetch

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	git "github.com/go-git/go-git/v5"
	cp "github.com/otiai10/copy"
	"go.uber.org/zap"

	"github.com/universal-dev-env/udev/internal/cache"
)

// DefaultBaseURL is where template content is published.
const DefaultBaseURL = "https://raw.githubusercontent.com/universal-dev-env/templates/main"

//go:embed bundled
var bundled embed.FS

// Fetcher downloads template content with cache and bundled fallbacks.
type Fetcher struct {
	client   *http.Client
	cache    *cache.Cache
	base     string
	useCache bool
	log      *zap.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBaseURL points the fetcher at a different content root.
func WithBaseURL(base string) Option {
	return func(f *Fetcher) { f.base = base }
}

// WithCacheDisabled makes the fetcher skip both cache reads and writes.
func WithCacheDisabled() Option {
	return func(f *Fetcher) { f.useCache = false }
}

// WithHTTPClient swaps the HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) { f.client = client }
}

// New builds a Fetcher backed by c.
func New(c *cache.Cache, log *zap.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:   http.DefaultClient,
		cache:    c,
		base:     DefaultBaseURL,
		useCache: true,
		log:      log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Download fetches base/path, falling back to the cache and then to the
// bundled copy when the network is unavailable.
func (f *Fetcher) Download(ctx context.Context, path string) ([]byte, error) {
	url := f.base + "/" + path

	data, err := f.get(ctx, url)
	if err == nil {
		if f.useCache {
			if cacheErr := f.cache.Put(url, "template", data); cacheErr != nil {
				f.log.Warn("cannot cache download", zap.String("url", url), zap.Error(cacheErr))
			}
		}
		return data, nil
	}
	f.log.Warn("download failed, trying fallbacks", zap.String("url", url), zap.Error(err))

	if f.useCache {
		if data, ok := f.cache.Get(url, "template"); ok {
			f.log.Info("using cached copy", zap.String("url", url))
			return data, nil
		}
	}

	if data, bundledErr := bundled.ReadFile("bundled/" + path); bundledErr == nil {
		f.log.Info("using bundled copy", zap.String("path", path))
		return data, nil
	}

	return nil, fmt.Errorf("cannot download %s: %w", url, err)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// RegistryEntry is one named template in the registry index.
type RegistryEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// Registry fetches and parses the template index.
func (f *Fetcher) Registry(ctx context.Context) ([]RegistryEntry, error) {
	data, err := f.Download(ctx, "templates.json")
	if err != nil {
		return nil, err
	}
	var entries []RegistryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("template registry is malformed: %w", err)
	}
	return entries, nil
}

// Materialize puts the template at source into dir. A source that exists on
// the local filesystem is copied; anything else is treated as a git URL and
// cloned shallow.
func Materialize(ctx context.Context, source, dir string) error {
	if _, err := os.Stat(source); err == nil {
		return cp.Copy(source, dir)
	}

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:   source,
		Depth: 1,
	})
	if err != nil {
		return fmt.Errorf("cannot clone template %s: %w", source, err)
	}
	return nil
}
