// Package library serves the host library catalog: the read-only inventory
// of recorded audio (artist -> album -> tracks) and playlists available on
// the player host, scraped offline into a JSON file.
package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rsked-radio/rcald/internal/model"
	"github.com/rsked-radio/rcald/internal/redis"
)

const (
	cacheKey = "rcald:catalog"
	cacheTTL = 5 * time.Minute
)

var ErrEmptyLibrary = errors.New("host library is empty")

// Loader reads the catalog file, going through the redis cache when one is
// configured. The catalog changes only when the scraper reruns, so a short
// TTL is plenty.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Raw returns the catalog document bytes.
func (l *Loader) Raw(ctx context.Context) ([]byte, error) {
	if redis.Enabled() {
		if raw, ok := redis.Get(ctx, cacheKey); ok {
			return raw, nil
		}
	}
	raw, err := os.ReadFile(l.path)
	if err != nil {
		log.Error().Err(err).Str("path", l.path).Msg("cannot read host library catalog")
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if redis.Enabled() {
		redis.Set(ctx, cacheKey, raw, cacheTTL)
	}
	return raw, nil
}

// Load parses the catalog.
func (l *Loader) Load(ctx context.Context) (*model.Catalog, error) {
	raw, err := l.Raw(ctx)
	if err != nil {
		return nil, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("unparseable catalog: %w", err)
	}
	return &cat, nil
}

// DefaultResource picks the first extant file resource from the catalog:
// artist, album, track and encoding. The source dialog uses it to seed a
// new file source. Map order is unspecified, so pick the lexicographically
// first keys to stay deterministic.
func DefaultResource(cat *model.Catalog) (artist, album, track, encoding string, err error) {
	artist = firstKey(cat.Library)
	if artist == "" {
		return "", "", "", "", ErrEmptyLibrary
	}
	album = firstKey(cat.Library[artist])
	if album == "" {
		return "", "", "", "", ErrEmptyLibrary
	}
	alb := cat.Library[artist][album]
	if len(alb.Tracks) == 0 {
		return "", "", "", "", ErrEmptyLibrary
	}
	return artist, album, alb.Tracks[0], alb.Encoding, nil
}

func firstKey[V any](m map[string]V) string {
	first := ""
	for k := range m {
		if first == "" || k < first {
			first = k
		}
	}
	return first
}
