package manifest

import (
	"context"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed sources kept by [ParseCached].
const DefaultCacheSize = 64

// cache maps manifest text to its fully parsed document.
//
//nolint:gochecknoglobals
var cache = sync.OnceValue(
	func() *lru.Cache[string, *Document] {
		c, err := lru.New[string, *Document](DefaultCacheSize)
		if err != nil {
			panic(err) // only for a non-positive size
		}

		return c
	},
)

// ParseCached is like [Parse] but remembers complete parses by source text.
// Every call returns its own copy, so callers may mutate the result freely.
// Partial parses are never cached.
func ParseCached(
	ctx context.Context,
	s string,
	opts ...Option,
) (*Document, error) {
	o := makeOptions(opts...)

	if doc, ok := cache().Get(s); ok {
		o.logger.TraceContext(ctx, "cache hit",
			slog.Int("source_bytes", len(s)),
		)

		return doc.Clone(), nil
	}

	doc, err := Parse(ctx, s, opts...)
	if err != nil {
		return doc, err
	}

	cache().Add(s, doc.Clone())

	return doc, nil
}

// ClearCache removes all cached documents.
func ClearCache() {
	cache().Purge()
}
