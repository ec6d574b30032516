package glyphy

import (
	"fmt"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glyphy/fontsrc"
	"github.com/gogpu/glyphy/internal/cache"
)

// CacheKey identifies a cached glyph by value.
type CacheKey struct {
	// Font is a caller-chosen font identity, such as a file path.
	Font string

	// Char is the character in Unicode normalization form C. It must be
	// a single code point.
	Char string
}

// NewCacheKey builds a key, normalizing char to NFC so that canonically
// equivalent spellings share an entry. A base letter followed by a
// combining mark becomes one key only when NFC composes the pair.
func NewCacheKey(font, char string) CacheKey {
	return CacheKey{Font: font, Char: norm.NFC.String(char)}
}

// CacheStats holds cache statistics.
type CacheStats struct {
	Len int

	// Capacity is the soft limit given to NewCache; 0 means unlimited.
	Capacity int

	Hits   uint64
	Misses uint64
}

// Cache holds encoded glyphs. It is owned by the caller; nothing in glyphy
// caches implicitly.
//
// A glyph is encoded at most once per key while it stays cached, however
// many goroutines ask for it. Re-encoding after a font change requires
// Invalidate or InvalidateFont first.
//
// Cache is safe for concurrent use.
type Cache struct {
	enc     *Encoder
	entries *cache.Cache[CacheKey, *Glyph]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewCache creates a cache that encodes misses with enc. maxEntries is a
// soft limit on the number of glyphs kept; 0 means unlimited.
func NewCache(enc *Encoder, maxEntries int) *Cache {
	return &Cache{
		enc:     enc,
		entries: cache.New[CacheKey, *Glyph](maxEntries),
	}
}

// Get returns the cached glyph for key.
func (c *Cache) Get(key CacheKey) (*Glyph, bool) {
	g, ok := c.entries.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return g, ok
}

// GetOrEncode returns the cached glyph for key or encodes it from src.
// Encoding errors are not cached. A key whose Char is not exactly one code
// point fails with ErrInvalidCacheKey and counts as neither hit nor miss.
func (c *Cache) GetOrEncode(key CacheKey, src fontsrc.Source) (*Glyph, error) {
	r, size := utf8.DecodeRuneInString(key.Char)
	if size != len(key.Char) || r == utf8.RuneError && size <= 1 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCacheKey, key.Char)
	}
	g, created, err := c.entries.GetOrCreate(key, func() (*Glyph, error) {
		cmds, err := src.Outline(r)
		if err != nil {
			return nil, err
		}
		return c.enc.Encode(key.Char, cmds, src.UnitsPerEm())
	})
	if created || err != nil {
		c.misses.Add(1)
	} else {
		c.hits.Add(1)
	}
	return g, err
}

// Invalidate drops the glyph for key and reports whether it was cached.
func (c *Cache) Invalidate(key CacheKey) bool {
	return c.entries.Delete(key)
}

// InvalidateFont drops every glyph of font and returns how many were
// dropped.
func (c *Cache) InvalidateFont(font string) int {
	return c.entries.DeleteFunc(func(k CacheKey) bool { return k.Font == font })
}

// Clear drops all glyphs and resets the statistics.
func (c *Cache) Clear() {
	c.entries.Clear()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Len returns the number of cached glyphs.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Len:      c.entries.Len(),
		Capacity: c.entries.Capacity(),
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
	}
}
