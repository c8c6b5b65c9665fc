package tools

import (
	"github.com/usestring/jackgen/internal/cache"
	"github.com/usestring/jackgen/internal/config"
	"github.com/usestring/jackgen/internal/generator"
	"github.com/usestring/jackgen/internal/render/java"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config    *config.Config
	Generator *generator.Generator
	Cache     *cache.ResultCache[any] // tool outputs and rendered sources, by request digest
}

// cached returns the value stored under key, or computes and stores it.
// Errors are not cached.
func cached[T any](d *Deps, key string, compute func() (T, error)) (T, error) {
	if d.Cache != nil {
		if v, ok := d.Cache.Get(key); ok {
			if out, ok := v.(T); ok {
				return out, nil
			}
		}
	}

	out, err := compute()
	if err != nil {
		return out, err
	}
	if d.Cache != nil {
		d.Cache.Put(key, out)
	}
	return out, nil
}

// sourcesKey is the cache key of the rendered files of a generation digest.
func sourcesKey(digest string) string {
	return cache.Key("sources", digest)
}

// ClassSource returns the rendered source of class from the generation
// identified by digest, if it is still cached.
func (d *Deps) ClassSource(digest, class string) (java.File, bool) {
	if d.Cache == nil {
		return java.File{}, false
	}
	v, ok := d.Cache.Get(sourcesKey(digest))
	if !ok {
		return java.File{}, false
	}
	files, ok := v.([]java.File)
	if !ok {
		return java.File{}, false
	}
	for _, f := range files {
		if f.Class == class {
			return f, true
		}
	}
	return java.File{}, false
}

// checkSize rejects documents above the configured input cap.
func (d *Deps) checkSize(field, doc string) error {
	if doc == "" {
		return ErrInvalidInput(field + " is required")
	}
	if d.Config != nil && d.Config.MaxInputBytes > 0 && len(doc) > d.Config.MaxInputBytes {
		return ErrInvalidInput(field + " exceeds the configured input size limit")
	}
	return nil
}
