package mcpsrv

import (
	"github.com/usestring/jackgen/internal/cache"
	"github.com/usestring/jackgen/internal/config"
	"github.com/usestring/jackgen/internal/generator"
)

// Deps contains all dependencies available to custom tools.
// Custom tools share the generator and result cache with the builtin ones.
type Deps struct {
	Config    *config.Config
	Generator *generator.Generator
	Cache     *cache.ResultCache[any]
}
