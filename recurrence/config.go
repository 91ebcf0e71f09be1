package recurrence

import (
	"io"
	"log/slog"
	"time"

	"github.com/nmichkarev/rrule/i18n"
)

// EngineConfig holds configuration options for the recurrence engine
type EngineConfig struct {
	CacheEnabled bool
	CacheConfig  CacheConfig

	// Language is a BCP 47 tag resolved against Registry.
	Language string
	// Registry defaults to i18n.DefaultRegistry().
	Registry *i18n.Registry
	// Templates, when set, is used instead of the Language lookup.
	Templates *i18n.Templates

	Logger *slog.Logger

	MaxPreviewOccurrences int           // Upper bound for Next
	PreviewWindow         time.Duration // Next stops looking past from+PreviewWindow
}

// DefaultEngineConfig renders English and caches descriptions
var DefaultEngineConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig:  DefaultCacheConfig,
	Language:     "en",

	MaxPreviewOccurrences: 100,
	PreviewWindow:         365 * 24 * time.Hour * 2,
}

// HighPerformanceConfig is tuned for batch runs over many distinct rules
var HighPerformanceConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             30 * time.Minute,
		MaxEntries:      5000,
		CleanupInterval: 10 * time.Minute,
	},
	Language: "en",

	MaxPreviewOccurrences: 50,
	PreviewWindow:         365 * 24 * time.Hour,
}

// LowMemoryConfig is optimized for memory-constrained environments
var LowMemoryConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             5 * time.Minute,
		MaxEntries:      100,
		CleanupInterval: 2 * time.Minute,
	},
	Language: "en",

	MaxPreviewOccurrences: 20,
	PreviewWindow:         365 * 24 * time.Hour,
}

// DisabledCacheConfig turns off caching entirely
var DisabledCacheConfig = EngineConfig{
	CacheEnabled: false,
	Language:     "en",

	MaxPreviewOccurrences: 1000,
	PreviewWindow:         365 * 24 * time.Hour * 10,
}

// NewEngineWithConfig creates a recurrence engine with custom configuration.
// It fails when Language matches no registered bundle.
func NewEngineWithConfig(config EngineConfig) (*Engine, error) {
	templates := config.Templates
	if templates == nil {
		registry := config.Registry
		if registry == nil {
			registry = i18n.DefaultRegistry()
		}
		language := config.Language
		if language == "" {
			language = "en"
		}
		t, err := registry.Lookup(language)
		if err != nil {
			return nil, err
		}
		templates = t
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var cache *RecurrenceCache
	if config.CacheEnabled {
		cache = NewRecurrenceCache(config.CacheConfig)
	}

	return &Engine{
		cache:     cache,
		config:    config,
		templates: templates,
		logger:    logger,
	}, nil
}
