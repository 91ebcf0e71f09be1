package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RRULE2TEXT_LOGGER_LEVEL.
const EnvPrefix = "RRULE2TEXT"

type Config struct {
	Language     string        `mapstructure:"language"`
	Templates    string        `mapstructure:"templates"`
	TemplatesDir string        `mapstructure:"templates_dir"`
	Output       string        `mapstructure:"output"`
	Logger       LoggerConfig  `mapstructure:"logger"`
	Cache        CacheConfig   `mapstructure:"cache"`
	Preview      PreviewConfig `mapstructure:"preview"`
	Feed         FeedConfig    `mapstructure:"feed"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	TTL             time.Duration `mapstructure:"ttl"`
	MaxEntries      int           `mapstructure:"max_entries"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type PreviewConfig struct {
	Count          int           `mapstructure:"count"`
	MaxOccurrences int           `mapstructure:"max_occurrences"`
	Window         time.Duration `mapstructure:"window"`
}

// FeedConfig controls downloads of remote calendars. Credentials are sent
// only when both are set.
type FeedConfig struct {
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads configuration into v and decodes it. An explicit file must
// exist; otherwise rrule2text.yaml is looked up in ".", "./configs" and
// "$HOME/.config/rrule2text" and may be absent. Environment variables
// override the file, and flags bound to v override both.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("rrule2text")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rrule2text"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("language", "en")
	v.SetDefault("templates", "")
	v.SetDefault("templates_dir", "")
	v.SetDefault("output", "text")

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 15*time.Minute)
	v.SetDefault("cache.max_entries", 1000)
	v.SetDefault("cache.cleanup_interval", 5*time.Minute)

	v.SetDefault("preview.count", 0)
	v.SetDefault("preview.max_occurrences", 100)
	v.SetDefault("preview.window", 2*365*24*time.Hour)

	v.SetDefault("feed.username", "")
	v.SetDefault("feed.password", "")
	v.SetDefault("feed.timeout", 30*time.Second)
}
