package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmichkarev/rrule/i18n"
	"github.com/nmichkarev/rrule/internal/config"
	"github.com/nmichkarev/rrule/internal/logger"
	"github.com/nmichkarev/rrule/internal/output"
	"github.com/nmichkarev/rrule/recurrence"
)

// app is the state shared by every subcommand, built in PersistentPreRunE.
type app struct {
	v          *viper.Viper
	configFile string

	cfg      *config.Config
	logger   *slog.Logger
	registry *i18n.Registry
	engine   *recurrence.Engine
	encoder  output.Encoder
}

// NewRootCommand builds the rrule2text command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "rrule2text",
		Short: "Describe iCalendar recurrence rules in plain language",
		Long: `rrule2text renders RFC 5545 RRULE values as human-readable text in the
selected language, for single rules or for every recurring component of an
iCalendar file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: rrule2text.yaml in ., ./configs or ~/.config/rrule2text)")
	flags.StringP("lang", "l", "en", "BCP 47 language tag of the output")
	flags.String("templates", "", "YAML template bundle to use instead of --lang")
	flags.String("templates-dir", "", "directory of {tag}.yaml bundles to register")
	flags.StringP("output", "o", "text", "output format: text, yaml or xml")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")

	bindings := map[string]string{
		"language":      "lang",
		"templates":     "templates",
		"templates_dir": "templates-dir",
		"output":        "output",
		"logger.level":  "log-level",
		"logger.format": "log-format",
	}
	for key, flag := range bindings {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	cmd.AddCommand(
		newDescribeCommand(a),
		newICSCommand(a),
		newLanguagesCommand(a),
	)

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	a.logger, err = logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	a.encoder = output.NewEncoder(format)

	a.registry = i18n.DefaultRegistry()
	if cfg.TemplatesDir != "" {
		if err := i18n.LoadFS(a.registry, os.DirFS(cfg.TemplatesDir)); err != nil {
			return err
		}
		a.logger.Debug("registered template bundles", "dir", cfg.TemplatesDir, "tags", a.registry.Tags())
	}

	var templates *i18n.Templates
	if cfg.Templates != "" {
		templates, err = i18n.LoadFile(cfg.Templates)
		if err != nil {
			return err
		}
	}

	a.engine, err = recurrence.NewEngineWithConfig(recurrence.EngineConfig{
		CacheEnabled: cfg.Cache.Enabled,
		CacheConfig: recurrence.CacheConfig{
			TTL:             cfg.Cache.TTL,
			MaxEntries:      cfg.Cache.MaxEntries,
			CleanupInterval: cfg.Cache.CleanupInterval,
		},
		Language:              cfg.Language,
		Registry:              a.registry,
		Templates:             templates,
		Logger:                a.logger,
		MaxPreviewOccurrences: cfg.Preview.MaxOccurrences,
		PreviewWindow:         cfg.Preview.Window,
	})
	if err != nil {
		return err
	}

	a.logger.Debug("engine ready", "command", cmd.Name(), "language", cfg.Language, "output", format)
	return nil
}

func (a *app) close() {
	if a.engine != nil {
		a.engine.Close()
	}
}
