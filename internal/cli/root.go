// Package cli implements the choose command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/choice/core/choice"
	"github.com/dmitrymomot/choice/core/config"
	"github.com/dmitrymomot/choice/core/logger"
)

// Config is the environment configuration of the tool.
type Config struct {
	choice.Config
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppEnv    string `env:"APP_ENV" envDefault:"production"`
}

type globalOptions struct {
	locale    string
	languages []string
	cldr      bool
	verbose   bool
}

// Execute runs the root command with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var opts globalOptions
	cmd := &cobra.Command{
		Use:           "choose",
		Short:         "Render choice templates and resolve keywords",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fs := cmd.PersistentFlags()
	fs.StringVarP(&opts.locale, "locale", "l", "", "locale for plural rules (overrides CHOICE_LOCALE)")
	fs.StringSliceVar(&opts.languages, "languages", nil, "locales to register plural rules for, comma separated")
	fs.BoolVar(&opts.cldr, "cldr", false, "use CLDR plural rules instead of the built-in ones")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log selector decisions to stderr")

	cmd.AddCommand(
		newRenderCmd(&opts),
		newKeywordCmd(&opts),
	)
	return cmd
}

// setup loads configuration and builds the logger and registry for a command.
func setup(cmd *cobra.Command, opts *globalOptions) (*slog.Logger, *choice.Registry, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, nil, err
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if opts.verbose {
		level = slog.LevelDebug
	}
	logOpts := []logger.Option{
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(slog.String("env", cfg.AppEnv)),
	}
	if strings.EqualFold(cfg.LogFormat, "json") {
		logOpts = append(logOpts, logger.WithJSONFormatter())
	} else {
		logOpts = append(logOpts, logger.WithTextFormatter())
	}
	logOpts = append(logOpts, logger.WithLevel(level))
	log := logger.New(logOpts...)

	rc := cfg.Config
	if len(opts.languages) > 0 {
		rc.Languages = opts.languages
	}
	if opts.cldr {
		rc.PluralSource = choice.PluralSourceCLDR
	}
	if opts.locale != "" {
		rc.Locale = opts.locale
	}
	if rc.Locale != "" && rc.Locale != choice.DefaultLocale && !slices.Contains(rc.Languages, rc.Locale) {
		rc.Languages = append(slices.Clone(rc.Languages), rc.Locale)
	}

	registry, err := choice.NewFromConfig(rc)
	if err != nil {
		return nil, nil, fmt.Errorf("build registry: %w", err)
	}
	log.Debug("registry ready",
		logger.Locale(registry.Locale()),
		slog.Any("locales", registry.Locales()),
	)
	return log, registry, nil
}
