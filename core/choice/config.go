package choice

import "fmt"

// Plural rule sources accepted by Config.PluralSource.
const (
	PluralSourceBuiltin = "builtin"
	PluralSourceCLDR    = "cldr"
)

// Config provides environment-based configuration for a Registry.
type Config struct {
	Locale       string   `env:"CHOICE_LOCALE" envDefault:"default"`
	Languages    []string `env:"CHOICE_LANGUAGES" envSeparator:","`
	PluralSource string   `env:"CHOICE_PLURAL_SOURCE" envDefault:"builtin"`
}

// DefaultConfig returns the configuration matching NewRegistry without options.
func DefaultConfig() Config {
	return Config{
		Locale:       DefaultLocale,
		PluralSource: PluralSourceBuiltin,
	}
}

// NewFromConfig creates a Registry from configuration, validates it, and
// applies opts on top.
func NewFromConfig(cfg Config, opts ...RegistryOption) (*Registry, error) {
	configOpts := make([]RegistryOption, 0, 2+len(opts))

	if len(cfg.Languages) > 0 {
		switch cfg.PluralSource {
		case "", PluralSourceBuiltin:
			configOpts = append(configOpts, WithPluralRules(cfg.Languages...))
		case PluralSourceCLDR:
			configOpts = append(configOpts, WithCLDRPluralRules(cfg.Languages...))
		default:
			return nil, fmt.Errorf("choice: unknown plural source %q", cfg.PluralSource)
		}
	}
	if cfg.Locale != "" {
		configOpts = append(configOpts, WithLocale(cfg.Locale))
	}

	configOpts = append(configOpts, opts...)

	r, err := NewRegistry(configOpts...)
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
