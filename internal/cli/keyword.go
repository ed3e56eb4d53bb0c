package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/choice/core/choice"
	"github.com/dmitrymomot/choice/core/i18n"
)

type keywordOptions struct {
	typ string
	raw bool
}

func newKeywordCmd(global *globalOptions) *cobra.Command {
	var opts keywordOptions
	cmd := &cobra.Command{
		Use:   "keyword VALUE",
		Short: "Print the keyword a value resolves to",
		Long: `Print the keyword a value resolves to.

VALUE is read as a YAML scalar, so 3 is a number and true a boolean.
Use --raw to treat it as a plain string.`,
		Example: `  choose keyword 3 --locale pl
  choose keyword true --type boolean`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, registry, err := setup(cmd, global)
			if err != nil {
				return err
			}
			value, err := parseValue(args[0], opts.raw)
			if err != nil {
				return err
			}

			var resolveOpts choice.Options
			if opts.typ != "" {
				resolveOpts = choice.Options{choice.OptionType: opts.typ}
			}
			ctx := cmd.Context()
			if global.locale != "" {
				ctx = i18n.WithLocale(ctx, global.locale)
			}

			keyword, err := choice.NewResolver(registry).Resolve(ctx, choice.Value(value), resolveOpts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), keyword)
			return err
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.typ, "type", "", `value type; only "boolean" is supported`)
	fs.BoolVar(&opts.raw, "raw", false, "treat VALUE as a string")
	return cmd
}

func parseValue(arg string, raw bool) (any, error) {
	if raw {
		return arg, nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return nil, fmt.Errorf("parse value %q: %w", arg, err)
	}
	return v, nil
}
