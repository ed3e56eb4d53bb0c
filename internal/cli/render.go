package cli

import (
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/choice/core/choice"
	"github.com/dmitrymomot/choice/core/i18n"
	"github.com/dmitrymomot/choice/core/logger"
	"github.com/dmitrymomot/choice/integration/gotemplate"
)

type renderOptions struct {
	templates []string
	dataPath  string
	html      bool
}

func newRenderCmd(global *globalOptions) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a Go template with choose/choice functions",
		Example: `  choose render --template page.tmpl --data data.yaml --locale pl
  choose render -t page.html -t partials.html --html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, registry, err := setup(cmd, global)
			if err != nil {
				return err
			}
			data, err := loadData(opts.dataPath)
			if err != nil {
				return err
			}

			start := time.Now()
			ctx := cmd.Context()
			if global.locale != "" {
				ctx = i18n.WithLocale(ctx, global.locale)
			}
			scope := gotemplate.NewScope(ctx, data)
			selectorOpts := []choice.SelectorOption{choice.WithRegistry(registry), choice.WithLogger(log)}

			if err := renderTemplates(cmd.OutOrStdout(), opts, scope, selectorOpts); err != nil {
				log.Error("render failed", logger.Template(opts.templates[0]), logger.Error(err))
				return err
			}
			log.Debug("rendered", logger.Template(opts.templates[0]), logger.Elapsed(start))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringSliceVarP(&opts.templates, "template", "t", nil, "template files; the first one is executed")
	fs.StringVarP(&opts.dataPath, "data", "d", "", "YAML or JSON file with template data")
	fs.BoolVar(&opts.html, "html", false, "use html/template escaping")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

func renderTemplates(w io.Writer, opts renderOptions, scope gotemplate.Scope, selectorOpts []choice.SelectorOption) error {
	if len(opts.templates) == 0 {
		return errors.New("no template given")
	}
	name := filepath.Base(opts.templates[0])

	if opts.html {
		tmpl := htmltemplate.New(name)
		tmpl.Funcs(gotemplate.HTMLFuncs(tmpl, selectorOpts...))
		if _, err := tmpl.ParseFiles(opts.templates...); err != nil {
			return fmt.Errorf("parse templates: %w", err)
		}
		return tmpl.Execute(w, scope)
	}

	tmpl := template.New(name)
	tmpl.Funcs(gotemplate.TextFuncs(tmpl, selectorOpts...))
	if _, err := tmpl.ParseFiles(opts.templates...); err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	return tmpl.Execute(w, scope)
}

// loadData reads a YAML document (JSON included) into a map. An empty path
// yields empty data.
func loadData(path string) (map[string]any, error) {
	data := map[string]any{}
	if path == "" {
		return data, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode data %s: %w", path, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}
