// Package templchoice exposes choice selection as templ components.
//
// A selector's children are its body; Choice blocks inside them render when
// the selector's keyword matches:
//
//	@templchoice.Choose(count, nil) {
//		{ strconv.Itoa(count) }
//		@templchoice.Choice("zero other") { ducks }
//		@templchoice.Choice("one") { duck }
//	}
package templchoice

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/choice/core/choice"
)

// Components builds selector components over one registry and logger.
type Components struct {
	selector *choice.Selector
}

// New creates Components. Attribute shortcut values are escaped with
// templ.EscapeString since they are written to the output as-is.
func New(opts ...choice.SelectorOption) *Components {
	opts = append([]choice.SelectorOption{choice.WithEscaper(templ.EscapeString)}, opts...)
	return &Components{selector: choice.NewSelector(opts...)}
}

// Choose renders its children selected by the keyword of value.
// value may be a choice.KeywordFunc.
func (c *Components) Choose(value any, opts choice.Options) templ.Component {
	return c.component(choice.From(value), opts)
}

// ChooseOpts is Choose without a positional value.
func (c *Components) ChooseOpts(opts choice.Options) templ.Component {
	return c.component(choice.Input{}, opts)
}

func (c *Components) component(in choice.Input, opts choice.Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		out, err := c.selector.Select(ctx, in, opts, children)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

// Choice renders its children when the enclosing selector's keyword is one of
// the labels in spec (a space-separated string or a string slice). An invalid
// spec fails the render.
func Choice(spec any) templ.Component {
	labels, err := choice.ParseLabels(spec)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err != nil {
			return err
		}
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		return choice.When(labels, children).Render(ctx, w)
	})
}

// With renders c with children as its { children... }, for composing
// components from plain Go code.
func With(c templ.Component, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.Render(templ.WithChildren(ctx, templ.Join(children...)), w)
	})
}

var defaultComponents = New()

// Choose renders children using the default registry.
func Choose(value any, opts choice.Options) templ.Component {
	return defaultComponents.Choose(value, opts)
}

// ChooseOpts renders children using the default registry, without a positional value.
func ChooseOpts(opts choice.Options) templ.Component {
	return defaultComponents.ChooseOpts(opts)
}
