package helpers

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attrs is an ordered list of name/value pairs. Odd trailing names are
// dropped.
type Attrs []string

// With returns a copy of a with more pairs appended.
func (a Attrs) With(pairs ...string) Attrs {
	out := make(Attrs, 0, len(a)+len(pairs))
	out = append(out, a...)
	return append(out, pairs...)
}

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true,
}

// El renders an element with escaped attributes around children.
func El(tag string, attrs Attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		for i := 0; i+1 < len(attrs); i += 2 {
			if _, err := io.WriteString(w, " "+attrs[i]+`="`+templ.EscapeString(attrs[i+1])+`"`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text renders escaped text.
func Text(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}

// Raw renders trusted markup verbatim.
func Raw(markup string) templ.Component {
	return templ.Raw(markup)
}

// Group renders components one after another.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Each renders fn for every item.
func Each[T any](items []T, fn func(T) templ.Component) templ.Component {
	children := make([]templ.Component, 0, len(items))
	for _, item := range items {
		children = append(children, fn(item))
	}
	return Group(children...)
}

// Icon renders a Font Awesome icon.
func Icon(class string) templ.Component {
	return El("i", Attrs{"class", "fas " + class})
}

// Label renders tag carrying a translation key with the text resolved from
// the context catalog as its initial content.
func Label(tag, key string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return El(tag, attrs.With("data-lang-key", key), Text(T(ctx, key))).Render(ctx, w)
	})
}

// HTMLLabel is Label for keys whose text carries markup.
func HTMLLabel(tag, key string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return El(tag, attrs.With("data-lang-key", key, "data-lang-html", "true"), Raw(T(ctx, key))).Render(ctx, w)
	})
}

// Placeholder renders an input whose placeholder is translated.
func Placeholder(tag, key string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return El(tag, attrs.With("data-lang-key", key, "placeholder", T(ctx, key))).Render(ctx, w)
	})
}

// Option renders a select option with a fixed value and translated label.
func Option(value, key string, selected bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		attrs := Attrs{"value", value, "data-lang-key", key}
		if selected {
			attrs = attrs.With("selected", "selected")
		}
		return El("option", attrs, Text(T(ctx, key))).Render(ctx, w)
	})
}

// Render writes component to a string.
func Render(ctx context.Context, component templ.Component) (string, error) {
	var b strings.Builder
	if err := component.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
