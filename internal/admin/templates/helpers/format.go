package helpers

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// NavClass returns sidebar link classes.
func NavClass(active bool) string {
	if active {
		return "nav-link active"
	}
	return "nav-link"
}

// TrendClass maps a KPI trend to the card delta class.
func TrendClass(trend string) string {
	switch trend {
	case "up":
		return "card-trend positive"
	case "down":
		return "card-trend negative"
	default:
		return "card-trend neutral"
	}
}

// TrendIcon maps a KPI trend to its arrow icon.
func TrendIcon(trend string) string {
	switch trend {
	case "up":
		return "fa-arrow-up"
	case "down":
		return "fa-arrow-down"
	default:
		return "fa-minus"
	}
}

// Slug lowercases value and drops spaces and ampersands, matching the
// data-category attribute of description rows.
func Slug(value string) string {
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, " & ", "")
	return strings.ReplaceAll(value, " ", "")
}

// TextComponent returns a templ component that renders plain text.
func TextComponent(value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}
