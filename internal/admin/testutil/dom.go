package testutil

import (
	"bytes"
	"html"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"finitefield.org/dashpro-admin/internal/admin/page"
)

// ParseHTML parses a full console page response.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err, "parse html")
	return doc
}

// ParseFrame rebuilds the document a browser holds after applying frame,
// so page selectors work against event responses.
func ParseFrame(t testing.TB, frame page.Frame) *goquery.Document {
	t.Helper()

	var b strings.Builder
	b.WriteString(`<html lang="` + html.EscapeString(frame.Lang) + `"`)
	if frame.Style != "" {
		b.WriteString(` style="` + html.EscapeString(frame.Style) + `"`)
	}
	b.WriteString("><body>")
	b.WriteString(frame.Body)
	b.WriteString("</body></html>")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err, "parse frame")
	return doc
}
