package page

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"finitefield.org/dashpro-admin/internal/admin/dom"
)

// Event types posted by the browser.
const (
	EventClick  = "click"
	EventSubmit = "submit"
	EventInput  = "input"
	EventChange = "change"
)

var (
	// ErrUnknownEventType is returned for event types the page does not handle.
	ErrUnknownEventType = errors.New("page: unknown event type")
	// ErrTargetNotFound is returned when an event path does not resolve.
	ErrTargetNotFound = errors.New("page: event target not found")
)

// Event is one browser event replayed against the live document.
type Event struct {
	Type string `json:"type"`
	// Target is the element path from <body>: element child indexes joined
	// by "/". The empty path is <body> itself.
	Target string `json:"target"`
	// Values carries form control values keyed by element id.
	Values map[string]string `json:"values,omitempty"`
	// Viewport is the browser's inner width in CSS pixels.
	Viewport int `json:"viewport,omitempty"`
	// Confirmed answers a prompt returned by the previous dispatch of the
	// same event.
	Confirmed *bool `json:"confirmed,omitempty"`
}

// Validate checks the event type.
func (e Event) Validate() error {
	switch e.Type {
	case EventClick, EventSubmit, EventInput, EventChange:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, e.Type)
	}
}

// Result reports what the browser must do after applying the new document.
type Result struct {
	// Prompt asks the user to confirm; the event is re-posted with the answer.
	Prompt string `json:"prompt,omitempty"`
	// Download is the id of a file to fetch from the downloads route.
	Download string `json:"download,omitempty"`
}

// prompter answers confirmations from the event, or records the question
// for the browser when the event carries no answer yet.
type prompter struct {
	ev     *Event
	result *Result
}

func (p prompter) Confirm(message string) bool {
	if p.ev.Confirmed != nil {
		return *p.ev.Confirmed
	}
	p.result.Prompt = message
	return false
}

// resolveTarget walks path from the document body.
func resolveTarget(doc *goquery.Document, path string) (*goquery.Selection, error) {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, ErrTargetNotFound
	}
	node := body.Get(0)
	path = strings.Trim(path, "/")
	if path == "" {
		return body, nil
	}
	for _, part := range strings.Split(path, "/") {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("%w: bad segment %q", ErrTargetNotFound, part)
		}
		node = elementChild(node, idx)
		if node == nil {
			return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, path)
		}
	}
	return doc.FindNodes(node), nil
}

func elementChild(n *html.Node, idx int) *html.Node {
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if i == idx {
			return c
		}
		i++
	}
	return nil
}

// applyValues copies submitted control values into the live document.
func applyValues(doc *goquery.Document, values map[string]string) {
	for id, value := range values {
		field := dom.ByID(doc.Selection, id)
		if field.Length() == 0 {
			continue
		}
		if goquery.NodeName(field) == "input" && field.AttrOr("type", "") == "checkbox" {
			if value == "true" || value == "on" {
				field.SetAttr("checked", "checked")
			} else {
				field.RemoveAttr("checked")
			}
			continue
		}
		dom.SetValue(field, value)
	}
}

// TargetPath builds the event path of sel's first element, the inverse of
// the lookup Dispatch performs. It returns false for nodes outside <body>.
func TargetPath(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	var parts []string
	for n := sel.Get(0); n != nil; n = n.Parent {
		if n.Type == html.ElementNode && n.Data == "body" {
			for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
				parts[i], parts[j] = parts[j], parts[i]
			}
			return strings.Join(parts, "/"), true
		}
		if n.Parent == nil {
			break
		}
		idx := 0
		for c := n.Parent.FirstChild; c != nil && c != n; c = c.NextSibling {
			if c.Type == html.ElementNode {
				idx++
			}
		}
		parts = append(parts, strconv.Itoa(idx))
	}
	return "", false
}
