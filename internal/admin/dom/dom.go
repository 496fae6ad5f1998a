// Package dom holds small helpers for editing live goquery documents.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ByID returns the element with id, or an empty selection.
func ByID(root *goquery.Selection, id string) *goquery.Selection {
	if id == "" {
		return root.Slice(0, 0)
	}
	return root.FindMatcher(idMatcher(id)).First()
}

type idMatcher string

func (m idMatcher) Match(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "id" && attr.Val == string(m) {
			return true
		}
	}
	return false
}

func (m idMatcher) MatchAll(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if m.Match(node) {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func (m idMatcher) Filter(nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if m.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

// Style returns the inline value of a CSS property.
func Style(sel *goquery.Selection, property string) string {
	for _, decl := range parseStyle(sel.AttrOr("style", "")) {
		if decl[0] == property {
			return decl[1]
		}
	}
	return ""
}

// SetStyle sets one inline CSS property, keeping the others in order.
func SetStyle(sel *goquery.Selection, property, value string) {
	sel.Each(func(_ int, el *goquery.Selection) {
		decls := parseStyle(el.AttrOr("style", ""))
		replaced := false
		for i := range decls {
			if decls[i][0] == property {
				decls[i][1] = value
				replaced = true
			}
		}
		if !replaced {
			decls = append(decls, [2]string{property, value})
		}
		parts := make([]string, len(decls))
		for i, d := range decls {
			parts[i] = d[0] + ": " + d[1]
		}
		el.SetAttr("style", strings.Join(parts, "; ")+";")
	})
}

func parseStyle(style string) [][2]string {
	var decls [][2]string
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		decls = append(decls, [2]string{name, strings.TrimSpace(value)})
	}
	return decls
}

// Value reads a form control's current value.
func Value(field *goquery.Selection) string {
	switch goquery.NodeName(field) {
	case "textarea":
		return field.Text()
	case "select":
		selected := field.Find("option[selected]").First()
		if selected.Length() == 0 {
			selected = field.Find("option").First()
		}
		if v, ok := selected.Attr("value"); ok {
			return v
		}
		return strings.TrimSpace(selected.Text())
	default:
		return field.AttrOr("value", "")
	}
}

// SetValue writes a form control's value.
func SetValue(field *goquery.Selection, value string) {
	switch goquery.NodeName(field) {
	case "textarea":
		field.SetText(value)
	case "select":
		field.Find("option").Each(func(_ int, opt *goquery.Selection) {
			v, ok := opt.Attr("value")
			if !ok {
				v = strings.TrimSpace(opt.Text())
			}
			if v == value {
				opt.SetAttr("selected", "selected")
			} else {
				opt.RemoveAttr("selected")
			}
		})
	default:
		field.SetAttr("value", value)
	}
}

// Contains reports whether target is container or one of its descendants.
func Contains(container, target *goquery.Selection) bool {
	if container.Length() == 0 || target.Length() == 0 {
		return false
	}
	node := target.Get(0)
	for _, root := range container.Nodes {
		for n := node; n != nil; n = n.Parent {
			if n == root {
				return true
			}
		}
	}
	return false
}

// Attached reports whether node is still part of a document.
func Attached(node *html.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n.Type == html.DocumentNode {
			return true
		}
	}
	return false
}
