package boardtest

import (
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

var spaces = regexp.MustCompile(`\s+`)

func normalize(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

// Element is one node of a rendered page. It is a snapshot: later renders
// are not reflected.
type Element struct {
	t   testing.TB
	doc *goquery.Document
	sel *goquery.Selection
}

// Role returns the implicit or explicit ARIA role of the element.
func (e Element) Role() string {
	return roleOf(e.sel)
}

// Name returns the accessible name of the element.
func (e Element) Name() string {
	return accessibleName(e.doc, e.sel)
}

// Text returns the normalized text content of the element.
func (e Element) Text() string {
	return normalize(e.sel.Text())
}

// Attr returns the value of an attribute.
func (e Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Value returns the value attribute of an input.
func (e Element) Value() string {
	return e.sel.AttrOr("value", "")
}

// Disabled reports whether the element carries the disabled attribute.
func (e Element) Disabled() bool {
	_, ok := e.sel.Attr("disabled")
	return ok
}

// ReadOnly reports whether the element carries the readonly attribute.
func (e Element) ReadOnly() bool {
	_, ok := e.sel.Attr("readonly")
	return ok
}

// Checked reports whether a checkbox is checked.
func (e Element) Checked() bool {
	_, ok := e.sel.Attr("checked")
	return ok
}

// Closest returns the nearest ancestor, or the element itself, matching selector.
func (e Element) Closest(selector string) Element {
	e.t.Helper()
	found := e.sel.Closest(selector)
	if found.Length() == 0 {
		e.t.Fatalf("no ancestor matching %q", selector)
	}
	return Element{t: e.t, doc: e.doc, sel: found.First()}
}

// Find returns the first descendant matching a CSS selector.
func (e Element) Find(selector string) Element {
	e.t.Helper()
	found := e.sel.Find(selector)
	if found.Length() == 0 {
		e.t.Fatalf("no descendant matching %q", selector)
	}
	return Element{t: e.t, doc: e.doc, sel: found.First()}
}

// GetByRole returns the single descendant with the given role and name.
func (e Element) GetByRole(role, name string) Element {
	e.t.Helper()
	return single(e.t, e.doc, queryAllByRole(e.doc, e.sel, role, name), describeRole(role, name))
}

func single(t testing.TB, doc *goquery.Document, found []*goquery.Selection, what string) Element {
	t.Helper()
	switch len(found) {
	case 0:
		t.Fatalf("unable to find an element with %s", what)
	case 1:
	default:
		t.Fatalf("found %d elements with %s", len(found), what)
	}
	return Element{t: t, doc: doc, sel: found[0]}
}

func describeRole(role, name string) string {
	if name == "" {
		return "role " + role
	}
	return "role " + role + " and name " + name
}
