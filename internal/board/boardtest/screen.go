// Package boardtest drives a rendered board the way a user would: it queries
// the page by role and text and dispatches typing and clicks.
package boardtest

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cleitonmarx/todolists/internal/board"
	"github.com/stretchr/testify/require"
)

const (
	defaultTimeout  = 2 * time.Second
	defaultInterval = 10 * time.Millisecond
)

// App is a renderable page that accepts user events.
type App interface {
	Render() string
	Dispatch(e board.Event) error
}

// Screen queries the current render of an App.
type Screen struct {
	t        testing.TB
	app      App
	Timeout  time.Duration
	Interval time.Duration
}

// NewScreen returns a Screen over app.
func NewScreen(t testing.TB, app App) *Screen {
	return &Screen{t: t, app: app, Timeout: defaultTimeout, Interval: defaultInterval}
}

// document parses a fresh render. It never fails the test so it can be used
// from polling conditions.
func (s *Screen) document() (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(s.app.Render()))
}

func (s *Screen) mustDocument() *goquery.Document {
	s.t.Helper()
	doc, err := s.document()
	require.NoError(s.t, err, "parse render")
	return doc
}

func (s *Screen) queryAllByRole(role, name string) (*goquery.Document, []*goquery.Selection) {
	doc, err := s.document()
	if err != nil {
		return nil, nil
	}
	return doc, queryAllByRole(doc, doc.Find("body"), role, name)
}

func (s *Screen) queryAllByText(text string) (*goquery.Document, []*goquery.Selection) {
	doc, err := s.document()
	if err != nil {
		return nil, nil
	}
	return doc, queryAllByText(doc.Find("body"), text)
}

func (s *Screen) elements(doc *goquery.Document, found []*goquery.Selection) []Element {
	elements := make([]Element, 0, len(found))
	for _, sel := range found {
		elements = append(elements, Element{t: s.t, doc: doc, sel: sel})
	}
	return elements
}

// GetByRole returns the only element with role and accessible name.
func (s *Screen) GetByRole(role, name string) Element {
	s.t.Helper()
	doc := s.mustDocument()
	return single(s.t, doc, queryAllByRole(doc, doc.Find("body"), role, name), describeRole(role, name))
}

// GetAllByRole returns every element with role and accessible name, failing
// when there is none.
func (s *Screen) GetAllByRole(role, name string) []Element {
	s.t.Helper()
	found := s.QueryAllByRole(role, name)
	if len(found) == 0 {
		s.t.Fatalf("unable to find an element with %s", describeRole(role, name))
	}
	return found
}

// QueryAllByRole returns every element with role and accessible name.
func (s *Screen) QueryAllByRole(role, name string) []Element {
	s.t.Helper()
	doc := s.mustDocument()
	return s.elements(doc, queryAllByRole(doc, doc.Find("body"), role, name))
}

// GetByText returns the only element whose own text is text.
func (s *Screen) GetByText(text string) Element {
	s.t.Helper()
	doc := s.mustDocument()
	return single(s.t, doc, queryAllByText(doc.Find("body"), text), "text "+text)
}

// QueryByText returns the element whose own text is text, if any. More than
// one match fails the test.
func (s *Screen) QueryByText(text string) (Element, bool) {
	s.t.Helper()
	doc := s.mustDocument()
	found := queryAllByText(doc.Find("body"), text)
	switch len(found) {
	case 0:
		return Element{}, false
	case 1:
		return Element{t: s.t, doc: doc, sel: found[0]}, true
	}
	s.t.Fatalf("found %d elements with text %s", len(found), text)
	return Element{}, false
}

// QueryAllByText returns every element whose own text is text.
func (s *Screen) QueryAllByText(text string) []Element {
	s.t.Helper()
	doc := s.mustDocument()
	return s.elements(doc, queryAllByText(doc.Find("body"), text))
}

// FindByText waits until exactly one element has text as its own text.
func (s *Screen) FindByText(text string) Element {
	s.t.Helper()
	s.WaitFor(func() bool {
		_, found := s.queryAllByText(text)
		return len(found) == 1
	}, "find text %q", text)
	return s.GetByText(text)
}

// FindByRole waits until exactly one element has role and name.
func (s *Screen) FindByRole(role, name string) Element {
	s.t.Helper()
	s.WaitFor(func() bool {
		_, found := s.queryAllByRole(role, name)
		return len(found) == 1
	}, "find %s", describeRole(role, name))
	return s.GetByRole(role, name)
}

// WaitForElementToBeRemoved waits until no element has text as its own text.
func (s *Screen) WaitForElementToBeRemoved(text string) {
	s.t.Helper()
	s.WaitFor(func() bool {
		_, found := s.queryAllByText(text)
		return len(found) == 0
	}, "remove text %q", text)
}

// WaitFor polls cond until it holds. cond runs outside the test goroutine and
// must not fail the test itself.
func (s *Screen) WaitFor(cond func() bool, msgAndArgs ...any) {
	s.t.Helper()
	require.Eventually(s.t, cond, s.Timeout, s.Interval, msgAndArgs...)
}

// Count returns how many elements have role and name, without failing.
func (s *Screen) Count(role, name string) int {
	_, found := s.queryAllByRole(role, name)
	return len(found)
}

// Checked reports whether the only checkbox named name is checked, without
// failing.
func (s *Screen) Checked(name string) (checked, ok bool) {
	_, found := s.queryAllByRole("checkbox", name)
	if len(found) != 1 {
		return false, false
	}
	_, checked = found[0].Attr("checked")
	return checked, true
}
