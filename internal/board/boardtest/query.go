package boardtest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func roleOf(sel *goquery.Selection) string {
	if role, ok := sel.Attr("role"); ok {
		return role
	}
	switch goquery.NodeName(sel) {
	case "button":
		return "button"
	case "a":
		if _, ok := sel.Attr("href"); ok {
			return "link"
		}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "heading"
	case "ul", "ol":
		return "list"
	case "li":
		return "listitem"
	case "input":
		switch sel.AttrOr("type", "text") {
		case "checkbox":
			return "checkbox"
		case "radio":
			return "radio"
		case "submit", "button":
			return "button"
		case "text", "search", "email", "url", "tel":
			return "textbox"
		}
	case "textarea":
		return "textbox"
	}
	return ""
}

func accessibleName(doc *goquery.Document, sel *goquery.Selection) string {
	if label, ok := sel.Attr("aria-label"); ok {
		return normalize(label)
	}
	if id, ok := sel.Attr("id"); ok && doc != nil {
		if label := doc.Find(`label[for="` + id + `"]`); label.Length() > 0 {
			return normalize(label.Text())
		}
	}
	if goquery.NodeName(sel) == "input" {
		return ""
	}
	return normalize(sel.Text())
}

// matchName compares accessible names case-insensitively. An empty want
// matches anything.
func matchName(got, want string) bool {
	return want == "" || strings.EqualFold(got, normalize(want))
}

func queryAllByRole(doc *goquery.Document, root *goquery.Selection, role, name string) []*goquery.Selection {
	var found []*goquery.Selection
	root.Find("*").Each(func(_ int, s *goquery.Selection) {
		if roleOf(s) == role && matchName(accessibleName(doc, s), name) {
			found = append(found, s)
		}
	})
	return found
}

// ownText joins the text nodes that are direct children of sel.
func ownText(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			b.WriteString(c.Text())
		}
	})
	return normalize(b.String())
}

func queryAllByText(root *goquery.Selection, text string) []*goquery.Selection {
	var found []*goquery.Selection
	want := normalize(text)
	root.Find("*").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "script", "style":
			return
		}
		if ownText(s) == want {
			found = append(found, s)
		}
	})
	return found
}
