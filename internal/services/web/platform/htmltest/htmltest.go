// Package htmltest parses rendered pages for handler tests.
package htmltest

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Parse parses body as an HTML document or fragment.
func Parse(t testing.TB, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// FindAll returns the elements under root accepted by match, in document order.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// ByID returns the element with id, or nil.
func ByID(root *html.Node, id string) *html.Node {
	found := FindAll(root, func(n *html.Node) bool { return Attr(n, "id") == id })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// ByClass returns the elements carrying class.
func ByClass(root *html.Node, class string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool { return HasClass(n, class) })
}

// ByTag returns the elements named tag.
func ByTag(root *html.Node, tag string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool { return n.Data == tag })
}

// Attr returns the value of key on n.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries key.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// HasClass reports whether the class attribute of n lists class.
func HasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(Attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

// Text returns the trimmed text content of n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
