package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// exclusion is a set of subtree roots treated as absent from the document.
// It replaces in-place node removal: the parsed tree is never mutated,
// walks skip every node under an excluded root instead.
type exclusion map[*html.Node]struct{}

// add excludes every node of sel and its descendants.
func (e exclusion) add(sel *goquery.Selection) {
	for _, n := range sel.Nodes {
		e[n] = struct{}{}
	}
}

// covers reports whether n is an excluded root or lies beneath one.
// script and style elements are always excluded.
func (e exclusion) covers(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if isScriptOrStyle(n) {
			return true
		}
		if _, ok := e[n]; ok {
			return true
		}
	}
	return false
}

// skip reports whether a walk should not descend into n.
func (e exclusion) skip(n *html.Node) bool {
	if n.Type == html.CommentNode || isScriptOrStyle(n) {
		return true
	}
	_, ok := e[n]
	return ok
}

// visible filters sel down to nodes not covered by the exclusion.
func (e exclusion) visible(sel *goquery.Selection) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return !e.covers(s.Nodes[0])
	})
}

func isScriptOrStyle(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style")
}

// walk visits n and its descendants in document order, skipping excluded
// subtrees, comments, and subtrees for which prune returns true.
func (e exclusion) walk(n *html.Node, prune func(*html.Node) bool, visit func(*html.Node)) {
	if e.skip(n) || (prune != nil && prune(n)) {
		return
	}
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.walk(c, prune, visit)
	}
}

// textNodes returns the raw text node values under n in document order.
func (e exclusion) textNodes(n *html.Node, prune func(*html.Node) bool) []string {
	var texts []string
	e.walk(n, prune, func(n *html.Node) {
		if n.Type == html.TextNode {
			texts = append(texts, n.Data)
		}
	})
	return texts
}

// text concatenates the text under sel's first node.
func (e exclusion) text(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return strings.Join(e.textNodes(sel.Nodes[0], nil), "")
}

// classContains reports whether the class attribute of sel contains sub
// as a substring, the way XPath contains(@class, sub) does.
func classContains(sel *goquery.Selection, sub string) bool {
	class, ok := sel.Attr("class")
	return ok && strings.Contains(class, sub)
}

// hasClass reports whether n has class as one of its class tokens.
func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

// attr returns the value of attribute key on n.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// findByClass returns descendants of sel with the given tag (any tag when
// empty) whose class contains sub.
func findByClass(sel *goquery.Selection, tag, sub string) *goquery.Selection {
	if tag == "" {
		tag = "*"
	}
	return sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return classContains(s, sub)
	})
}

// internalLinks returns the anchors under sel that are not external links
// and not excluded.
func (e exclusion) internalLinks(sel *goquery.Selection) *goquery.Selection {
	return e.visible(sel.Find("a").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return !classContains(s, "external")
	}))
}
