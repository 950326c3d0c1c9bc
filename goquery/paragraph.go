package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiknow"
	"golang.org/x/net/html"
)

// blockKind classifies a direct child of a content container.
type blockKind int

const (
	blockIgnored blockKind = iota
	blockHeading
	blockText
	blockCode
)

// sectionState tracks where paragraph text is routed. An empty title
// means the abstract; suppressed drops everything until the next heading.
type sectionState struct {
	title      string
	suppressed bool
}

// onHeading returns the state after a non-empty heading. Every heading
// resets routing: ignored headings suppress the following content,
// any other heading opens a new section.
func (x *Extractor) onHeading(_ sectionState, heading string) sectionState {
	if x.tables.IsIgnoredSection(heading) {
		return sectionState{suppressed: true}
	}
	return sectionState{title: x.normalizer.Normalize(heading)}
}

// extractPassage segments the block children of container into the
// abstract and named sections and collects linked entities.
func (x *Extractor) extractPassage(container *goquery.Selection, ex exclusion) *wikiknow.PassageRecord {
	passage := wikiknow.NewPassageRecord()
	var state sectionState

	for _, root := range container.Nodes {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || ex.covers(c) {
				continue
			}

			node, kind := classifyBlock(c)
			switch kind {
			case blockIgnored:
				continue
			case blockHeading:
				heading := x.tables.StripEditMarkers(strings.Join(ex.textNodes(node, nil), ""))
				if heading == "" {
					continue
				}
				state = x.onHeading(state, heading)
				continue
			}

			if state.suppressed {
				continue
			}

			x.collectEntities(node, ex, passage.Entities)

			var segment string
			if kind == blockCode {
				segment = wikiknow.CodePrefix + strings.Join(ex.textNodes(node, nil), "")
			} else {
				segment = strings.Join(strings.Fields(x.blockText(node, ex)), " ")
			}
			if segment == "" {
				continue
			}

			if state.title == "" {
				passage.Abstract = append(passage.Abstract, segment)
			} else {
				passage.Sections.Append(state.title, segment)
			}
		}
	}

	return passage
}

// classifyBlock returns the node to process for a container child and how
// to process it. Heading wrappers unwrap to their inner h2 or h3.
func classifyBlock(n *html.Node) (*html.Node, blockKind) {
	switch n.Data {
	case "h2", "h3":
		return n, blockHeading
	case "p", "ul", "ol", "dl":
		return n, blockText
	case "pre":
		return n, blockCode
	case "div":
		class, _ := attr(n, "class")
		if !strings.Contains(class, "mw-heading") {
			return n, blockIgnored
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "h2" || c.Data == "h3") {
				return c, blockHeading
			}
		}
	}
	return n, blockIgnored
}

// blockText joins the text leaves and math expressions under n.
// Adjacent identical segments, left behind by duplicated accessibility
// markup, collapse to one.
func (x *Extractor) blockText(n *html.Node, ex exclusion) string {
	var segments []string
	push := func(s string) {
		if len(segments) > 0 && segments[len(segments)-1] == s {
			return
		}
		segments = append(segments, s)
	}

	ex.walk(n, nil, func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				push(x.normalizer.Normalize(text))
			}
		case n.Type == html.ElementNode && n.Data == "span" && hasClass(n, "mwe-math-element"):
			if latex := mathLatex(n, ex); latex != "" {
				push(wikiknow.LatexPrefix + latex)
			}
		}
	})

	return strings.TrimSpace(strings.Join(segments, " "))
}

// mathLatex returns the LaTeX source of a math container from the alt text
// of its fallback image.
func mathLatex(n *html.Node, ex exclusion) string {
	var alt string
	var found bool
	ex.walk(n, nil, func(n *html.Node) {
		if found || n.Type != html.ElementNode || n.Data != "img" {
			return
		}
		if !hasClass(n, "mwe-math-fallback-image-inline") && !hasClass(n, "mwe-math-fallback-image-display") {
			return
		}
		alt, found = attr(n, "alt")
	})
	return cleanLatex(alt)
}

// cleanLatex strips a leading \displaystyle marker, with its enclosing
// braces when present.
func cleanLatex(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `{\displaystyle `) && strings.HasSuffix(s, "}") {
		s = s[len(`{\displaystyle `) : len(s)-1]
	} else {
		s = strings.TrimPrefix(s, `\displaystyle `)
	}
	return strings.TrimSpace(s)
}

// collectEntities adds the title of every internal link under n.
func (x *Extractor) collectEntities(n *html.Node, ex exclusion, entities wikiknow.EntitySet) {
	sel := &goquery.Selection{Nodes: []*html.Node{n}}
	ex.internalLinks(sel).Each(func(_ int, a *goquery.Selection) {
		title, ok := a.Attr("title")
		if !ok || title == "" {
			return
		}
		if name := x.tables.StripMissingPage(title); name != "" {
			entities.Add(x.normalizer.Normalize(name))
		}
	})
}
