package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiknow"
	"golang.org/x/net/html"
)

// extractInfobox collects label/value rows from every infobox or sidebar
// table under container into m.
func (x *Extractor) extractInfobox(container *goquery.Selection, ex exclusion, m wikiknow.InfoboxMap) {
	tables := ex.visible(container.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return classContains(s, "infobox") || classContains(s, "sidebar")
	}))

	tables.Each(func(_ int, table *goquery.Selection) {
		for _, row := range tableRows(table.Nodes[0]) {
			label, value := x.infoboxRow(row, ex)
			if label == "" || value == "" {
				continue
			}
			m.Add(x.normalizer.Normalize(label), x.normalizer.Normalize(value))
		}
	})
}

// infoboxRow returns the label and value of one row. Rows without a
// header cell have no label.
func (x *Extractor) infoboxRow(row *html.Node, ex exclusion) (label, value string) {
	var headers, cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "th":
			headers = append(headers, c)
		case "td":
			cells = append(cells, c)
		}
	}
	if len(headers) == 0 {
		return "", ""
	}

	labels := make([]string, 0, len(headers))
	for _, th := range headers {
		labels = append(labels, strings.TrimSpace(strings.Join(ex.textNodes(th, nil), "")))
	}
	label = x.tables.StripEditMarkers(strings.Join(labels, " "))
	if label == "" {
		return "", ""
	}

	var values []string
	for _, td := range cells {
		// Footnote markers would otherwise leak numerals into the value.
		text := strings.TrimSpace(strings.Join(ex.textNodes(td, isReference), " "))
		if text != "" {
			values = append(values, text)
		}
	}
	return label, strings.TrimSpace(strings.Join(values, " "))
}

// tableRows returns the rows of table from its tbody children or, when the
// markup has no tbody, its direct tr children, in document order.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "tr":
			rows = append(rows, c)
		case "tbody":
			for r := c.FirstChild; r != nil; r = r.NextSibling {
				if r.Type == html.ElementNode && r.Data == "tr" {
					rows = append(rows, r)
				}
			}
		}
	}
	return rows
}

func isReference(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	class, _ := attr(n, "class")
	return strings.Contains(class, "reference")
}
