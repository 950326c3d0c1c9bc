package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiknow"
)

// extractNavboxes returns one entry per navbox table under container that
// has a title and at least one non-empty group.
func (x *Extractor) extractNavboxes(container *goquery.Selection, ex exclusion) []wikiknow.NavboxEntry {
	var entries []wikiknow.NavboxEntry

	ex.visible(findByClass(container, "table", "navbox")).Each(func(_ int, navbox *goquery.Selection) {
		title := x.navboxTitle(navbox, ex)
		if title == "" {
			return
		}

		var groups []wikiknow.NavboxGroup
		navbox.Find("tr").Each(func(_ int, row *goquery.Selection) {
			header := findByClass(row, "th", "navbox-group").First()
			list := findByClass(row, "td", "navbox-list").First()
			if header.Length() == 0 || list.Length() == 0 {
				return
			}

			items := x.navboxItems(list, ex)
			if len(items) == 0 {
				return
			}
			name := x.normalizer.Normalize(strings.TrimSpace(ex.text(header)))
			groups = append(groups, wikiknow.NavboxGroup{name: items})
		})

		if len(groups) > 0 {
			entries = append(entries, wikiknow.NavboxEntry{title: groups})
		}
	})

	return entries
}

// navboxTitle returns the normalized title of a navbox without its
// view/talk/edit navbar.
func (x *Extractor) navboxTitle(navbox *goquery.Selection, ex exclusion) string {
	cell := findByClass(navbox, "th", "navbox-title").First()
	if cell.Length() == 0 {
		return ""
	}

	title := strings.TrimSpace(ex.text(cell))
	if navbar := findByClass(cell, "", "navbar").First(); navbar.Length() > 0 {
		if bar := strings.TrimSpace(ex.text(navbar)); bar != "" {
			title = strings.TrimSpace(strings.ReplaceAll(title, bar, ""))
		}
	}
	if title == "" {
		return ""
	}
	return x.normalizer.Normalize(title)
}

// navboxItems returns the entity names linked from a navbox list cell,
// deduplicated by first occurrence.
func (x *Extractor) navboxItems(list *goquery.Selection, ex exclusion) []string {
	var names []string
	ex.internalLinks(list).Each(func(_ int, a *goquery.Selection) {
		name, _ := a.Attr("title")
		if name == "" {
			name = strings.TrimSpace(ex.text(a))
		}
		name = x.tables.StripMissingPage(name)
		if name == "" {
			return
		}
		names = append(names, x.normalizer.Normalize(name))
	})
	return wikiknow.Dedupe(names)
}
