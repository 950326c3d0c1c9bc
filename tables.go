package wikiknow

import "strings"

// Tables holds the fixed denylists and markers used across extraction.
// A Tables value is built once per process and passed to the components
// that need it; components never modify it.
type Tables struct {
	// FilterTerms skip an entity when found in its title or a category.
	FilterTerms []string `yaml:"filter_terms"`

	// IgnoredSections suppress a heading and everything up to the next
	// heading when any of them is a substring of the heading text.
	IgnoredSections []string `yaml:"ignored_sections"`

	// NoiseClasses are class substrings pruned from content containers
	// before paragraph extraction.
	NoiseClasses []string `yaml:"noise_classes"`

	// EditMarkers are removed from heading and infobox label text.
	EditMarkers []string `yaml:"edit_markers"`

	// MissingPageSuffixes mark links to articles that do not exist yet.
	MissingPageSuffixes []string `yaml:"missing_page_suffixes"`

	// ScriptMapping maps script variants (e.g. traditional characters) to
	// their preferred form before Unicode normalization.
	ScriptMapping map[string]string `yaml:"script_mapping"`
}

// DefaultTables returns the built-in configuration tables.
func DefaultTables() Tables {
	return Tables{
		FilterTerms: []string{
			"游戏", "%E6%B8%B8%E6%88%8F",
			"维基", "%E7%BB%B4%E5%9F%BA",
			"幻想", "我的世界", "魔兽",
		},
		IgnoredSections: []string{
			"参考文献", "外部链接", "参见", "注释", "参考资料",
			"相关条目", "扩展阅读", "资料来源", "外部连结", "外部连线",
			"參考文獻", "外部鏈接", "外部連結", "外部連線", "參見", "註釋", "注釋",
			"參考資料", "相關條目", "延伸閱讀", "擴展閱讀", "資料來源",
			"References", "External links", "See also", "Notes",
			"Sources", "Further reading",
		},
		NoiseClasses: []string{
			"reflist", "navbox", "infobox", "reference", "mw-editsection",
			"noprint", "metadata", "hatnote", "sidebar", "stub", "alert",
			"sistersitebox", "portal", "authcontrol-content", "nmbox", "navbox-styles",
		},
		EditMarkers: []string{"[编辑]", "[編輯]", "[edit]"},
		MissingPageSuffixes: []string{
			"（页面不存在）", "(页面不存在)",
			"（頁面不存在）", "(頁面不存在)",
		},
	}
}

// Merge returns t with every non-empty field of o replacing the
// corresponding field of t.
func (t Tables) Merge(o Tables) Tables {
	if len(o.FilterTerms) > 0 {
		t.FilterTerms = o.FilterTerms
	}
	if len(o.IgnoredSections) > 0 {
		t.IgnoredSections = o.IgnoredSections
	}
	if len(o.NoiseClasses) > 0 {
		t.NoiseClasses = o.NoiseClasses
	}
	if len(o.EditMarkers) > 0 {
		t.EditMarkers = o.EditMarkers
	}
	if len(o.MissingPageSuffixes) > 0 {
		t.MissingPageSuffixes = o.MissingPageSuffixes
	}
	if len(o.ScriptMapping) > 0 {
		t.ScriptMapping = o.ScriptMapping
	}
	return t
}

// StripEditMarkers removes every edit marker from s and trims the result.
func (t Tables) StripEditMarkers(s string) string {
	for _, marker := range t.EditMarkers {
		if marker != "" {
			s = strings.ReplaceAll(s, marker, "")
		}
	}
	return strings.TrimSpace(s)
}

// StripMissingPage removes every missing-page suffix from an entity name
// and trims the result.
func (t Tables) StripMissingPage(name string) string {
	for _, suffix := range t.MissingPageSuffixes {
		if suffix != "" {
			name = strings.ReplaceAll(name, suffix, "")
		}
	}
	return strings.TrimSpace(name)
}

// IsIgnoredSection reports whether heading names a section whose content
// is not knowledge (references, external links, ...).
func (t Tables) IsIgnoredSection(heading string) bool {
	for _, name := range t.IgnoredSections {
		if name != "" && strings.Contains(heading, name) {
			return true
		}
	}
	return false
}
