package wikiknow

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"slices"
	"strings"
)

// Segment prefixes for non-text passage segments.
const (
	LatexPrefix = "_latex_:"
	CodePrefix  = "_code_:"
)

// InfoboxSeparator joins differing values recorded under the same label.
const InfoboxSeparator = " | "

// InfoboxMap maps infobox labels to their values.
type InfoboxMap map[string]string

// Add records value under label following the additive merge policy:
// a value already present as a whole run of separated parts is not added
// again, any other value is appended with InfoboxSeparator.
// Empty labels and values are ignored.
func (m InfoboxMap) Add(label, value string) {
	if label == "" || value == "" {
		return
	}
	existing, ok := m[label]
	if !ok {
		m[label] = value
		return
	}
	if m.has(label, value) {
		return
	}
	m[label] = existing + InfoboxSeparator + value
}

// has reports whether value appears in the value of label, aligned on
// separator boundaries.
func (m InfoboxMap) has(label, value string) bool {
	existing, ok := m[label]
	if !ok {
		return false
	}
	return strings.Contains(InfoboxSeparator+existing+InfoboxSeparator, InfoboxSeparator+value+InfoboxSeparator)
}

// Merge adds every entry of o to m, in sorted label order so repeated
// merges of the same maps always produce the same values. A value of o
// already contained in m is skipped whole; otherwise its parts are added
// one by one.
func (m InfoboxMap) Merge(o InfoboxMap) {
	labels := make([]string, 0, len(o))
	for label := range o {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	for _, label := range labels {
		value := o[label]
		if value == "" || m.has(label, value) {
			continue
		}
		for _, part := range strings.Split(value, InfoboxSeparator) {
			m.Add(label, part)
		}
	}
}

// NavboxGroup maps a group name to the entities listed under it.
type NavboxGroup map[string][]string

// NavboxEntry maps a navbox title to its groups.
type NavboxEntry map[string][]NavboxGroup

// Sections maps a heading to the text segments that follow it.
type Sections map[string][]string

// Append adds segments under heading, creating the heading on first use.
func (s Sections) Append(heading string, segments ...string) {
	if heading == "" || len(segments) == 0 {
		return
	}
	s[heading] = append(s[heading], segments...)
}

// EntitySet is an unordered set of entity names.
// It serializes as a sorted list.
type EntitySet map[string]struct{}

// NewEntitySet returns a set holding names.
func NewEntitySet(names ...string) EntitySet {
	s := make(EntitySet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts name. Empty names are ignored.
func (s EntitySet) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s EntitySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Union adds every member of o to s.
func (s EntitySet) Union(o EntitySet) {
	for name := range o {
		s[name] = struct{}{}
	}
}

// Sorted returns the members in ascending order.
func (s EntitySet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MarshalJSON encodes the set as a sorted list.
func (s EntitySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a list into the set.
func (s *EntitySet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewEntitySet(names...)
	return nil
}

// GobEncode encodes the set as a sorted list.
func (s EntitySet) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s.Sorted()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode decodes a list into the set.
func (s *EntitySet) GobDecode(data []byte) error {
	var names []string
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&names); err != nil {
		return err
	}
	*s = NewEntitySet(names...)
	return nil
}

// PassageRecord holds the body text of an article.
type PassageRecord struct {
	// Abstract is the lead text before the first named section.
	Abstract []string `json:"abstract"`

	// Sections holds the text of each named section.
	Sections Sections `json:"sections"`

	// Entities are the link targets mentioned in the text.
	Entities EntitySet `json:"entities"`
}

// NewPassageRecord returns an empty passage ready for appending.
func NewPassageRecord() *PassageRecord {
	return &PassageRecord{
		Abstract: []string{},
		Sections: Sections{},
		Entities: EntitySet{},
	}
}

// Merge appends o's abstract and sections to p and unions the entities.
func (p *PassageRecord) Merge(o *PassageRecord) {
	if o == nil {
		return
	}
	p.Abstract = append(p.Abstract, o.Abstract...)
	for heading, segments := range o.Sections {
		p.Sections.Append(heading, segments...)
	}
	p.Entities.Union(o.Entities)
}

// Extraction is the result of extracting one document.
type Extraction struct {
	Infobox  InfoboxMap
	Navboxes []NavboxEntry
	Passage  *PassageRecord
}

// NewExtraction returns an empty extraction.
func NewExtraction() *Extraction {
	return &Extraction{
		Infobox:  InfoboxMap{},
		Navboxes: []NavboxEntry{},
		Passage:  NewPassageRecord(),
	}
}

// KnowledgeRecord is the knowledge extracted for one entity.
type KnowledgeRecord struct {
	Entity      string         `json:"entity"`
	Categories  []string       `json:"categories"`
	URL         string         `json:"url"`
	Timestamp   string         `json:"timestamp"`
	ContentHash string         `json:"contentHash"`
	Infobox     InfoboxMap     `json:"infobox"`
	Navboxes    []NavboxEntry  `json:"navboxes"`
	Passage     *PassageRecord `json:"passage"`
}

// Validate returns an error if the record contains invalid fields.
func (r *KnowledgeRecord) Validate() error {
	if r.Entity == "" {
		return Errorf(EINVALID, "record entity required")
	}
	if r.Passage == nil {
		return Errorf(EINVALID, "record %q passage required", r.Entity)
	}
	return nil
}

// FillEmpty replaces nil collections with empty ones. Decoders that
// omit empty values leave them nil.
func (r *KnowledgeRecord) FillEmpty() {
	if r.Categories == nil {
		r.Categories = []string{}
	}
	if r.Infobox == nil {
		r.Infobox = InfoboxMap{}
	}
	if r.Navboxes == nil {
		r.Navboxes = []NavboxEntry{}
	}
	if r.Passage == nil {
		r.Passage = NewPassageRecord()
	}
	if r.Passage.Abstract == nil {
		r.Passage.Abstract = []string{}
	}
	if r.Passage.Sections == nil {
		r.Passage.Sections = Sections{}
	}
	if r.Passage.Entities == nil {
		r.Passage.Entities = EntitySet{}
	}
}

// Dedupe removes repeated names, keeping the first occurrence of each
// in its original position.
func Dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
