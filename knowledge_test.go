package wikiknow_test

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/wikiknow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoboxMap_Add(t *testing.T) {
	t.Parallel()

	t.Run("does not duplicate identical values", func(t *testing.T) {
		t.Parallel()

		m := wikiknow.InfoboxMap{}
		m.Add("Born", "1990")
		m.Add("Born", "1990")

		assert.Equal(t, wikiknow.InfoboxMap{"Born": "1990"}, m)
	})

	t.Run("appends differing values with separator", func(t *testing.T) {
		t.Parallel()

		m := wikiknow.InfoboxMap{}
		m.Add("Born", "v1")
		m.Add("Born", "v2")
		m.Add("Born", "v1")

		assert.Equal(t, "v1 | v2", m["Born"])
	})

	t.Run("appends values that only share a substring", func(t *testing.T) {
		t.Parallel()

		m := wikiknow.InfoboxMap{}
		m.Add("Born", "1990")
		m.Add("Born", "90")

		assert.Equal(t, "1990 | 90", m["Born"])
	})

	t.Run("does not duplicate identical values containing the separator", func(t *testing.T) {
		t.Parallel()

		m := wikiknow.InfoboxMap{}
		m.Add("Genre", "Rock | Pop")
		m.Add("Genre", "Rock | Pop")

		assert.Equal(t, "Rock | Pop", m["Genre"])
	})

	t.Run("does not duplicate a single part of an earlier value", func(t *testing.T) {
		t.Parallel()

		m := wikiknow.InfoboxMap{}
		m.Add("Genre", "Rock | Pop")
		m.Add("Genre", "Pop")

		assert.Equal(t, "Rock | Pop", m["Genre"])
	})

	t.Run("ignores empty labels and values", func(t *testing.T) {
		t.Parallel()

		m := wikiknow.InfoboxMap{}
		m.Add("", "1990")
		m.Add("Born", "")

		assert.Empty(t, m)
	})

	t.Run("grows without bound for many distinct values", func(t *testing.T) {
		t.Parallel()

		m := wikiknow.InfoboxMap{}
		for _, v := range []string{"a", "b", "c", "d", "e"} {
			m.Add("Label", v)
		}

		assert.Equal(t, "a | b | c | d | e", m["Label"])
		assert.Equal(t, 4, strings.Count(m["Label"], wikiknow.InfoboxSeparator))
	})
}

func TestInfoboxMap_Merge(t *testing.T) {
	t.Parallel()

	m := wikiknow.InfoboxMap{"Born": "1990", "Name": "A"}
	m.Merge(wikiknow.InfoboxMap{"Born": "1990 | 1991", "Died": "2020"})

	assert.Equal(t, wikiknow.InfoboxMap{
		"Born": "1990 | 1991",
		"Name": "A",
		"Died": "2020",
	}, m)
}

func TestInfoboxMap_MergeIsIdempotent(t *testing.T) {
	t.Parallel()

	o := wikiknow.InfoboxMap{"Genre": "Rock | Pop", "Born": "1990"}
	m := wikiknow.InfoboxMap{"Genre": "Jazz"}
	m.Merge(o)
	m.Merge(o)

	assert.Equal(t, wikiknow.InfoboxMap{"Genre": "Jazz | Rock | Pop", "Born": "1990"}, m)
}

func TestPassageRecord_Merge(t *testing.T) {
	t.Parallel()

	p := wikiknow.NewPassageRecord()
	p.Abstract = []string{"a"}
	p.Sections.Append("History", "h1")
	p.Entities.Add("X")

	o := wikiknow.NewPassageRecord()
	o.Abstract = []string{"b"}
	o.Sections.Append("History", "h2")
	o.Sections.Append("Usage", "u1")
	o.Entities.Add("X")
	o.Entities.Add("Y")

	p.Merge(o)

	assert.Equal(t, []string{"a", "b"}, p.Abstract)
	assert.Equal(t, wikiknow.Sections{"History": {"h1", "h2"}, "Usage": {"u1"}}, p.Sections)
	assert.Equal(t, []string{"X", "Y"}, p.Entities.Sorted())
}

func TestSections_Append(t *testing.T) {
	t.Parallel()

	s := wikiknow.Sections{}
	s.Append("", "ignored")
	s.Append("Heading")

	assert.Empty(t, s)
}

func TestEntitySet(t *testing.T) {
	t.Parallel()

	t.Run("collapses duplicates and ignores empty names", func(t *testing.T) {
		t.Parallel()

		s := wikiknow.NewEntitySet("B", "A", "B", "")

		assert.Len(t, s, 2)
		assert.True(t, s.Has("A"))
		assert.False(t, s.Has(""))
		assert.Equal(t, []string{"A", "B"}, s.Sorted())
	})

	t.Run("marshals JSON as a sorted list", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(wikiknow.NewEntitySet("世界", "Hello"))
		require.NoError(t, err)
		assert.JSONEq(t, `["Hello", "世界"]`, string(data))

		var decoded wikiknow.EntitySet
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, wikiknow.NewEntitySet("世界", "Hello"), decoded)
	})

	t.Run("survives a gob round trip", func(t *testing.T) {
		t.Parallel()

		in := wikiknow.NewPassageRecord()
		in.Abstract = []string{"text"}
		in.Entities.Add("A")
		in.Entities.Add("B")

		var buf bytes.Buffer
		require.NoError(t, gob.NewEncoder(&buf).Encode(in))

		var out wikiknow.PassageRecord
		require.NoError(t, gob.NewDecoder(&buf).Decode(&out))
		assert.Equal(t, in.Entities, out.Entities)
	})
}

func TestKnowledgeRecord_Validate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wikiknow.EINVALID, wikiknow.ErrorCode((&wikiknow.KnowledgeRecord{}).Validate()))
	assert.Equal(t, wikiknow.EINVALID, wikiknow.ErrorCode((&wikiknow.KnowledgeRecord{Entity: "A"}).Validate()))
	assert.NoError(t, (&wikiknow.KnowledgeRecord{Entity: "A", Passage: wikiknow.NewPassageRecord()}).Validate())
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"A", "B", "C"}, wikiknow.Dedupe([]string{"A", "B", "A", "C"}))
	assert.Empty(t, wikiknow.Dedupe(nil))
}

func TestKnowledgeRecord_FillEmpty(t *testing.T) {
	t.Parallel()

	rec := &wikiknow.KnowledgeRecord{Entity: "A", Passage: &wikiknow.PassageRecord{Abstract: []string{"kept"}}}
	rec.FillEmpty()

	assert.Equal(t, []string{}, rec.Categories)
	assert.Equal(t, wikiknow.InfoboxMap{}, rec.Infobox)
	assert.Equal(t, []wikiknow.NavboxEntry{}, rec.Navboxes)
	assert.Equal(t, []string{"kept"}, rec.Passage.Abstract)
	assert.Equal(t, wikiknow.Sections{}, rec.Passage.Sections)
	assert.Equal(t, wikiknow.EntitySet{}, rec.Passage.Entities)
}
