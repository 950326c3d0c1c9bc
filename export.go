package wikiknow

import (
	"bytes"
	"encoding/json"
	"io"
)

const exportIndent = "    "

// ExportJSON writes the first limit records (all of them when limit <= 0)
// to w as indented UTF-8 JSON. Entity sets are written as sorted lists.
func ExportJSON(w io.Writer, records []*KnowledgeRecord, limit int) error {
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	if records == nil {
		records = []*KnowledgeRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", exportIndent)
	return enc.Encode(records)
}

// FormatRecord renders one record as indented JSON for manual inspection.
func FormatRecord(rec *KnowledgeRecord) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", exportIndent)
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return buf.String(), nil
}
