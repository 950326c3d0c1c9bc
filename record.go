package wikiknow

import (
	"strings"
	"unicode/utf8"
)

// Header prefix lengths, in characters, of the raw record format.
const (
	titlePrefixLen     = 3
	categoryPrefixLen  = 3
	urlPrefixLen       = 5
	timestampPrefixLen = 5

	headerLines = 4
	bodyLine    = 5
)

// RawRecord is one archived article as read from a record file.
type RawRecord struct {
	Title      string
	Categories []string
	URL        string
	Timestamp  string
	Body       string
}

// ParseRawRecord parses the fixed-format record file contents:
//
//	line 0: <3-char prefix><title>
//	line 1: <3-char prefix><tab-separated categories>
//	line 2: <5-char prefix><url>
//	line 3: <5-char prefix><timestamp>
//	line 4: reserved
//	line 5+: HTML body
//
// Body newlines are flattened to spaces.
func ParseRawRecord(data string) (*RawRecord, error) {
	lines := strings.Split(data, "\n")
	if len(lines) < headerLines {
		return nil, Errorf(EFORMAT, "record has %d lines, want at least %d", len(lines), headerLines)
	}

	title, err := headerValue(lines[0], titlePrefixLen, "title")
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, Errorf(EFORMAT, "record title required")
	}
	categoryLine, err := headerValue(lines[1], categoryPrefixLen, "category")
	if err != nil {
		return nil, err
	}
	url, err := headerValue(lines[2], urlPrefixLen, "url")
	if err != nil {
		return nil, err
	}
	timestamp, err := headerValue(lines[3], timestampPrefixLen, "timestamp")
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, c := range strings.Split(categoryLine, "\t") {
		if c != "" {
			categories = append(categories, c)
		}
	}

	var body string
	if len(lines) > bodyLine {
		body = strings.Join(lines[bodyLine:], " ")
	}

	return &RawRecord{
		Title:      title,
		Categories: categories,
		URL:        url,
		Timestamp:  timestamp,
		Body:       body,
	}, nil
}

// headerValue strips the first n characters of a header line.
func headerValue(line string, n int, field string) (string, error) {
	line = strings.TrimSuffix(line, "\r")
	if utf8.RuneCountInString(line) < n {
		return "", Errorf(EFORMAT, "record %s line shorter than its %d-character prefix", field, n)
	}
	i := 0
	for range n {
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return line[i:], nil
}
