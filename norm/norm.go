// Package norm implements the script normalizer using golang.org/x/text.
package norm

import (
	"slices"
	"strings"

	"github.com/fwojciec/wikiknow"
	"golang.org/x/text/unicode/norm"
)

// Ensure Normalizer implements wikiknow.Normalizer at compile time.
var _ wikiknow.Normalizer = (*Normalizer)(nil)

// Form names a Unicode normalization form.
type Form string

// Supported normalization forms.
const (
	FormNFC  Form = "nfc"
	FormNFKC Form = "nfkc"
	FormNone Form = "none"
)

// ParseForm returns the Form named by s. An empty name selects NFC.
func ParseForm(s string) (Form, error) {
	switch f := Form(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormNFC, nil
	case FormNFC, FormNFKC, FormNone:
		return f, nil
	default:
		return "", wikiknow.Errorf(wikiknow.EINVALID, "unknown normalization form %q", s)
	}
}

// Normalizer applies a character mapping followed by Unicode normalization.
type Normalizer struct {
	replacer *strings.Replacer
	form     Form
}

// NewNormalizer creates a Normalizer for form. Each key of mapping is
// replaced by its value before normalization; longer keys take precedence
// over their prefixes.
func NewNormalizer(form Form, mapping map[string]string) *Normalizer {
	n := &Normalizer{form: form}
	if len(mapping) == 0 {
		return n
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		if k != "" {
			keys = append(keys, k)
		}
	}
	// strings.Replacer tries old strings in argument order.
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, mapping[k])
	}
	if len(pairs) > 0 {
		n.replacer = strings.NewReplacer(pairs...)
	}
	return n
}

// Normalize returns s mapped and normalized.
func (n *Normalizer) Normalize(s string) string {
	if n.replacer != nil {
		s = n.replacer.Replace(s)
	}
	switch n.form {
	case FormNFKC:
		return norm.NFKC.String(s)
	case FormNone:
		return s
	default:
		return norm.NFC.String(s)
	}
}
