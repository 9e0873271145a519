// Package issue extracts issue references from free text and resolves them to URLs.
package issue

import (
	"regexp"
	"strconv"
)

// referencePattern matches a '#' that starts the text or follows a non-word
// character, and captures the digit run after it. The word class mirrors
// letters, nonspacing marks, decimal digits and connector punctuation.
var referencePattern = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{Mn}\p{Nd}\p{Pc}])#([0-9]+)`)

// Reference is the numeric identifier of an issue, as written after '#'.
type Reference uint64

// String returns the decimal form of the reference.
func (r Reference) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

// Extract returns the first issue reference found in text.
// The boolean is false when the text holds no reference.
func Extract(text string) (Reference, bool) {
	refs := scan(text, 1)
	if len(refs) == 0 {
		return 0, false
	}
	return refs[0], true
}

// ExtractAll returns every issue reference found in text, in document order.
func ExtractAll(text string) []Reference {
	return scan(text, -1)
}

// Resolve appends the decimal form of ref to base.
// base is not validated here; callers check the result before opening it.
func Resolve(base string, ref Reference) string {
	return base + ref.String()
}

// scan collects up to limit references (all of them when limit < 0).
func scan(text string, limit int) []Reference {
	if text == "" {
		return nil
	}

	var refs []Reference
	for _, loc := range referencePattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]

		// "&#39;" style entities are not references
		if end < len(text) && text[end] == ';' {
			continue
		}

		n, err := strconv.ParseUint(text[start:end], 10, 64)
		if err != nil {
			// Out of range for uint64
			continue
		}

		refs = append(refs, Reference(n))
		if limit > 0 && len(refs) == limit {
			break
		}
	}

	return refs
}
