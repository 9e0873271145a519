//go:build unit

package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Reference
		found    bool
	}{
		{name: "empty text", text: ""},
		{name: "no marker", text: "refactor the login flow"},
		{name: "marker in the middle", text: "foo #42 bar", expected: 42, found: true},
		{name: "marker at start of text", text: "#7 crash on save", expected: 7, found: true},
		{name: "marker at end of text", text: "Fix login bug #123", expected: 123, found: true},
		{name: "first match wins", text: "#1 and #2", expected: 1, found: true},
		{name: "followed by semicolon", text: "see #7;"},
		{name: "html entity", text: "it&#39;s broken"},
		{name: "entity then reference", text: "it&#39;s broken, see #12", expected: 12, found: true},
		{name: "entity directly before reference", text: "&#7;#8", expected: 8, found: true},
		{name: "preceded by word character", text: "abc#5"},
		{name: "preceded by underscore", text: "x_#5"},
		{name: "preceded by unicode letter", text: "é#5"},
		{name: "preceded by punctuation", text: "(#314)", expected: 314, found: true},
		{name: "leading zeros", text: "TODO: #007 check", expected: 7, found: true},
		{name: "hash without digits", text: "use # as comment"},
		{name: "overflow skipped", text: "#99999999999999999999 then #3", expected: 3, found: true},
		{name: "max uint64", text: " #18446744073709551615", expected: 18446744073709551615, found: true},
		{name: "double hash", text: "##5", expected: 5, found: true},
		{name: "newline before marker", text: "first line\n#64", expected: 64, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, found := Extract(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, ref)
		})
	}
}

func TestExtractAll(t *testing.T) {
	assert.Equal(t, []Reference{1, 2, 30}, ExtractAll("#1 and #2, also (#30) but not #4; or a#5"))
	assert.Empty(t, ExtractAll("nothing here"))
	assert.Empty(t, ExtractAll(""))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "https://github.com/org/repo/issues/42", Resolve("https://github.com/org/repo/issues/", 42))
	assert.Equal(t, "https://github.com/Vizioz/task-issues/issues/123",
		Resolve("https://github.com/Vizioz/task-issues/issues/", 123))
	assert.Equal(t, "issues/0", Resolve("issues/", 0))
}

func TestExtractThenResolve(t *testing.T) {
	ref, found := Extract("Fix login bug #123")
	assert.True(t, found)
	assert.Equal(t, "https://github.com/Vizioz/task-issues/issues/123",
		Resolve("https://github.com/Vizioz/task-issues/issues/", ref))
}

func TestReference_String(t *testing.T) {
	assert.Equal(t, "0", Reference(0).String())
	assert.Equal(t, "123", Reference(123).String())
}

func TestErrorTypes(t *testing.T) {
	assert.Equal(t, "no issue reference found", ErrReferenceNotFound.Error())
}
