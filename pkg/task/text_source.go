package task

import "strings"

// TextSourceName is the name identifier for the text source.
const TextSourceName = "text"

// TextSource turns command-line text into a single task.
type TextSource struct {
	text string
}

// NewTextSource creates a text source from the given words, joined with spaces.
func NewTextSource(words ...string) *TextSource {
	return &TextSource{text: strings.TrimSpace(strings.Join(words, " "))}
}

// Name returns the name of the source.
func (s *TextSource) Name() string {
	return TextSourceName
}

// Tasks returns one task holding the text, or none when the text is empty.
func (s *TextSource) Tasks() ([]Task, error) {
	if s.text == "" {
		return nil, nil
	}
	return []Task{{Source: SourceTypeText, Description: s.text}}, nil
}
