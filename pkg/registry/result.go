package registry

import (
	"encoding/json"
	"fmt"
)

// ContentText is the only content type this bridge produces.
const ContentText = "text"

// Content is one block of an invocation result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the outcome of exactly one invocation.
type Result struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Text builds a text content block.
func Text(s string) Content {
	return Content{Type: ContentText, Text: s}
}

// JSON builds a text content block holding indented JSON.
func JSON(v any) (Content, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Content{}, fmt.Errorf("encode result: %w", err)
	}
	return Text(string(b)), nil
}

// Success wraps content blocks verbatim.
func Success(content ...Content) Result {
	return Result{Content: content}
}

// Failure builds the error envelope.
func Failure(msg string) Result {
	return Result{
		Content: []Content{Text("Error: " + msg)},
		IsError: true,
	}
}

// Message joins the text of all content blocks.
func (r Result) Message() string {
	var s string
	for i, c := range r.Content {
		if i > 0 {
			s += "\n"
		}
		s += c.Text
	}
	return s
}
