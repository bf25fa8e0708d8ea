package domain

import (
	"encoding/json"
	"strings"
)

// ContentTypeText is the only content segment type the server emits.
const ContentTypeText = "text"

// Content is a single segment of a tool response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Response is the uniform envelope returned by every tool.
type Response struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// TextResponse builds a successful response from text segments.
func TextResponse(texts ...string) Response {
	r := Response{Content: make([]Content, 0, len(texts))}
	for _, t := range texts {
		r.Content = append(r.Content, Content{Type: ContentTypeText, Text: t})
	}
	return r
}

// JSONResponse builds a successful response holding v as indented JSON.
func JSONResponse(v any) (Response, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Response{}, err
	}
	return TextResponse(string(data)), nil
}

// ErrorResponse builds a failed response. The first segment is message; solutions, when given,
// become a second "Possible solutions" segment.
func ErrorResponse(message string, solutions ...string) Response {
	r := TextResponse(message)
	r.IsError = true
	if len(solutions) > 0 {
		r.Content = append(r.Content, Content{
			Type: ContentTypeText,
			Text: "Possible solutions:\n- " + strings.Join(solutions, "\n- "),
		})
	}
	return r
}

// Text returns the first segment's text, or "" for an empty response.
func (r Response) Text() string {
	if len(r.Content) == 0 {
		return ""
	}
	return r.Content[0].Text
}
