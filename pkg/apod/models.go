package apod

import (
	"net/http"
	"strings"
)

// Response is a fully read HTTP response
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is 2xx
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Text returns the body as text
func (r *Response) Text() string {
	return string(r.Body)
}

// ImageRef is the outcome of a successful image scan
type ImageRef struct {
	// Line is the matched line, terminator included
	Line string
	// Path is the first quoted substring on Line
	Path string
}

// Lines splits text after every "\n", keeping the terminators.
// A trailing fragment without a newline is its own line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
