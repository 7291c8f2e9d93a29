package apod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCaption(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "bounded block with tags",
			body: "<title>APOD</title>\n" +
				"<b> Explanation: </b> Hello <b>world</b>\n" +
				"more <a href=\"x.html\">text</a>\n" +
				"<b>Tomorrow's picture:</b> soon\n" +
				"trailer\n",
			want: " Explanation:  Hello world\nmore text\n",
		},
		{
			name: "no explanation",
			body: "<p>nothing here</p>\nTomorrow's picture: x\n",
			want: "",
		},
		{
			name: "missing end marker runs to end",
			body: "Explanation: a\nb\nc",
			want: "Explanation: a\nb\nc",
		},
		{
			name: "end marker before start stops early",
			body: "Tomorrow's picture:\nExplanation: never\n",
			want: "",
		},
		{
			name: "both markers on one line",
			body: "Explanation: short Tomorrow's picture: x\nafter\n",
			want: "",
		},
		{
			name: "multi line tags are left alone",
			body: "Explanation: <a\nhref=\"x\">link</a>\n",
			want: "Explanation: <a\nhref=\"x\">link\n",
		},
		{
			name: "second explanation does not reset",
			body: "Explanation: one\nExplanation: two\nTomorrow's picture:\n",
			want: "Explanation: one\nExplanation: two\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCaption(tt.body))
		})
	}
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Hello world", StripTags("<b>Hello</b> <i>world</i>"))
	assert.Equal(t, "a  b", StripTags("a <> b"))
	assert.Equal(t, "x > y", StripTags("x > y"))
	assert.Equal(t, "1  4>", StripTags("1 <2 and 3> 4>"))
}
