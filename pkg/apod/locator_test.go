package apod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateImage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPath string
		wantOK   bool
	}{
		{
			name:     "single img tag",
			body:     "<html>\n<a href=\"image/2501/big.jpg\">\n<IMG SRC=\"image/2501/small.jpg\">\n</html>\n",
			wantPath: "image/2501/big.jpg",
			wantOK:   true,
		},
		{
			name:     "first quoted substring wins",
			body:     `<img alt="sky" src="image/ap250101.jpg">`,
			wantPath: "sky",
			wantOK:   true,
		},
		{
			name:     "first matching line wins",
			body:     "<a href=\"image/one.jpg\">\n<a href=\"image/two.jpg\">\n",
			wantPath: "image/one.jpg",
			wantOK:   true,
		},
		{
			name:     "empty quotes still count",
			body:     `image "" ok.jpg`,
			wantPath: "",
			wantOK:   true,
		},
		{
			name:   "no image line",
			body:   "<html>\n<iframe src=\"https://youtube.com/embed/x\"></iframe>\n</html>\n",
			wantOK: false,
		},
		{
			name:   "case sensitive",
			body:   `<a href="IMAGE/ap250101.JPG">`,
			wantOK: false,
		},
		{
			name:   "matching line without quotes is not found",
			body:   "image/ap250101.jpg\n<a href=\"image/later.jpg\">\n",
			wantOK: false,
		},
		{
			name:   "jpg before image does not match",
			body:   `<a href="x.jpg"> image`,
			wantOK: false,
		},
		{
			name:   "empty body",
			body:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := LocateImage(tt.body)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, ref.Path)
		})
	}
}

func TestLocateImageKeepsLine(t *testing.T) {
	ref, ok := LocateImage("head\n<a href=\"image/2501/x.jpg\">\ntail")
	assert.True(t, ok)
	assert.Equal(t, "<a href=\"image/2501/x.jpg\">\n", ref.Line)
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a\n", "b\n"}, Lines("a\nb\n"))
	assert.Equal(t, []string{"a\n", "b"}, Lines("a\nb"))
	assert.Equal(t, []string{"\n", "\n"}, Lines("\n\n"))
}
