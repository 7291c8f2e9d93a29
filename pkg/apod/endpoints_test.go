package apod

import (
	"testing"
	"time"

	"apodwall/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestPagePath(t *testing.T) {
	date := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "/apod/ap250101.html", PagePath(date))

	date = time.Date(2009, time.November, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "/apod/ap091130.html", PagePath(date))
}

func TestPageURL(t *testing.T) {
	date := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		params []config.QueryParam
		want   string
	}{
		{
			name:   "default params in order",
			params: config.DefaultParams(),
			want:   "https://apod.nasa.gov/apod/ap250307.html?mode=prod&id=000000&new=true",
		},
		{
			name:   "no params",
			params: nil,
			want:   "https://apod.nasa.gov/apod/ap250307.html",
		},
		{
			name:   "values are escaped",
			params: []config.QueryParam{{Key: "q", Value: "a b&c"}},
			want:   "https://apod.nasa.gov/apod/ap250307.html?q=a+b%26c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageURL(DefaultDomain, date, tt.params))
		})
	}
}

func TestImageURL(t *testing.T) {
	paths := []string{
		"image/2501/ap250101.jpg",
		"image/x.jpg",
		"",
		"../odd path.jpg",
	}
	for _, p := range paths {
		assert.Equal(t, DefaultDomain+"/apod/"+p, ImageURL(DefaultDomain, p))
	}
}
