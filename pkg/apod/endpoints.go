package apod

import (
	"net/url"
	"strings"
	"time"

	"apodwall/pkg/config"
)

const (
	// DefaultDomain is where the daily page is published
	DefaultDomain = "https://apod.nasa.gov"

	// PathPrefix is shared by the page and every image it references
	PathPrefix = "/apod/"

	// DateLayout renders the yymmdd stamp in a page name
	DateLayout = "060102"
)

// PagePath returns the path of the page published on date
func PagePath(date time.Time) string {
	return PathPrefix + "ap" + date.Format(DateLayout) + ".html"
}

// EncodeParams joins params in their given order, escaping values
func EncodeParams(params []config.QueryParam) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Key+"="+url.QueryEscape(p.Value))
	}
	return strings.Join(parts, "&")
}

// PageURL constructs the URL of the page published on date
func PageURL(domain string, date time.Time, params []config.QueryParam) string {
	u := domain + PagePath(date)
	if q := EncodeParams(params); q != "" {
		u += "?" + q
	}
	return u
}

// ImageURL resolves a relative image path found on a page
func ImageURL(domain, relPath string) string {
	return domain + PathPrefix + relPath
}
