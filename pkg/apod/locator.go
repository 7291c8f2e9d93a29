package apod

import "regexp"

var (
	// imageLinePattern is deliberately loose: "image" followed by "jpg"
	// anywhere later on the same line.
	imageLinePattern = regexp.MustCompile(`image(.*?)jpg`)
	quotedPattern    = regexp.MustCompile(`"(.*?)"`)
)

// LocateImage scans body line by line and returns the relative path of the
// first image reference. Only the first line matching "image...jpg" is
// considered; if it carries no quoted substring nothing is found.
func LocateImage(body string) (ImageRef, bool) {
	for _, line := range Lines(body) {
		if !imageLinePattern.MatchString(line) {
			continue
		}
		m := quotedPattern.FindStringSubmatch(line)
		if m == nil {
			return ImageRef{}, false
		}
		return ImageRef{Line: line, Path: m[1]}, true
	}
	return ImageRef{}, false
}
