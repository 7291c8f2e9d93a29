// Package platform classifies the host operating system.
package platform

import (
	"runtime"
	"strings"
	"sync"
)

// OS is one of the closed set of platform families apodwall knows about
type OS string

const (
	Windows OS = "windows"
	MacOSX  OS = "macosx"
	Linux   OS = "linux"
	Unix    OS = "unix"
	Unknown OS = "unknown"
)

// rules are tried in order; the first family with a matching needle wins
var rules = []struct {
	os      OS
	needles []string
}{
	{Windows, []string{"mswin", "msys", "mingw", "cygwin", "bccwin", "wince", "emc", "windows"}},
	{MacOSX, []string{"darwin", "mac os"}},
	{Linux, []string{"linux"}},
	{Unix, []string{"solaris", "bsd"}},
}

// Classify maps a platform identifier such as runtime.GOOS to a family.
// Matching is a case-insensitive substring test.
func Classify(id string) OS {
	lower := strings.ToLower(id)
	for _, r := range rules {
		for _, needle := range r.needles {
			if strings.Contains(lower, needle) {
				return r.os
			}
		}
	}
	return Unknown
}

// Supported reports whether apodwall can apply a wallpaper on os
func (o OS) Supported() bool {
	return o == Windows
}

// Detector computes the host classification once and caches it.
// The zero value reads runtime.GOOS.
type Detector struct {
	// Source returns the platform identifier; nil means runtime.GOOS
	Source func() string
	// OnUnknown is called once with the identifier when it matches no family
	OnUnknown func(id string)

	once sync.Once
	id   string
	os   OS
}

// NewDetector returns a detector reading the given identifier source
func NewDetector(source func() string) *Detector {
	return &Detector{Source: source}
}

// Detect returns the cached classification, deriving it on first use
func (d *Detector) Detect() OS {
	d.once.Do(func() {
		src := d.Source
		if src == nil {
			src = func() string { return runtime.GOOS }
		}
		d.id = src()
		d.os = Classify(d.id)
		if d.os == Unknown && d.OnUnknown != nil {
			d.OnUnknown(d.id)
		}
	})
	return d.os
}

// ID returns the identifier the classification was derived from
func (d *Detector) ID() string {
	d.Detect()
	return d.id
}
