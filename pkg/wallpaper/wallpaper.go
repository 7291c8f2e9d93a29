// Package wallpaper applies an image as the desktop background.
//
// Dispatch is over the closed set of platform families. Only Windows has a
// real implementation; every other family returns ErrUnsupported without
// touching the system.
package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"

	errs "apodwall/pkg/errors"
	"apodwall/pkg/logger"
	"apodwall/pkg/platform"
)

const (
	// SPISetDeskWallpaper is the SystemParametersInfo action
	SPISetDeskWallpaper = 0x14
	// SPIFUpdateIniFile persists the change to the user profile
	SPIFUpdateIniFile = 0x1
	// SPIFSendWinIniChange broadcasts the change to running applications
	SPIFSendWinIniChange = 0x2

	// successCode is what SystemParametersInfo returns when it applied the change
	successCode = 1
)

// ErrUnsupported is returned for every platform without an implementation
var ErrUnsupported = &errs.Error{Type: errs.ErrorTypeUnsupported, Message: "setting the wallpaper is not implemented on this platform"}

// SystemAPI is the native wallpaper call
type SystemAPI interface {
	// SystemParametersInfo performs the call and returns its raw result
	SystemParametersInfo(action, uiParam uint32, path string, winIni uint32) (uint32, error)
}

// Result describes one attempt to set the wallpaper
type Result struct {
	OS      platform.OS
	Path    string
	Code    uint32
	Applied bool
	Err     error
}

// Setter applies wallpapers for the detected platform
type Setter struct {
	detector *platform.Detector
	api      SystemAPI
	getwd    func() (string, error)
	logger   logger.Logger
}

// NewSetter creates a setter using the native API of this build
func NewSetter(detector *platform.Detector, log logger.Logger) *Setter {
	return NewSetterWithAPI(detector, nativeAPI{}, log)
}

// NewSetterWithAPI creates a setter on top of api
func NewSetterWithAPI(detector *platform.Detector, api SystemAPI, log logger.Logger) *Setter {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Setter{
		detector: detector,
		api:      api,
		getwd:    os.Getwd,
		logger:   log,
	}
}

// Resolve turns a relative path into an absolute one under the working directory
func (s *Setter) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := s.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, path), nil
}

// Apply sets path as the desktop background
func (s *Setter) Apply(path string) Result {
	res := Result{OS: s.detector.Detect()}

	abs, err := s.Resolve(path)
	if err != nil {
		res.Err = &errs.Error{Type: errs.ErrorTypeFilesystem, Message: err.Error(), Err: err}
		return res
	}
	res.Path = abs

	switch res.OS {
	case platform.Windows:
		s.applyWindows(&res)
	case platform.MacOSX, platform.Linux, platform.Unix, platform.Unknown:
		res.Err = ErrUnsupported
	default:
		res.Err = ErrUnsupported
	}

	fields := map[string]interface{}{
		"os":      string(res.OS),
		"path":    res.Path,
		"applied": res.Applied,
	}
	if res.Err != nil {
		s.logger.WithError(res.Err).WarnWithFields("Wallpaper not applied", fields)
	} else {
		s.logger.InfoWithFields("Wallpaper applied", fields)
	}
	return res
}

func (s *Setter) applyWindows(res *Result) {
	code, err := s.api.SystemParametersInfo(SPISetDeskWallpaper, 0, res.Path, SPIFUpdateIniFile|SPIFSendWinIniChange)
	res.Code = code
	if code == successCode {
		res.Applied = true
		return
	}
	if err == nil {
		err = fmt.Errorf("SystemParametersInfo returned %d", code)
	}
	res.Err = &errs.Error{Type: errs.ErrorTypeUnknown, Message: err.Error(), Code: int(code), Err: err}
}
