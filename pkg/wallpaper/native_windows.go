//go:build windows

package wallpaper

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

type nativeAPI struct{}

func (nativeAPI) SystemParametersInfo(action, uiParam uint32, path string, winIni uint32) (uint32, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	if err := procSystemParametersInfo.Find(); err != nil {
		return 0, err
	}
	r1, _, callErr := procSystemParametersInfo.Call(
		uintptr(action),
		uintptr(uiParam),
		uintptr(unsafe.Pointer(p)),
		uintptr(winIni),
	)
	if r1 == 0 {
		return 0, callErr
	}
	return uint32(r1), nil
}
