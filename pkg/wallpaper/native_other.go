//go:build !windows

package wallpaper

type nativeAPI struct{}

func (nativeAPI) SystemParametersInfo(action, uiParam uint32, path string, winIni uint32) (uint32, error) {
	return 0, ErrUnsupported
}
