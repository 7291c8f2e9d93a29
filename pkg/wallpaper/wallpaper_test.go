package wallpaper

import (
	"errors"
	"path/filepath"
	"testing"

	errs "apodwall/pkg/errors"
	"apodwall/pkg/logger"
	"apodwall/pkg/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	action, uiParam uint32
	path            string
	winIni          uint32
}

type fakeAPI struct {
	code  uint32
	err   error
	calls []call
}

func (f *fakeAPI) SystemParametersInfo(action, uiParam uint32, path string, winIni uint32) (uint32, error) {
	f.calls = append(f.calls, call{action, uiParam, path, winIni})
	return f.code, f.err
}

func newTestSetter(id string, api SystemAPI, wd string) *Setter {
	s := NewSetterWithAPI(platform.NewDetector(func() string { return id }), api, logger.NewNopLogger())
	s.getwd = func() (string, error) { return wd, nil }
	return s
}

func TestApplyWindowsSuccess(t *testing.T) {
	api := &fakeAPI{code: 1}
	wd := filepath.FromSlash("/home/me")
	s := newTestSetter("windows", api, wd)

	res := s.Apply("nasa_image.jpg")

	require.NoError(t, res.Err)
	assert.True(t, res.Applied)
	assert.Equal(t, platform.Windows, res.OS)
	assert.Equal(t, uint32(1), res.Code)
	require.Len(t, api.calls, 1)
	assert.Equal(t, call{
		action:  0x14,
		uiParam: 0,
		path:    filepath.Join(wd, "nasa_image.jpg"),
		winIni:  0x1 | 0x2,
	}, api.calls[0])
}

func TestApplyWindowsFailure(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeAPI
	}{
		{name: "zero return", api: &fakeAPI{code: 0}},
		{name: "unexpected code", api: &fakeAPI{code: 2}},
		{name: "call error", api: &fakeAPI{code: 0, err: errors.New("access denied")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestSetter("mingw32", tt.api, "/tmp").Apply("x.jpg")
			assert.False(t, res.Applied)
			require.Error(t, res.Err)
			assert.Len(t, tt.api.calls, 1)
		})
	}
}

func TestApplyUnsupportedPlatformsMakeNoCall(t *testing.T) {
	for _, id := range []string{"darwin", "linux", "freebsd", "plan9"} {
		t.Run(id, func(t *testing.T) {
			api := &fakeAPI{code: 1}
			res := newTestSetter(id, api, "/tmp").Apply("nasa_image_fallback.jpg")

			assert.False(t, res.Applied)
			assert.ErrorIs(t, res.Err, ErrUnsupported)
			assert.Equal(t, errs.ErrorTypeUnsupported, errs.TypeOf(res.Err))
			assert.Empty(t, api.calls)
		})
	}
}

func TestResolve(t *testing.T) {
	s := newTestSetter("linux", &fakeAPI{}, filepath.FromSlash("/work"))

	abs, err := s.Resolve("nasa_image.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.FromSlash("/work"), "nasa_image.jpg"), abs)

	already := filepath.Join(t.TempDir(), "x.jpg")
	abs, err = s.Resolve(already)
	require.NoError(t, err)
	assert.Equal(t, already, abs)
}

func TestApplyWorkingDirectoryError(t *testing.T) {
	api := &fakeAPI{code: 1}
	s := newTestSetter("windows", api, "")
	s.getwd = func() (string, error) { return "", errors.New("cwd removed") }

	res := s.Apply("nasa_image.jpg")
	assert.False(t, res.Applied)
	assert.Equal(t, errs.ErrorTypeFilesystem, errs.TypeOf(res.Err))
	assert.Empty(t, api.calls)
}
