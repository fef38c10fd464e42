package launcher

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeFinder(goos string, onPath map[string]string, files map[string]bool) *Finder {
	return &Finder{
		GOOS: goos,
		Home: `C:\Users\me`,
		LookPath: func(file string) (string, error) {
			if p, ok := onPath[file]; ok {
				return p, nil
			}
			return "", errors.New("not found")
		},
		Exists: func(path string) bool { return files[path] },
	}
}

func TestCommand(t *testing.T) {
	assert.Equal(t,
		[]string{"/usr/bin/chromium", "--app=http://127.0.0.1:8000"},
		Command("/usr/bin/chromium", "http://127.0.0.1:8000"))
}

func TestFinder_Linux(t *testing.T) {
	f := fakeFinder("linux", map[string]string{
		"chromium":      "/usr/bin/chromium",
		"brave-browser": "/usr/bin/brave-browser",
	}, nil)

	got, ok := f.Find()
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/chromium", got)
}

func TestFinder_LinuxPreferenceOrder(t *testing.T) {
	f := fakeFinder("linux", map[string]string{
		"google-chrome": "/opt/google/chrome",
		"chromium":      "/usr/bin/chromium",
	}, nil)

	got, ok := f.Find()
	assert.True(t, ok)
	assert.Equal(t, "/opt/google/chrome", got)
}

func TestFinder_Darwin(t *testing.T) {
	edge := "/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge"
	f := fakeFinder("darwin", nil, map[string]bool{edge: true})

	got, ok := f.Find()
	assert.True(t, ok)
	assert.Equal(t, edge, got)
}

func TestFinder_WindowsUserInstall(t *testing.T) {
	brave := filepath.Join(`C:\Users\me`, `AppData\Local\BraveSoftware\Brave-Browser\Application\brave.exe`)
	f := fakeFinder("windows", nil, map[string]bool{brave: true})

	got, ok := f.Find()
	assert.True(t, ok)
	assert.Equal(t, brave, got)
}

func TestFinder_ExplicitWins(t *testing.T) {
	f := fakeFinder("linux", map[string]string{"chromium": "/usr/bin/chromium"}, map[string]bool{"/opt/custom/browser": true})
	f.Explicit = "/opt/custom/browser"

	got, ok := f.Find()
	assert.True(t, ok)
	assert.Equal(t, "/opt/custom/browser", got)
}

func TestFinder_ExplicitMissingFallsBack(t *testing.T) {
	f := fakeFinder("linux", map[string]string{"chromium": "/usr/bin/chromium"}, nil)
	f.Explicit = "/nope"

	got, ok := f.Find()
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/chromium", got)
}

func TestFinder_NothingFound(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "windows", "plan9"} {
		_, ok := fakeFinder(goos, nil, nil).Find()
		assert.False(t, ok, goos)
	}
}
