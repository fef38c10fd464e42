// Package launcher starts a Chromium-family browser in app mode pointed at
// the local server, and opens URLs or files with the OS default application.
package launcher

import (
	"os"
	"os/exec"
	"path/filepath"
)

var (
	windowsPaths = []string{
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files\Microsoft\Edge\Application\msedge.exe`,
		`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`,
	}

	// Relative to the user's home directory.
	windowsUserPaths = []string{
		`AppData\Local\Google\Chrome\Application\chrome.exe`,
		`AppData\Local\BraveSoftware\Brave-Browser\Application\brave.exe`,
	}

	linuxBinaries = []string{
		"google-chrome",
		"google-chrome-stable",
		"chromium",
		"chromium-browser",
		"microsoft-edge",
		"brave-browser",
	}

	darwinPaths = []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
		"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser",
	}
)

// Finder locates a browser executable.
type Finder struct {
	// GOOS selects the candidate list.
	GOOS string
	// Explicit, when set, is returned as-is if it exists.
	Explicit string
	// Home is used to expand per-user Windows install locations.
	Home string

	LookPath func(file string) (string, error)
	Exists   func(path string) bool
}

// NewFinder returns a Finder for the given platform backed by the host
// filesystem and $PATH.
func NewFinder(goos, explicit string) *Finder {
	home, _ := os.UserHomeDir()
	return &Finder{
		GOOS:     goos,
		Explicit: explicit,
		Home:     home,
		LookPath: exec.LookPath,
		Exists:   fileExists,
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Find returns the first available browser.
func (f *Finder) Find() (string, bool) {
	if f.Explicit != "" {
		if f.Exists(f.Explicit) {
			return f.Explicit, true
		}
		if p, err := f.LookPath(f.Explicit); err == nil {
			return p, true
		}
	}

	switch f.GOOS {
	case "windows":
		candidates := append([]string{}, windowsPaths...)
		if f.Home != "" {
			for _, p := range windowsUserPaths {
				candidates = append(candidates, filepath.Join(f.Home, p))
			}
		}
		return f.firstExisting(candidates)
	case "darwin":
		return f.firstExisting(darwinPaths)
	case "linux":
		for _, bin := range linuxBinaries {
			if p, err := f.LookPath(bin); err == nil {
				return p, true
			}
		}
	}
	return "", false
}

func (f *Finder) firstExisting(paths []string) (string, bool) {
	for _, p := range paths {
		if f.Exists(p) {
			return p, true
		}
	}
	return "", false
}

// Command builds the argv that opens url in a chromeless app window.
func Command(executable, url string) []string {
	return []string{executable, "--app=" + url}
}
