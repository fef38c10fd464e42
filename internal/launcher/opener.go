package launcher

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrEmptyTarget is returned when Open is called without a target.
var ErrEmptyTarget = errors.New("target must not be empty")

// Opener opens URLs and files with the operating system's default handler.
type Opener struct {
	GOOS     string
	lookPath func(file string) (string, error)
	start    func(argv []string) error
}

// NewOpener returns an Opener for the given platform.
func NewOpener(goos string) *Opener {
	return &Opener{GOOS: goos, lookPath: exec.LookPath, start: startDetached}
}

// OpenCommand returns the argv that asks the OS to open target.
func OpenCommand(goos, target string) []string {
	switch goos {
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", target}
	case "darwin":
		return []string{"open", target}
	default:
		return []string{"xdg-open", target}
	}
}

// Open hands target to the OS. A URL opens in the default browser, a file in its
// associated application, a directory in the file manager.
func (o *Opener) Open(target string) error {
	if strings.TrimSpace(target) == "" {
		return ErrEmptyTarget
	}
	argv := OpenCommand(o.GOOS, target)
	if _, err := o.lookPath(argv[0]); err != nil {
		return err
	}
	return o.start(argv)
}
