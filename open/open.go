// Package open hands AniList URLs to the system's default browser.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/anisan-cli/anikit/log"
)

// URL opens u in the default browser without waiting for it to exit.
func URL(u string) error {
	cmd, ok := command(runtime.GOOS, u)
	if !ok {
		return fmt.Errorf("opening links is not supported on %s", runtime.GOOS)
	}

	log.Debugf("opening %s with %s", u, cmd.Path)
	return cmd.Start()
}

func command(goos, u string) (*exec.Cmd, bool) {
	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", u), true
	case "darwin":
		return exec.Command("open", u), true
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", u), true
	case "android":
		return exec.Command("termux-open-url", u), true
	default:
		return nil, false
	}
}
