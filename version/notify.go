// Package version finds out whether a newer anikit release exists.
package version

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/anisan-cli/anikit/constant"
	"github.com/anisan-cli/anikit/key"
	"github.com/anisan-cli/anikit/log"
	"github.com/anisan-cli/anikit/style"
	"github.com/spf13/viper"
)

// Notify writes a banner to w when a newer release exists and cli.version_check is on.
// Lookup failures are logged and otherwise ignored.
func Notify(ctx context.Context, w io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	latest, err := Latest(ctx)
	if err != nil {
		log.Warnf("version check failed: %v", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	_, _ = fmt.Fprintf(w, `
%s New version is available %s %s
%s

`,
		style.Fg(style.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)
}
