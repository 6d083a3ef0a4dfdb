// Command webembed embeds native web surfaces into existing windows and
// inspects how window handles are resolved.
package main

import (
	"runtime"

	"github.com/bnema/webembed/internal/cli/cmd"
	"github.com/bnema/webembed/internal/domain/build"
)

// Build information set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
