// Package version provides build information for files-to-prompt.
package version

import (
	"fmt"
	"runtime"
)

// Populated at build time, for example:
// go build -ldflags "-X 'github.com/bethropolis/files-to-prompt/internal/version.Version=0.4.0' -X 'github.com/bethropolis/files-to-prompt/internal/version.Commit=abc1234'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info contains version information for the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the version on a single line, as printed by --version.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
