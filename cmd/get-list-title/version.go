package main

import (
	"fmt"
	"runtime"
)

// Populated at build time with -ldflags -X.
var (
	buildVersion   string
	buildTime      string
	buildGitCommit string
	buildGitBranch string
)

// BuildInfo describes version information about the binary build.
type BuildInfo struct {
	Version   string
	GitCommit string
	GitBranch string
	BuildTime string
	GoVersion string
}

// Info exports the build version information.
var Info = BuildInfo{
	Version:   buildVersion,
	GitCommit: buildGitCommit,
	GitBranch: buildGitBranch,
	BuildTime: buildTime,
	GoVersion: runtime.Version(),
}

// Version returns a multi-line version information
func Version() string {
	return fmt.Sprintf(`Version: %v
GitCommit: %v
GitBranch: %v
GoVersion: %v
BuildTime: %v
`,
		Info.Version,
		Info.GitCommit,
		Info.GitBranch,
		Info.GoVersion,
		Info.BuildTime)
}
