// Package version provides build information for commentview.
package version

import (
	"fmt"
	"runtime"
)

// Version is the release version, set at build time with ldflags.
var Version = "development"

// Commit is the git commit hash, set at build time with ldflags.
var Commit = "unknown"

// String returns the version with the commit hash appended when known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Info is the machine-readable build description.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Go      string `json:"go" yaml:"go"`
	OS      string `json:"os" yaml:"os"`
	Arch    string `json:"arch" yaml:"arch"`
}

// Current returns the build description of the running binary.
func Current() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// Platform returns "os/arch" for the running binary.
func (i Info) Platform() string {
	return fmt.Sprintf("%s/%s", i.OS, i.Arch)
}
