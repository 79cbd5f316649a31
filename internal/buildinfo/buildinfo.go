// Package buildinfo holds the build metadata of the svnrevert binary.
// main forwards the linker-injected values with Set before building the
// command, and the --version output reads them back through Get.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Info is the metadata stamped into a build.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

const (
	unsetVersion = "dev"
	unsetCommit  = "none"
	unsetValue   = "unknown"
)

var current = Info{
	Version: unsetVersion,
	Commit:  unsetCommit,
	Date:    unsetValue,
	BuiltBy: unsetValue,
}

// Set stores the values received from the linker.
func Set(version, commit, date, builtBy string) {
	current = Info{Version: version, Commit: commit, Date: date, BuiltBy: builtBy}
}

// Get returns the current metadata.
func Get() Info { return current }

// Enrich fills the commit and builder from runtime/debug.ReadBuildInfo when
// the linker left them unset. A go install build has no ldflags, so this is
// where its VCS revision comes from.
func Enrich() {
	enrichFrom(debug.ReadBuildInfo)
}

func enrichFrom(read func() (*debug.BuildInfo, bool)) {
	if current.Commit != unsetCommit && current.BuiltBy != unsetValue {
		return
	}

	info, ok := read()
	if !ok || info == nil {
		return
	}

	if current.Commit == unsetCommit {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				current.Commit = setting.Value
			case "vcs.time":
				if current.Date == unsetValue {
					current.Date = setting.Value
				}
			}
		}
	}

	if current.BuiltBy == unsetValue {
		current.BuiltBy = info.GoVersion
	}
	if current.Version == unsetVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		current.Version = info.Main.Version
	}
}

// String is the text printed by --version.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, by: %s)", i.Version, i.Commit, i.Date, i.BuiltBy)
}
