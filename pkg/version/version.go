// pkg/version/version.go - version information for the EDS deployment tools.

package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// These values are private which ensures they can only be set with the
// build flags.
var (
	version   = "0.0.0"
	revision  = "unknown"
	buildDate = "unknown"
	appName   = "eds"
)

// Info is a structure with version build information about the current
// application.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuildDate string `json:"build_date"`
}

// Version returns a structure with the current version information.
func Version() Info {
	return Info{
		Version:   version,
		Revision:  revision,
		BuildDate: buildDate,
	}
}

// Print outputs the application name and version string.
func Print() {
	v := Version()
	fmt.Printf("%s %s\n", appName, v.Version)
}

// AtLeast reports whether the running tool's version is at least other.
// Used by the runtime agent to detect answer files stamped by a newer
// media-preparation tool. Unparsable versions compare as compatible:
// refusing to provision over a bad stamp would be worse than a warning.
func AtLeast(other string) bool {
	mine, err := goversion.NewVersion(version)
	if err != nil {
		return true
	}
	theirs, err := goversion.NewVersion(other)
	if err != nil {
		return true
	}
	return mine.GreaterThanOrEqual(theirs)
}
