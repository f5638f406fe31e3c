// Package version carries build metadata injected with -ldflags.
package version

var (
	Version   = "1.0.0"
	Commit    = ""
	BuildDate = ""
)

// String renders the version line shown by --version.
func String() string {
	s := Version
	if Commit != "" {
		s += " (" + Commit + ")"
	}
	if BuildDate != "" {
		s += " built " + BuildDate
	}
	return s
}
