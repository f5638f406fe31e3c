package cli

import (
	"errors"

	"github.com/doeshing/cdw/internal/domain"
)

// ExitCode is the process exit status for an error returned by the root command.
type ExitCode int

const (
	ExitSuccess ExitCode = 0
	ExitGeneral ExitCode = 1
)

// MapExitCode reports whether err already produced its own output (help text)
// alongside the exit code; every failure exits 1.
func MapExitCode(err error) (ExitCode, bool) {
	if err == nil {
		return ExitSuccess, true
	}
	if errors.Is(err, domain.ErrNoAction) {
		return ExitGeneral, true
	}
	return ExitGeneral, false
}
