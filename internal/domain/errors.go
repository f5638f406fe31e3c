package domain

import "errors"

var (
	// ErrUnsupportedShell is returned when a name matches no ShellKind.
	ErrUnsupportedShell = errors.New("unsupported shell")
	// ErrNoAction means neither a path nor a setup flag was given.
	ErrNoAction = errors.New("no path or action given")
	// ErrHomeNotSet means the home directory needed by init could not be resolved.
	ErrHomeNotSet = errors.New("HOME not set")
)
