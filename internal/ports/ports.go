// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core (path translation, dispatch, setup) depends only on
// these abstractions. Adapters in the infrastructure layer implement them on
// top of os/exec, the filesystem and the process table, and tests swap them
// for in-memory fakes.
package ports

import (
	"context"

	"github.com/doeshing/cdw/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from $XDG_CONFIG_HOME/cdw/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ConfigStore is a ConfigProvider that can also seed its backing file.
type ConfigStore interface {
	ConfigProvider
	Path() string
	EnsureDefault() (bool, error)
}

// Commander runs an external command and returns its standard output.
type Commander interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ProcessInspector answers questions about the process table.
// A false second result means "no information", never a fatal condition.
type ProcessInspector interface {
	ParentID(ctx context.Context, pid int) (int, bool)
	Name(ctx context.Context, pid int) (string, bool)
}

// ShellDetector identifies the invoking shell and the shells installed on the host.
type ShellDetector interface {
	Detect(ctx context.Context) domain.ShellKind
	EnumerateAvailable(ctx context.Context) []domain.ShellKind
}

// ShellIntegrator manages the wrapper function and completion files for each dialect.
type ShellIntegrator interface {
	Install(shell domain.ShellKind) (domain.ShellInstallResult, error)
	Uninstall(shell domain.ShellKind) (domain.ShellInstallResult, error)
	Status(shell domain.ShellKind) domain.ShellStatus
	FunctionSource(shell domain.ShellKind) string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations must never write to stdout, which carries the cd signal.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}
