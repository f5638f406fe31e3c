package shell

import (
	"context"
	"os"
	"strings"

	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/infrastructure/process"
	"github.com/doeshing/cdw/internal/ports"
)

// envMarkers are checked in order after ancestry inspection fails.
var envMarkers = []struct {
	name string
	kind domain.ShellKind
}{
	{domain.EnvXonshVersion, domain.ShellXonsh},
	{domain.EnvNuVersion, domain.ShellNushell},
	{domain.EnvFishVersion, domain.ShellFish},
	{domain.EnvZshVersion, domain.ShellZsh},
	{domain.EnvBashVersion, domain.ShellBash},
}

// Detector identifies the invoking shell and the shells installed on the host.
type Detector struct {
	inspector ports.ProcessInspector
	runner    ports.Commander
	logger    ports.Logger

	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// StartPID is where the ancestry walk begins.
	StartPID int
}

// NewDetector builds a detector whose ancestry walk starts at process.ProbeSelf.
func NewDetector(inspector ports.ProcessInspector, runner ports.Commander, logger ports.Logger) *Detector {
	return &Detector{
		inspector: inspector,
		runner:    runner,
		logger:    logger,
		LookupEnv: os.LookupEnv,
		StartPID:  process.ProbeSelf,
	}
}

// Detect always returns a usable kind; ShellSh when nothing else matches.
func (d *Detector) Detect(ctx context.Context) domain.ShellKind {
	if modulePath, ok := d.LookupEnv(domain.EnvPSModulePath); ok &&
		strings.Contains(strings.ToLower(modulePath), "powershell") {
		d.logger.Debug("shell detected", map[string]interface{}{"shell": domain.ShellPowerShell.String(), "via": domain.EnvPSModulePath})
		return domain.ShellPowerShell
	}

	if kind, ok := d.fromAncestry(ctx); ok {
		d.logger.Debug("shell detected", map[string]interface{}{"shell": kind.String(), "via": "ancestry"})
		return kind
	}

	for _, marker := range envMarkers {
		if _, ok := d.LookupEnv(marker.name); ok {
			d.logger.Debug("shell detected", map[string]interface{}{"shell": marker.kind.String(), "via": marker.name})
			return marker.kind
		}
	}

	d.logger.Debug("shell detection fell back", map[string]interface{}{"shell": domain.ShellSh.String()})
	return domain.ShellSh
}

// fromAncestry reads the name of StartPID's grandparent.
func (d *Detector) fromAncestry(ctx context.Context) (domain.ShellKind, bool) {
	if d.inspector == nil {
		return domain.ShellUnknown, false
	}
	parent, ok := d.inspector.ParentID(ctx, d.StartPID)
	if !ok {
		return domain.ShellUnknown, false
	}
	grandparent, ok := d.inspector.ParentID(ctx, parent)
	if !ok {
		return domain.ShellUnknown, false
	}
	name, ok := d.inspector.Name(ctx, grandparent)
	if !ok {
		return domain.ShellUnknown, false
	}
	kind, err := domain.ParseShellKind(name)
	if err != nil {
		d.logger.Debug("ancestor is not a known shell", map[string]interface{}{"pid": grandparent, "name": name})
		return domain.ShellUnknown, false
	}
	return kind, true
}

var _ ports.ShellDetector = (*Detector)(nil)
