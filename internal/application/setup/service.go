// Package setup installs and prints the cdw shell wrappers. None of it
// touches the cd signal; it only prepares shells to consume it.
package setup

import (
	"context"
	"fmt"
	"io"

	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/pkg/logger"
	"github.com/doeshing/cdw/internal/ports"
)

// Service runs --init, --init-all, --init-display and --uninstall.
type Service struct {
	ConfigStore     ports.ConfigStore
	ShellDetector   ports.ShellDetector
	ShellIntegrator ports.ShellIntegrator
	// Logger defaults to a no-op logger.
	Logger ports.Logger
}

func (s *Service) log() ports.Logger {
	if s.Logger == nil {
		return logger.Nop()
	}
	return s.Logger
}

// ResolveShell picks the explicit name, then the configured shell, then detection.
func (s *Service) ResolveShell(ctx context.Context, explicit string) (domain.ShellKind, error) {
	if explicit != "" {
		return domain.ParseShellKind(explicit)
	}
	if s.ConfigStore != nil {
		if cfg, err := s.ConfigStore.Load(ctx); err == nil {
			if kind, ok := cfg.PinnedShell(); ok {
				return kind, nil
			}
		} else {
			s.log().Warn("config unreadable, detecting shell", map[string]interface{}{"error": err.Error()})
		}
	}
	return s.ShellDetector.Detect(ctx), nil
}

// Init installs the wrapper for one shell.
func (s *Service) Init(ctx context.Context, out io.Writer, explicit string) error {
	kind, err := s.ResolveShell(ctx, explicit)
	if err != nil {
		return err
	}
	s.seedConfig()
	return s.install(out, kind, false)
}

// InitAll installs the wrapper for every shell found on the host.
func (s *Service) InitAll(ctx context.Context, out io.Writer) error {
	available := s.ShellDetector.EnumerateAvailable(ctx)
	if len(available) == 0 {
		fmt.Fprintln(out, "No supported shells found.")
		return nil
	}
	s.seedConfig()
	for _, kind := range available {
		if err := s.install(out, kind, true); err != nil {
			return err
		}
	}
	return nil
}

// Display prints the wrapper source for name, or for the resolved shell when name is empty.
func (s *Service) Display(ctx context.Context, out io.Writer, name string) error {
	if name == "" {
		kind, err := s.ResolveShell(ctx, "")
		if err != nil {
			return err
		}
		name = kind.String()
	}
	kind, err := domain.ParseShellKind(name)
	if err != nil {
		s.log().Debug("display for unknown shell", map[string]interface{}{"shell": name})
	}
	_, err = fmt.Fprintln(out, s.ShellIntegrator.FunctionSource(kind))
	return err
}

// Uninstall removes the source line for one shell.
func (s *Service) Uninstall(ctx context.Context, out io.Writer, explicit string) error {
	kind, err := s.ResolveShell(ctx, explicit)
	if err != nil {
		return err
	}
	result, err := s.ShellIntegrator.Uninstall(kind)
	if err != nil {
		return fmt.Errorf("failed to uninstall for %s: %w", kind, err)
	}
	if result.RCUpdated {
		fmt.Fprintf(out, "Removed cdw from %s\n", result.RCFile)
	} else {
		fmt.Fprintf(out, "cdw was not sourced in %s\n", result.RCFile)
	}
	return nil
}

func (s *Service) install(out io.Writer, kind domain.ShellKind, allMode bool) error {
	result, err := s.ShellIntegrator.Install(kind)
	if err != nil {
		return fmt.Errorf("failed to install for %s: %w", kind, err)
	}

	prefix := ""
	if allMode {
		prefix = fmt.Sprintf("In %s shell, ", kind)
	}
	fmt.Fprintf(out, "Function added to your %s configuration.\n", kind)
	fmt.Fprintf(out, "%sRun `source %s` in your terminal to apply the changes\n", prefix, result.RCFile)
	return nil
}

func (s *Service) seedConfig() {
	if s.ConfigStore == nil {
		return
	}
	created, err := s.ConfigStore.EnsureDefault()
	if err != nil {
		s.log().Warn("could not write default config", map[string]interface{}{"path": s.ConfigStore.Path(), "error": err.Error()})
		return
	}
	if created {
		s.log().Info("default config written", map[string]interface{}{"path": s.ConfigStore.Path()})
	}
}
