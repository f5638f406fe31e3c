package doctor

import (
	"context"
	"fmt"
	"os"

	appconfig "github.com/doeshing/cdw/internal/application/config"
	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	ShellDetector   ports.ShellDetector
	ShellIntegrator ports.ShellIntegrator

	// Stat defaults to os.Stat.
	Stat func(string) (os.FileInfo, error)
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format %s, functions in %s", cfg.ConfigFormatVersion, cfg.ConfigDir)))
	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config values", err.Error()))
	}
	checks = append(checks, s.mountCheck(cfg.MountRoot))

	if s.ShellDetector == nil {
		checks = append(checks, warn("Shell detection", "detector not initialized"))
		return domain.HealthReport{Checks: checks}, nil
	}
	checks = append(checks, ok("Shell detection", s.ShellDetector.Detect(ctx).String()))

	available := s.ShellDetector.EnumerateAvailable(ctx)
	if len(available) == 0 {
		checks = append(checks, warn("Installed shells", "none found"))
	}
	for _, kind := range available {
		checks = append(checks, s.integrationCheck(kind))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) mountCheck(root string) domain.HealthCheck {
	stat := s.Stat
	if stat == nil {
		stat = os.Stat
	}
	info, err := stat(root)
	switch {
	case err != nil:
		return warn("Mount root", fmt.Sprintf("%s: %v", root, err))
	case !info.IsDir():
		return warn("Mount root", fmt.Sprintf("%s is not a directory", root))
	default:
		return ok("Mount root", root)
	}
}

func (s *Service) integrationCheck(kind domain.ShellKind) domain.HealthCheck {
	name := fmt.Sprintf("Shell integration (%s)", kind)
	if s.ShellIntegrator == nil {
		return warn(name, "installer not initialized")
	}
	status := s.ShellIntegrator.Status(kind)
	switch {
	case status.Error != "":
		return fail(name, status.Error)
	case status.FunctionExists && status.LinePresent:
		return ok(name, fmt.Sprintf("sourced from %s", status.RCFile))
	case status.FunctionExists:
		return warn(name, fmt.Sprintf("%s does not source %s", status.RCFile, status.FunctionPath))
	default:
		return warn(name, "not installed, run cdw --init")
	}
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
