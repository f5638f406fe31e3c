package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/doeshing/cdw/internal/domain"
)

// Validate ensures config values are usable.
func Validate(cfg domain.Config) error {
	var errs []error
	if cfg.MountRoot != "" && !filepath.IsAbs(cfg.MountRoot) {
		errs = append(errs, fmt.Errorf("mount_root must be absolute, got %q", cfg.MountRoot))
	}
	if cfg.ConfigDir != "" && !filepath.IsAbs(cfg.ConfigDir) {
		errs = append(errs, fmt.Errorf("config_dir must be absolute, got %q", cfg.ConfigDir))
	}
	if cfg.Shell != "" {
		if _, err := domain.ParseShellKind(cfg.Shell); err != nil {
			errs = append(errs, fmt.Errorf("shell: %w", err))
		}
	}
	return errors.Join(errs...)
}
