package filesystem

import (
	"fmt"
	"os"

	"github.com/doeshing/cdw/internal/domain"
)

// UserHomeDir returns the current user's home directory.
// Unlike the config path, installing into rc files has no sensible fallback,
// so a missing home is reported as domain.ErrHomeNotSet.
func UserHomeDir() (string, error) {
	if home := os.Getenv(domain.EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: %v", domain.ErrHomeNotSet, err)
	}
	return home, nil
}
