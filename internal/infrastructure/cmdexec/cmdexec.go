// Package cmdexec runs external commands behind ports.Commander so that
// shell probing and process inspection can be faked in tests.
package cmdexec

import (
	"context"
	"os/exec"

	"github.com/doeshing/cdw/internal/ports"
)

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// NewRealCommander returns a commander backed by os/exec.
func NewRealCommander() *RealCommander {
	return &RealCommander{}
}

// Run returns the command's stdout. A missing binary or a non-zero exit is an error.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

var _ ports.Commander = (*RealCommander)(nil)
