package shell

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/doeshing/cdw/internal/domain"
)

type probe struct {
	name string
	args []string
	// want, when set, must equal the trimmed stdout.
	want string
}

var probes = map[domain.ShellKind]probe{
	domain.ShellBash:       {name: "bash", args: []string{"--version"}},
	domain.ShellZsh:        {name: "zsh", args: []string{"--version"}},
	domain.ShellFish:       {name: "fish", args: []string{"--version"}},
	domain.ShellPowerShell: {name: "pwsh", args: []string{"-Version"}},
	domain.ShellNushell:    {name: "nu", args: []string{"--version"}},
	domain.ShellXonsh:      {name: "xonsh", args: []string{"--version"}},
	domain.ShellKsh:        {name: "ksh", args: []string{"--version"}},
	domain.ShellSh:         {name: "sh", args: []string{"-c", "echo 1"}, want: "1"},
}

// EnumerateAvailable probes every known shell concurrently and returns the
// ones that answered, in domain.ShellKinds order.
func (d *Detector) EnumerateAvailable(ctx context.Context) []domain.ShellKind {
	found := make([]bool, len(domain.ShellKinds))

	var g errgroup.Group
	for i, kind := range domain.ShellKinds {
		g.Go(func() error {
			found[i] = d.probe(ctx, kind)
			return nil
		})
	}
	_ = g.Wait()

	var available []domain.ShellKind
	for i, kind := range domain.ShellKinds {
		if found[i] {
			available = append(available, kind)
		}
	}
	return available
}

func (d *Detector) probe(ctx context.Context, kind domain.ShellKind) bool {
	p, ok := probes[kind]
	if !ok || d.runner == nil {
		return false
	}
	out, err := d.runner.Run(ctx, p.name, p.args...)
	if err != nil {
		d.logger.Debug("shell probe failed", map[string]interface{}{"shell": kind.String(), "error": err.Error()})
		return false
	}
	if p.want != "" && strings.TrimSpace(string(out)) != p.want {
		d.logger.Debug("shell probe output mismatch", map[string]interface{}{"shell": kind.String(), "output": string(out)})
		return false
	}
	return true
}
