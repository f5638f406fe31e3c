// Package process inspects the process table through ps(1).
package process

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/cdw/internal/ports"
)

// ProbeSelf names the short-lived sh process that runs each ps query.
// Its parent is cdw, so two ParentID hops from ProbeSelf reach the shell that started cdw.
const ProbeSelf = 0

// PSInspector answers process queries by running ps through sh.
type PSInspector struct {
	runner ports.Commander
	logger ports.Logger
}

// NewPSInspector builds an inspector on top of runner.
func NewPSInspector(runner ports.Commander, logger ports.Logger) *PSInspector {
	return &PSInspector{runner: runner, logger: logger}
}

// ParentID returns the parent pid of pid.
func (i *PSInspector) ParentID(ctx context.Context, pid int) (int, bool) {
	out, ok := i.query(ctx, pid, "ppid")
	if !ok {
		return 0, false
	}
	ppid, err := strconv.Atoi(out)
	if err != nil || ppid <= 0 {
		i.logger.Debug("unparsable ppid", map[string]interface{}{"pid": pid, "output": out})
		return 0, false
	}
	return ppid, true
}

// Name returns the command name of pid.
func (i *PSInspector) Name(ctx context.Context, pid int) (string, bool) {
	return i.query(ctx, pid, "comm")
}

func (i *PSInspector) query(ctx context.Context, pid int, field string) (string, bool) {
	out, err := i.runner.Run(ctx, "sh", "-c", psScript(pid, field))
	if err != nil {
		i.logger.Debug("ps query failed", map[string]interface{}{"pid": pid, "field": field, "error": err.Error()})
		return "", false
	}
	value := strings.TrimSpace(string(out))
	if value == "" {
		return "", false
	}
	return value, true
}

func psScript(pid int, field string) string {
	target := "$$"
	if pid != ProbeSelf {
		target = strconv.Itoa(pid)
	}
	return fmt.Sprintf("ps -p %s -o %s=", target, field)
}

var _ ports.ProcessInspector = (*PSInspector)(nil)
