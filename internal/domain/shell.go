package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ShellKind enumerates the shell dialects cdw can wrap.
type ShellKind int

const (
	ShellUnknown ShellKind = iota
	ShellBash
	ShellZsh
	ShellFish
	ShellPowerShell
	ShellNushell
	ShellXonsh
	ShellKsh
	ShellSh
)

// ShellKinds lists every supported dialect in probe order.
var ShellKinds = []ShellKind{
	ShellBash,
	ShellZsh,
	ShellFish,
	ShellPowerShell,
	ShellNushell,
	ShellXonsh,
	ShellKsh,
	ShellSh,
}

// shellNames maps each kind to its canonical display string.
var shellNames = map[ShellKind]string{
	ShellBash:       "bash",
	ShellZsh:        "zsh",
	ShellFish:       "fish",
	ShellPowerShell: "pwsh",
	ShellNushell:    "nushell",
	ShellXonsh:      "xonsh",
	ShellKsh:        "ksh",
	ShellSh:         "sh",
}

// shellAliases maps every accepted spelling to its kind.
var shellAliases = map[string]ShellKind{
	"bash":       ShellBash,
	"zsh":        ShellZsh,
	"fish":       ShellFish,
	"pwsh":       ShellPowerShell,
	"powershell": ShellPowerShell,
	"nu":         ShellNushell,
	"nushell":    ShellNushell,
	"xonsh":      ShellXonsh,
	"ksh":        ShellKsh,
	"sh":         ShellSh,
}

// String returns the canonical display name.
func (k ShellKind) String() string {
	if name, ok := shellNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseShellKind resolves a shell name, alias or executable path.
// "/usr/bin/pwsh.exe", "-zsh" (login shell) and " Bash " are all accepted.
func ParseShellKind(value string) (ShellKind, error) {
	name := normalizeShellName(value)
	if kind, ok := shellAliases[name]; ok {
		return kind, nil
	}
	return ShellUnknown, fmt.Errorf("%w: %q", ErrUnsupportedShell, value)
}

// ShellKindNames returns the canonical names in probe order.
func ShellKindNames() []string {
	names := make([]string, 0, len(ShellKinds))
	for _, k := range ShellKinds {
		names = append(names, k.String())
	}
	return names
}

func normalizeShellName(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	base := filepath.Base(strings.ReplaceAll(trimmed, `\`, "/"))
	base = strings.TrimPrefix(base, "-")
	base = strings.ToLower(base)
	return strings.TrimSuffix(base, ".exe")
}

// ShellInstallResult describes install/uninstall outcomes.
type ShellInstallResult struct {
	Shell          ShellKind
	FunctionPath   string
	CompletionPath string
	RCFile         string
	SourceLine     string
	RCUpdated      bool
}

// ShellStatus captures current integration state.
type ShellStatus struct {
	Shell          ShellKind
	FunctionPath   string
	RCFile         string
	FunctionExists bool
	LinePresent    bool
	Error          string
}
