package shell

import (
	"fmt"
	"path"
	"path/filepath"

	rootassets "github.com/doeshing/cdw/assets"
	"github.com/doeshing/cdw/internal/domain"
)

const (
	unsupportedFunction   = "# Unsupported shell\n"
	unsupportedCompletion = "# Autocomplete not supported for this shell\n"
)

// dialect describes how one shell is wired: which embedded scripts it uses,
// where its startup file lives and how that file sources the installed scripts.
type dialect struct {
	// ext names the installed files, function.<ext> and autocomplete.<ext>.
	ext string
	// functionAsset and completionAsset are paths inside rootassets.ShellScripts.
	functionAsset   string
	completionAsset string
	// rcFile is relative to the home directory.
	rcFile string
	// sourceCompletion adds the completion file to the source line.
	sourceCompletion bool
	sourceCommand    string
}

var dialects = map[domain.ShellKind]dialect{
	domain.ShellBash: {
		ext: "bash", functionAsset: "function.sh", completionAsset: "autocomplete.bash",
		rcFile: ".bashrc", sourceCommand: ".",
	},
	domain.ShellZsh: {
		ext: "zsh", functionAsset: "function.sh", completionAsset: "autocomplete.zsh",
		rcFile: ".zshrc", sourceCommand: ".",
	},
	domain.ShellKsh: {
		ext: "ksh", functionAsset: "function.sh",
		rcFile: ".kshrc", sourceCommand: ".",
	},
	domain.ShellSh: {
		ext: "sh", functionAsset: "function.sh",
		rcFile: ".profile", sourceCommand: ".",
	},
	domain.ShellFish: {
		ext: "fish", functionAsset: "function.fish", completionAsset: "autocomplete.fish",
		rcFile: filepath.Join(".config", "fish", "config.fish"), sourceCommand: "source", sourceCompletion: true,
	},
	domain.ShellNushell: {
		ext: "nu", functionAsset: "function.nu", completionAsset: "autocomplete.nu",
		rcFile: filepath.Join(".config", "nushell", "config.nu"), sourceCommand: "source",
	},
	domain.ShellPowerShell: {
		ext: "ps1", functionAsset: "function.ps1", completionAsset: "autocomplete.ps1",
		rcFile: filepath.Join(".config", "powershell", "Microsoft.PowerShell_profile.ps1"), sourceCommand: ".",
	},
	domain.ShellXonsh: {
		ext: "xonsh", functionAsset: "function.xonsh", completionAsset: "autocomplete.xonsh",
		rcFile: ".xonshrc", sourceCommand: "source",
	},
}

func dialectFor(kind domain.ShellKind) (dialect, error) {
	d, ok := dialects[kind]
	if !ok {
		return dialect{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedShell, kind)
	}
	return d, nil
}

// FunctionScript returns the wrapper function source for kind.
func FunctionScript(kind domain.ShellKind) string {
	d, ok := dialects[kind]
	if !ok {
		return unsupportedFunction
	}
	return readAsset(d.functionAsset, unsupportedFunction)
}

// CompletionScript returns the completion source for kind.
func CompletionScript(kind domain.ShellKind) string {
	d, ok := dialects[kind]
	if !ok || d.completionAsset == "" {
		return unsupportedCompletion
	}
	return readAsset(d.completionAsset, unsupportedCompletion)
}

func (d dialect) sourceLine(functionPath, completionPath string) string {
	line := fmt.Sprintf("%s %s", d.sourceCommand, functionPath)
	if d.sourceCompletion {
		line += fmt.Sprintf("; %s %s", d.sourceCommand, completionPath)
	}
	return line
}

func readAsset(name, fallback string) string {
	data, err := rootassets.ShellScripts.ReadFile(path.Join("shell", name))
	if err != nil {
		return fallback
	}
	return string(data)
}
