package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/ports"
)

// Installer writes the wrapper function and completion files and keeps a
// single source line for them in the shell's startup file.
type Installer struct {
	fs        billy.Filesystem
	home      string
	configDir string
	logger    ports.Logger
}

// NewInstaller builds a shell installer. Paths handed to fs are absolute.
func NewInstaller(fs billy.Filesystem, home, configDir string, logger ports.Logger) *Installer {
	return &Installer{fs: fs, home: home, configDir: configDir, logger: logger}
}

// Install writes function.<ext> and autocomplete.<ext> and appends the source line when missing.
func (i *Installer) Install(shell domain.ShellKind) (domain.ShellInstallResult, error) {
	d, err := dialectFor(shell)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	if i.home == "" {
		return domain.ShellInstallResult{}, domain.ErrHomeNotSet
	}

	functionPath, completionPath := i.scriptPaths(d)
	if err := i.fs.MkdirAll(i.configDir, domain.DirectoryPermissions); err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("create %s: %w", i.configDir, err)
	}
	if err := util.WriteFile(i.fs, functionPath, []byte(FunctionScript(shell)), domain.ScriptFilePermissions); err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("write function file: %w", err)
	}
	if err := util.WriteFile(i.fs, completionPath, []byte(CompletionScript(shell)), domain.ScriptFilePermissions); err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("write autocomplete file: %w", err)
	}

	rcFile := i.rcPath(d)
	line := d.sourceLine(functionPath, completionPath)
	updated, err := i.ensureRCLine(rcFile, line)
	if err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("update %s: %w", rcFile, err)
	}
	i.logger.Debug("shell integration installed", map[string]interface{}{
		"shell": shell.String(), "rc_file": rcFile, "rc_updated": updated,
	})

	return domain.ShellInstallResult{
		Shell:          shell,
		FunctionPath:   functionPath,
		CompletionPath: completionPath,
		RCFile:         rcFile,
		SourceLine:     line,
		RCUpdated:      updated,
	}, nil
}

// Uninstall removes the source line from the rc file; the scripts are kept.
func (i *Installer) Uninstall(shell domain.ShellKind) (domain.ShellInstallResult, error) {
	d, err := dialectFor(shell)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	if i.home == "" {
		return domain.ShellInstallResult{}, domain.ErrHomeNotSet
	}
	functionPath, completionPath := i.scriptPaths(d)
	rcFile := i.rcPath(d)
	line := d.sourceLine(functionPath, completionPath)

	updated, err := i.removeRCLine(rcFile, line)
	if err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("update %s: %w", rcFile, err)
	}
	return domain.ShellInstallResult{
		Shell:          shell,
		FunctionPath:   functionPath,
		CompletionPath: completionPath,
		RCFile:         rcFile,
		SourceLine:     line,
		RCUpdated:      updated,
	}, nil
}

// Status reports current integration state.
func (i *Installer) Status(shell domain.ShellKind) domain.ShellStatus {
	status := domain.ShellStatus{Shell: shell}
	d, err := dialectFor(shell)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	if i.home == "" {
		status.Error = domain.ErrHomeNotSet.Error()
		return status
	}

	functionPath, completionPath := i.scriptPaths(d)
	status.FunctionPath = functionPath
	status.RCFile = i.rcPath(d)

	if info, err := i.fs.Stat(functionPath); err == nil && info.Mode().IsRegular() {
		status.FunctionExists = true
	}
	if contents, err := util.ReadFile(i.fs, status.RCFile); err == nil {
		status.LinePresent = strings.Contains(string(contents), d.sourceLine(functionPath, completionPath))
	}
	return status
}

// FunctionSource returns the wrapper function for shell.
func (i *Installer) FunctionSource(shell domain.ShellKind) string {
	return FunctionScript(shell)
}

func (i *Installer) scriptPaths(d dialect) (string, string) {
	return filepath.Join(i.configDir, "function."+d.ext), filepath.Join(i.configDir, "autocomplete."+d.ext)
}

func (i *Installer) rcPath(d dialect) string {
	return filepath.Join(i.home, d.rcFile)
}

// ensureRCLine appends "\n# Added by cdw\n<line>\n" unless line is already present.
func (i *Installer) ensureRCLine(path, line string) (bool, error) {
	contents, err := util.ReadFile(i.fs, path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err == nil && strings.Contains(string(contents), line) {
		return false, nil
	}
	if err := i.fs.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return false, err
	}

	f, err := i.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.ScriptFilePermissions)
	if err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(f, "\n%s\n%s\n", domain.RCMarker, line); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}

// removeRCLine drops line and the marker directly above it.
func (i *Installer) removeRCLine(path, line string) (bool, error) {
	contents, err := util.ReadFile(i.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	lines := strings.Split(string(contents), "\n")
	var filtered []string
	removed := false
	for _, existing := range lines {
		if strings.Contains(existing, line) {
			removed = true
			if n := len(filtered); n > 0 && filtered[n-1] == domain.RCMarker {
				filtered = filtered[:n-1]
			}
			continue
		}
		filtered = append(filtered, existing)
	}
	if !removed {
		return false, nil
	}
	final := strings.Join(filtered, "\n")
	if !strings.HasSuffix(final, "\n") {
		final += "\n"
	}
	return true, util.WriteFile(i.fs, path, []byte(final), domain.ScriptFilePermissions)
}

var _ ports.ShellIntegrator = (*Installer)(nil)
