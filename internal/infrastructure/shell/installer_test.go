package shell

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/pkg/logger"
)

const (
	testHome      = "/home/wsl"
	testConfigDir = "/home/wsl/.config/cdw"
)

func newTestInstaller() (*Installer, func(string) string) {
	fs := memfs.New()
	read := func(path string) string {
		data, err := util.ReadFile(fs, path)
		if err != nil {
			return ""
		}
		return string(data)
	}
	return NewInstaller(fs, testHome, testConfigDir, logger.Nop()), read
}

func TestInstallerInstallPaths(t *testing.T) {
	tests := []struct {
		shell      domain.ShellKind
		function   string
		completion string
		rcFile     string
		sourceLine string
	}{
		{
			shell:      domain.ShellBash,
			function:   testConfigDir + "/function.bash",
			completion: testConfigDir + "/autocomplete.bash",
			rcFile:     testHome + "/.bashrc",
			sourceLine: ". " + testConfigDir + "/function.bash",
		},
		{
			shell:      domain.ShellZsh,
			function:   testConfigDir + "/function.zsh",
			completion: testConfigDir + "/autocomplete.zsh",
			rcFile:     testHome + "/.zshrc",
			sourceLine: ". " + testConfigDir + "/function.zsh",
		},
		{
			shell:      domain.ShellFish,
			function:   testConfigDir + "/function.fish",
			completion: testConfigDir + "/autocomplete.fish",
			rcFile:     testHome + "/.config/fish/config.fish",
			sourceLine: "source " + testConfigDir + "/function.fish; source " + testConfigDir + "/autocomplete.fish",
		},
		{
			shell:      domain.ShellPowerShell,
			function:   testConfigDir + "/function.ps1",
			completion: testConfigDir + "/autocomplete.ps1",
			rcFile:     testHome + "/.config/powershell/Microsoft.PowerShell_profile.ps1",
			sourceLine: ". " + testConfigDir + "/function.ps1",
		},
		{
			shell:      domain.ShellNushell,
			function:   testConfigDir + "/function.nu",
			completion: testConfigDir + "/autocomplete.nu",
			rcFile:     testHome + "/.config/nushell/config.nu",
			sourceLine: "source " + testConfigDir + "/function.nu",
		},
		{
			shell:      domain.ShellXonsh,
			function:   testConfigDir + "/function.xonsh",
			completion: testConfigDir + "/autocomplete.xonsh",
			rcFile:     testHome + "/.xonshrc",
			sourceLine: "source " + testConfigDir + "/function.xonsh",
		},
		{
			shell:      domain.ShellKsh,
			function:   testConfigDir + "/function.ksh",
			completion: testConfigDir + "/autocomplete.ksh",
			rcFile:     testHome + "/.kshrc",
			sourceLine: ". " + testConfigDir + "/function.ksh",
		},
		{
			shell:      domain.ShellSh,
			function:   testConfigDir + "/function.sh",
			completion: testConfigDir + "/autocomplete.sh",
			rcFile:     testHome + "/.profile",
			sourceLine: ". " + testConfigDir + "/function.sh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell.String(), func(t *testing.T) {
			installer, read := newTestInstaller()
			result, err := installer.Install(tt.shell)
			require.NoError(t, err)

			assert.Equal(t, tt.function, result.FunctionPath)
			assert.Equal(t, tt.completion, result.CompletionPath)
			assert.Equal(t, tt.rcFile, result.RCFile)
			assert.Equal(t, tt.sourceLine, result.SourceLine)
			assert.True(t, result.RCUpdated)

			assert.Equal(t, FunctionScript(tt.shell), read(tt.function))
			assert.Equal(t, CompletionScript(tt.shell), read(tt.completion))
			assert.Equal(t, "\n# Added by cdw\n"+tt.sourceLine+"\n", read(tt.rcFile))
		})
	}
}

func TestInstallerIsIdempotent(t *testing.T) {
	installer, read := newTestInstaller()

	first, err := installer.Install(domain.ShellZsh)
	require.NoError(t, err)
	second, err := installer.Install(domain.ShellZsh)
	require.NoError(t, err)

	assert.True(t, first.RCUpdated)
	assert.False(t, second.RCUpdated)
	assert.Equal(t, 1, strings.Count(read(first.RCFile), first.SourceLine))
}

func TestInstallerAppendsToExistingRC(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, testHome+"/.bashrc", []byte("export EDITOR=vim\n"), 0o644))

	installer := NewInstaller(fs, testHome, testConfigDir, logger.Nop())
	result, err := installer.Install(domain.ShellBash)
	require.NoError(t, err)

	data, err := util.ReadFile(fs, result.RCFile)
	require.NoError(t, err)
	assert.Equal(t, "export EDITOR=vim\n\n# Added by cdw\n"+result.SourceLine+"\n", string(data))
}

func TestInstallerUninstall(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, testHome+"/.zshrc", []byte("setopt autocd\n"), 0o644))
	installer := NewInstaller(fs, testHome, testConfigDir, logger.Nop())

	_, err := installer.Install(domain.ShellZsh)
	require.NoError(t, err)

	removed, err := installer.Uninstall(domain.ShellZsh)
	require.NoError(t, err)
	assert.True(t, removed.RCUpdated)

	data, err := util.ReadFile(fs, removed.RCFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), removed.SourceLine)
	assert.NotContains(t, string(data), domain.RCMarker)
	assert.Contains(t, string(data), "setopt autocd")

	again, err := installer.Uninstall(domain.ShellZsh)
	require.NoError(t, err)
	assert.False(t, again.RCUpdated)

	status := installer.Status(domain.ShellZsh)
	assert.True(t, status.FunctionExists)
	assert.False(t, status.LinePresent)
}

func TestInstallerUninstallWithoutRCFile(t *testing.T) {
	installer, _ := newTestInstaller()
	result, err := installer.Uninstall(domain.ShellFish)
	require.NoError(t, err)
	assert.False(t, result.RCUpdated)
}

func TestInstallerStatus(t *testing.T) {
	installer, _ := newTestInstaller()

	before := installer.Status(domain.ShellBash)
	assert.False(t, before.FunctionExists)
	assert.False(t, before.LinePresent)
	assert.Empty(t, before.Error)

	_, err := installer.Install(domain.ShellBash)
	require.NoError(t, err)

	after := installer.Status(domain.ShellBash)
	assert.True(t, after.FunctionExists)
	assert.True(t, after.LinePresent)
	assert.Equal(t, testHome+"/.bashrc", after.RCFile)
}

func TestInstallerRejectsUnknownShell(t *testing.T) {
	installer, _ := newTestInstaller()

	_, err := installer.Install(domain.ShellUnknown)
	assert.ErrorIs(t, err, domain.ErrUnsupportedShell)

	_, err = installer.Uninstall(domain.ShellUnknown)
	assert.ErrorIs(t, err, domain.ErrUnsupportedShell)

	assert.NotEmpty(t, installer.Status(domain.ShellUnknown).Error)
}

func TestInstallerRequiresHome(t *testing.T) {
	installer := NewInstaller(memfs.New(), "", testConfigDir, logger.Nop())
	_, err := installer.Install(domain.ShellBash)
	assert.ErrorIs(t, err, domain.ErrHomeNotSet)
}
