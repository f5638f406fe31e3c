package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/cdw/internal/domain"
)

func TestFunctionScriptSelectsDialect(t *testing.T) {
	tests := []struct {
		shell    domain.ShellKind
		contains string
	}{
		{shell: domain.ShellBash, contains: `command cdw "$@"`},
		{shell: domain.ShellZsh, contains: `command cdw "$@"`},
		{shell: domain.ShellKsh, contains: `command cdw "$@"`},
		{shell: domain.ShellSh, contains: `command cdw "$@"`},
		{shell: domain.ShellFish, contains: "function cdw"},
		{shell: domain.ShellNushell, contains: "def --wrapped --env cdw"},
		{shell: domain.ShellPowerShell, contains: "Set-Location"},
		{shell: domain.ShellXonsh, contains: "aliases['cdw']"},
	}

	for _, tt := range tests {
		t.Run(tt.shell.String(), func(t *testing.T) {
			assert.Contains(t, FunctionScript(tt.shell), tt.contains)
		})
	}
}

func TestEveryDialectHasAFunction(t *testing.T) {
	for _, kind := range domain.ShellKinds {
		assert.NotEqual(t, unsupportedFunction, FunctionScript(kind), kind.String())
	}
}

func TestCompletionScript(t *testing.T) {
	assert.Contains(t, CompletionScript(domain.ShellBash), "complete -F _cdw_autocomplete cdw")
	assert.Contains(t, CompletionScript(domain.ShellZsh), "#compdef cdw")
	assert.Equal(t, unsupportedCompletion, CompletionScript(domain.ShellKsh))
	assert.Equal(t, unsupportedCompletion, CompletionScript(domain.ShellSh))
	assert.Equal(t, unsupportedCompletion, CompletionScript(domain.ShellUnknown))
}
