package cmdexec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealCommanderReturnsStdout(t *testing.T) {
	out, err := NewRealCommander().Run(context.Background(), "sh", "-c", "echo 1; echo noise >&2")
	require.NoError(t, err)
	assert.Equal(t, "1\n", string(out))
}

func TestRealCommanderMissingBinary(t *testing.T) {
	_, err := NewRealCommander().Run(context.Background(), "cdw-definitely-not-installed")
	assert.Error(t, err)
}

func TestRealCommanderNonZeroExit(t *testing.T) {
	_, err := NewRealCommander().Run(context.Background(), "sh", "-c", "exit 3")
	assert.Error(t, err)
}
