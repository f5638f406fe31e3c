package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeCommander_ExactMatch(t *testing.T) {
	fc := NewFakeCommander()
	fc.Register("bash --version", "GNU bash, version 5.2\n", nil)

	out, err := fc.Run(context.Background(), "bash", "--version")
	require.NoError(t, err)
	assert.Equal(t, "GNU bash, version 5.2\n", string(out))
	assert.True(t, fc.Called("bash"))
	assert.Equal(t, 1, fc.CallCount("bash --version"))
}

func TestFakeCommander_UnregisteredIsMissingBinary(t *testing.T) {
	fc := NewFakeCommander()
	_, err := fc.Run(context.Background(), "fish", "--version")
	assert.Error(t, err)
}

func TestFakeCommander_DefaultAndErrorResponses(t *testing.T) {
	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{Output: []byte("default")}
	fc.Register("ksh --version", "", errors.New("exit status 2"))

	out, err := fc.Run(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "default", string(out))

	_, err = fc.Run(context.Background(), "ksh", "--version")
	assert.EqualError(t, err, "exit status 2")
}

func TestFakeInspector(t *testing.T) {
	fi := NewFakeInspector().AddProcess(10, 5, "cdw").AddProcess(5, 1, "zsh")

	ppid, ok := fi.ParentID(context.Background(), 10)
	require.True(t, ok)
	assert.Equal(t, 5, ppid)

	name, ok := fi.Name(context.Background(), 5)
	require.True(t, ok)
	assert.Equal(t, "zsh", name)

	_, ok = fi.ParentID(context.Background(), 99)
	assert.False(t, ok)
}
