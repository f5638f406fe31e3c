package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/cdw/internal/application/navigate"
	"github.com/doeshing/cdw/internal/domain"
)

func buildWithConfig(t *testing.T, body string) *Container {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv(domain.EnvConfigPath, path)
	t.Setenv(domain.EnvDebug, "")
	t.Setenv(domain.EnvHome, dir)
	return BuildContainer(context.Background(), false)
}

func translate(t *testing.T, c *Container, path string) string {
	t.Helper()
	var out bytes.Buffer
	_, err := c.NavigateService.Run(&out, navigate.Request{WindowsPath: path})
	require.NoError(t, err)
	return out.String()
}

func TestBuildContainerUsesConfigFile(t *testing.T) {
	c := buildWithConfig(t, "mount_root: /media\n")

	require.NoError(t, c.ConfigErr)
	assert.Equal(t, "/media", c.Config.MountRoot)
	assert.Equal(t, "\a/media/c/Users\n", translate(t, c, `C:\Users`))
}

func TestBuildContainerFallsBackOnBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "unsupported shell", body: "shell: tcsh\n", wantErr: "unsupported shell"},
		{name: "relative mount root", body: "mount_root: mnt\n", wantErr: "mount_root"},
		{name: "broken yaml", body: "mount_root: [x\n", wantErr: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := buildWithConfig(t, tt.body)

			require.NotNil(t, c)
			assert.ErrorContains(t, c.ConfigErr, tt.wantErr)
			assert.Equal(t, domain.DefaultMountRoot, c.Config.MountRoot)
			assert.Equal(t, "\a/mnt/c/Users/me\n", translate(t, c, `C:\Users\me`))
			assert.NotNil(t, c.SetupService)
			assert.Same(t, c.ConfigLoader, c.DoctorService.ConfigProvider)
		})
	}
}
