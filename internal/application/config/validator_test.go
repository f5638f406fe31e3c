package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/cdw/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.Config
		wantErr string
	}{
		{name: "defaults", cfg: domain.Config{MountRoot: "/mnt", ConfigDir: "/home/wsl/.config/cdw"}},
		{name: "empty is fine", cfg: domain.Config{}},
		{name: "pinned alias", cfg: domain.Config{Shell: "nu"}},
		{name: "relative mount root", cfg: domain.Config{MountRoot: "mnt"}, wantErr: "mount_root must be absolute"},
		{name: "relative config dir", cfg: domain.Config{ConfigDir: "cdw"}, wantErr: "config_dir must be absolute"},
		{name: "unknown shell", cfg: domain.Config{Shell: "tcsh"}, wantErr: "unsupported shell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
