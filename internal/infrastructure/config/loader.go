package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	rootassets "github.com/doeshing/cdw/assets"
	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/ports"
)

// FileLoader loads YAML configuration from $XDG_CONFIG_HOME/cdw/config.yaml (overridable via CDW_CONFIG).
type FileLoader struct {
	fs           billy.Filesystem
	overridePath string
	configHome   string
}

// NewFileLoader builds a new loader. Paths handed to fs are absolute.
func NewFileLoader(fs billy.Filesystem, path string) *FileLoader {
	return &FileLoader{fs: fs, overridePath: path, configHome: xdg.ConfigHome}
}

// Load implements ports.ConfigProvider. A missing file yields defaults and is not created.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := util.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return l.hydrateDefaults(cfg), nil
}

// Path returns the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv(domain.EnvConfigPath); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(l.defaultConfigDir(), "config.yaml")
}

// EnsureDefault writes the embedded default config if no file exists yet.
func (l *FileLoader) EnsureDefault() (bool, error) {
	path := l.Path()
	if _, err := l.fs.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := l.fs.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return false, err
	}
	return true, util.WriteFile(l.fs, path, rootassets.DefaultConfigYAML, domain.SecureFilePermissions)
}

// DefaultConfig returns the built-in configuration.
func (l *FileLoader) DefaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(rootassets.DefaultConfigYAML, &cfg); err != nil {
		cfg = domain.Config{ConfigFormatVersion: "1"}
	}
	return l.hydrateDefaults(cfg)
}

func (l *FileLoader) hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.MountRoot == "" {
		cfg.MountRoot = domain.DefaultMountRoot
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = l.defaultConfigDir()
	} else {
		cfg.ConfigDir = expandPath(cfg.ConfigDir)
	}
	if debug := os.Getenv(domain.EnvDebug); strings.EqualFold(debug, "1") || strings.EqualFold(debug, "true") {
		cfg.Debug = true
	}
	return cfg
}

func (l *FileLoader) defaultConfigDir() string {
	home := l.configHome
	if home == "" {
		home = filepath.Join(userHomeDir(), ".config")
	}
	return filepath.Join(home, "cdw")
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(userHomeDir(), path[2:])
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigStore = (*FileLoader)(nil)
