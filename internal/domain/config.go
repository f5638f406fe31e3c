package domain

// Config mirrors $XDG_CONFIG_HOME/cdw/config.yaml.
type Config struct {
	ConfigFormatVersion string `yaml:"config_format_version"`
	// MountRoot is the WSL automount root drives live under.
	MountRoot string `yaml:"mount_root"`
	// Shell pins the dialect used by init and display; empty means detect.
	Shell string `yaml:"shell,omitempty"`
	// ConfigDir holds the installed function and completion files.
	ConfigDir string `yaml:"config_dir,omitempty"`
	Debug     bool   `yaml:"debug"`
}

// PinnedShell returns the configured shell, if any parses.
func (c Config) PinnedShell() (ShellKind, bool) {
	if c.Shell == "" {
		return ShellUnknown, false
	}
	kind, err := ParseShellKind(c.Shell)
	if err != nil {
		return ShellUnknown, false
	}
	return kind, true
}
