package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ScriptFilePermissions is used for function, completion and rc files (rw-r--r--)
	ScriptFilePermissions = 0o644
	// SecureFilePermissions is the permission for the config file (rw-------)
	SecureFilePermissions = 0o600
)

// Environment variables read by cdw.
const (
	EnvConfigPath = "CDW_CONFIG"
	EnvDebug      = "CDW_DEBUG"
	EnvHome       = "HOME"
)

// Shell markers consulted by detection.
const (
	EnvPSModulePath = "PSModulePath"
	EnvXonshVersion = "XONSH_VERSION"
	EnvNuVersion    = "NU_VERSION"
	EnvFishVersion  = "FISH_VERSION"
	EnvZshVersion   = "ZSH_VERSION"
	EnvBashVersion  = "BASH_VERSION"
)

// RCMarker precedes every line cdw appends to a shell rc file.
const RCMarker = "# Added by cdw"
