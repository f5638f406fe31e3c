// Package assets embeds the shell wrapper functions, completion scripts and
// the default configuration file.
package assets

import "embed"

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// ShellScripts holds function.<ext> and autocomplete.<ext> for every dialect.
//
//go:embed shell
var ShellScripts embed.FS
