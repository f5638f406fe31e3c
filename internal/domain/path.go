package domain

import "strings"

// DefaultMountRoot is where WSL mounts Windows drives unless automount.root says otherwise.
const DefaultMountRoot = "/mnt"

// Translator converts drive-rooted Windows paths into paths under MountRoot.
type Translator struct {
	MountRoot string
}

// NewTranslator builds a translator; an empty root means DefaultMountRoot.
func NewTranslator(mountRoot string) Translator {
	return Translator{MountRoot: mountRoot}
}

// Translate converts path with the default mount root.
func Translate(path string) string {
	return Translator{}.Translate(path)
}

// Translate never fails. Anything that is not "X:" or "X:\..." is returned as is.
func (t Translator) Translate(path string) string {
	if len(path) < 2 || path[1] != ':' || !isASCIILetter(path[0]) {
		return path
	}

	drive := strings.ToLower(path[:1])
	switch {
	case len(path) == 2:
		return t.root() + "/" + drive + "/"
	case path[2] == '\\':
		rest := strings.ReplaceAll(path[3:], `\`, "/")
		return t.root() + "/" + drive + "/" + rest
	default:
		return path
	}
}

func (t Translator) root() string {
	if t.MountRoot == "" {
		return DefaultMountRoot
	}
	return strings.TrimRight(t.MountRoot, "/")
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
