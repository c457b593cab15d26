// Package theme keeps the two-valued UI theme: it is loaded from a
// key-value store, mirrored onto a document class list and changed only by
// explicit user action. The OS color-scheme preference is tracked on the
// side as a read-only signal.
package theme

import "fmt"

// Theme is the active UI theme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the key the theme is persisted under.
const StorageKey = "theme"

// Default is used when nothing valid is persisted.
const Default = Light

// Valid reports whether t is Light or Dark.
func (t Theme) Valid() bool { return t == Light || t == Dark }

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse converts a stored or user-supplied string.
func Parse(s string) (Theme, error) {
	t := Theme(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
	return t, nil
}
