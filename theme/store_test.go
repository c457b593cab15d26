package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "prefs.yaml"))
	_, ok, err := s.Get(StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_RoundTripAndKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	s := NewFileStore(path)
	require.NoError(t, s.Set("lang", "pt-BR"))
	require.NoError(t, s.Set(StorageKey, "dark"))

	reopened := NewFileStore(path)
	v, ok, err := reopened.Get(StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	v, _, _ = reopened.Get("lang")
	assert.Equal(t, "pt-BR", v)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "theme: dark")
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))
	_, _, err := NewFileStore(path).Get(StorageKey)
	assert.Error(t, err)
}

func TestFileStore_BacksPreference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	doc := NewDocument()
	p, err := New(NewFileStore(path), doc, nil)
	require.NoError(t, err)
	_, err = p.Toggle()
	require.NoError(t, err)

	again, err := New(NewFileStore(path), NewDocument(), nil)
	require.NoError(t, err)
	assert.Equal(t, Dark, again.Theme())
}

func TestDocument(t *testing.T) {
	d := NewDocument("a", "b", "a", "")
	assert.Equal(t, []string{"a", "b"}, d.Classes())
	d.Remove("a", "zzz")
	assert.Equal(t, []string{"b"}, d.Classes())
	assert.False(t, d.Has("a"))
}

func TestParse(t *testing.T) {
	th, err := Parse("dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, th)
	_, err = Parse("DARK")
	assert.Error(t, err)
	assert.Equal(t, Light, Dark.Opposite())
	assert.Equal(t, Dark, Light.Opposite())
}

func TestPaletteLevel(t *testing.T) {
	p := PaletteFor(Dark)
	assert.Equal(t, p.Error.Render("x"), p.Level("error").Render("x"))
	assert.Equal(t, p.Info.Render("x"), p.Level("nope").Render("x"))
}
