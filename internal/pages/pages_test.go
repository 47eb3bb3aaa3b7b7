package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestTemplateResolver(t *testing.T) {
	r := TemplateResolver{Dir: "templates"}
	assert.Equal(t, filepath.Join("templates", "school1"), r.Resolve("school1"))

	r = TemplateResolver{}
	assert.Equal(t, "school1", r.Resolve("school1"))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "school2.html"), "<p>two</p>")
	writeFile(t, filepath.Join(dir, "school1.htm"), "<p>one</p>")
	writeFile(t, filepath.Join(dir, "school3", "index.html"), "<p>three</p>")
	writeFile(t, filepath.Join(dir, "empty", "notes.txt"), "nothing")
	writeFile(t, filepath.Join(dir, "readme.md"), "# not a page")
	writeFile(t, filepath.Join(dir, ".hidden.html"), "<p>hidden</p>")

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"school1", "school2", "school3"}, found)
}

func TestDiscoverNestedTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Aarhus", "Skole1", "room2.html"), "")
	writeFile(t, filepath.Join(dir, "Aarhus", "Skole1", "room1.html"), "")
	writeFile(t, filepath.Join(dir, "Aarhus", "Skole2", "index.html"), "")
	writeFile(t, filepath.Join(dir, "Odense", "Skole3", "gym.htm"), "")
	writeFile(t, filepath.Join(dir, "Odense", "Skole3", "notes.txt"), "")
	writeFile(t, filepath.Join(dir, "Odense", ".cache", "room9.html"), "")
	writeFile(t, filepath.Join(dir, ".git", "index.html"), "")

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Aarhus/Skole1/room1",
		"Aarhus/Skole1/room2",
		"Aarhus/Skole2",
		"Odense/Skole3/gym",
	}, found)
}

func TestNestedPagesResolveToTheirFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Aarhus", "Skole1", "room1.html"), "")

	found, err := Discover(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"Aarhus/Skole1/room1"}, found)

	location := TemplateResolver{Dir: dir}.Resolve(found[0])
	assert.Equal(t, filepath.Join(dir, "Aarhus", "Skole1", "room1"), location)
	assert.FileExists(t, location+".html")
}

func TestDiscoverDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "school1.html"), "")
	writeFile(t, filepath.Join(dir, "school1", "index.html"), "")

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"school1"}, found)
}

func TestDiscoverEmptyDirectory(t *testing.T) {
	found, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDiscoverMissingDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
