package buildspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	content := `app:
  name: PhotoViewer
  icon: viewer.ico
  console: false
build:
  script: viewer.py
  output_dir: dist
  data_files:
    - source: logo.png
      dest: .
    - source: themes
      dest: assets
dependencies:
  auto_detect: false
  hidden_imports:
    - PIL.ImageTk
  packages:
    - pillow
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0644))

	req, err := LoadManifest(dir)
	require.NoError(t, err)

	assert.Equal(t, "PhotoViewer", req.AppName)
	assert.Equal(t, "viewer.py", req.Script)
	assert.Equal(t, "viewer.ico", req.IconPath)
	assert.Equal(t, "dist", req.OutputDir)
	assert.False(t, req.Console)
	assert.False(t, req.AutoDetect)
	assert.Equal(t, []DataFile{
		{Source: "logo.png", Dest: "."},
		{Source: "themes", Dest: "assets"},
	}, req.DataFiles)
	assert.Equal(t, []string{"PIL.ImageTk"}, req.HiddenImports)
	assert.Equal(t, []string{"pillow"}, req.Packages)
}

func TestLoadManifest_Defaults(t *testing.T) {
	dir := t.TempDir()
	content := `app:
  name: Minimal
build:
  script: main.py
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0644))

	req, err := LoadManifest(dir)
	require.NoError(t, err)

	// Omitted keys take the wizard's defaults
	assert.Equal(t, ".", req.OutputDir)
	assert.True(t, req.Console)
	assert.True(t, req.AutoDetect)
	assert.Empty(t, req.DataFiles)
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	require.Error(t, err)
}

func TestLoadManifest_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("app: [not: valid"), 0644))

	_, err := LoadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestSaveManifest_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	req := &Request{
		AppName:       "Sprite",
		Script:        "game.py",
		OutputDir:     "out",
		IconPath:      "sprite.ico",
		Console:       false,
		AutoDetect:    true,
		DataFiles:     []DataFile{{Source: "sounds", Dest: "sounds"}},
		HiddenImports: []string{"pygame.mixer"},
		Packages:      []string{"pygame"},
	}

	require.NoError(t, SaveManifest(req, dir))
	assert.True(t, HasManifest(dir))

	loaded, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, req, loaded)
}

func TestHasManifest(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, HasManifest(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("app:\n  name: X\n"), 0644))
	assert.True(t, HasManifest(dir))
}
