package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDetect_PyProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", `[project]
name = "photo-viewer"
version = "1.2.0"
dependencies = [
    "pillow>=9.0",
    "requests==2.31.0",
    "numpy",
]
`)
	writeFile(t, dir, "viewer.py", "import PIL\n")

	info, err := Detect(dir)
	require.NoError(t, err)

	assert.Equal(t, "photo-viewer", info.Name)
	assert.Equal(t, "viewer.py", info.Script)
	assert.Equal(t, []string{"pillow", "requests", "numpy"}, info.Packages)
}

func TestDetect_RequirementsFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "requirements.txt", `# production deps
pillow>=9.0
requests

-r dev-requirements.txt
pygame~=2.5
`)

	info, err := Detect(dir)
	require.NoError(t, err)

	// No pyproject.toml: the directory name stands in
	assert.Equal(t, filepath.Base(dir), info.Name)
	assert.Equal(t, []string{"pillow", "requests", "pygame"}, info.Packages)
}

func TestDetect_PyProjectWinsOverRequirements(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", `[project]
name = "game"
dependencies = ["pygame"]
`)
	writeFile(t, dir, "requirements.txt", "requests\n")

	info, err := Detect(dir)
	require.NoError(t, err)

	assert.Equal(t, "game", info.Name)
	assert.Equal(t, []string{"pygame"}, info.Packages)
}

func TestDetect_EmptyDir(t *testing.T) {
	dir := t.TempDir()

	info, err := Detect(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), info.Name)
	assert.Empty(t, info.Packages)
	assert.Empty(t, info.Script)
}

func TestFindEntryScript(t *testing.T) {
	t.Run("single script wins", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "tool.py", "")

		script, err := findEntryScript(dir)
		require.NoError(t, err)
		assert.Equal(t, "tool.py", script)
	})

	t.Run("setup.py never counts", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "setup.py", "")
		writeFile(t, dir, "tool.py", "")

		script, err := findEntryScript(dir)
		require.NoError(t, err)
		assert.Equal(t, "tool.py", script)
	})

	t.Run("conventional name breaks ties", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "helpers.py", "")
		writeFile(t, dir, "main.py", "")
		writeFile(t, dir, "models.py", "")

		script, err := findEntryScript(dir)
		require.NoError(t, err)
		assert.Equal(t, "main.py", script)
	})

	t.Run("ambiguous stays empty", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "alpha.py", "")
		writeFile(t, dir, "beta.py", "")

		script, err := findEntryScript(dir)
		require.NoError(t, err)
		assert.Empty(t, script)
	})
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		dep  string
		want string
	}{
		{"pillow", "pillow"},
		{"pillow>=9.0", "pillow"},
		{"requests==2.31.0", "requests"},
		{"pygame~=2.5", "pygame"},
		{"numpy<2", "numpy"},
		{"uvicorn[standard]>=0.23", "uvicorn"},
		{`httpx; python_version >= "3.8"`, "httpx"},
		{"pandas  # data frames", "pandas"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.dep, func(t *testing.T) {
			assert.Equal(t, tt.want, packageName(tt.dep))
		})
	}
}
