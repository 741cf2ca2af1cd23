package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glazeapp/glaze/internal/buildspec"
	"github.com/glazeapp/glaze/internal/bundler"
	"github.com/glazeapp/glaze/internal/detect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout captures stdout during test execution
func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestAssembleRequest_FileMode(t *testing.T) {
	req, err := assembleRequest("src/calculator.py", "", "dist", "app.ico", true, false,
		[]string{"custom"}, []string{"requests"})
	require.NoError(t, err)

	assert.Equal(t, "calculator", req.AppName, "name defaults to the script basename")
	assert.Equal(t, "src/calculator.py", req.Script)
	assert.Empty(t, req.Code)
	assert.Equal(t, "dist", req.OutputDir)
	assert.Equal(t, "app.ico", req.IconPath)
	assert.False(t, req.Console, "--windowed hides the console")
	assert.True(t, req.AutoDetect)
	assert.Equal(t, []string{"custom"}, req.HiddenImports)
	assert.Equal(t, []string{"requests"}, req.Packages)
}

func TestAssembleRequest_FileModeExplicitName(t *testing.T) {
	req, err := assembleRequest("app.py", "Calculator", ".", "", false, true, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Calculator", req.AppName)
	assert.True(t, req.Console)
	assert.False(t, req.AutoDetect)
}

func TestAssembleRequest_ManifestMode(t *testing.T) {
	dir := t.TempDir()
	want := &buildspec.Request{
		AppName:    "FromManifest",
		Script:     "app.py",
		OutputDir:  "build",
		Console:    true,
		AutoDetect: true,
	}
	require.NoError(t, buildspec.SaveManifest(want, dir))
	t.Chdir(dir)

	var req *buildspec.Request
	var err error
	out := captureStdout(func() {
		req, err = assembleRequest("", "", ".", "", false, false, nil, nil)
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Using glaze.yml")
	assert.Equal(t, "FromManifest", req.AppName)
	assert.Equal(t, "build", req.OutputDir)
}

func TestResolveDependencies_AutoDetect(t *testing.T) {
	req := &buildspec.Request{
		AppName:    "MyApp",
		Code:       "import tkinter\nfrom PIL import Image\n",
		AutoDetect: true,
	}

	var res detect.Resolution
	out := captureStdout(func() {
		res = resolveDependencies(req)
	})

	assert.Contains(t, out, "Detected imports: PIL, tkinter")
	assert.Contains(t, res.HiddenImports, "tkinter.ttk")
	assert.Contains(t, res.HiddenImports, "_tkinter")
	assert.Contains(t, res.HiddenImports, "PIL.ImageTk")
	assert.Contains(t, res.Packages, "pillow")
	assert.Equal(t, []string{"PIL"}, res.CollectAll)
}

func TestResolveDependencies_Manual(t *testing.T) {
	req := &buildspec.Request{
		AppName:       "MyApp",
		Code:          "import tkinter\n",
		AutoDetect:    false,
		HiddenImports: []string{"custom_module"},
		Packages:      []string{"requests"},
	}

	var res detect.Resolution
	out := captureStdout(func() {
		res = resolveDependencies(req)
	})

	assert.NotContains(t, out, "Analyzing")
	assert.Equal(t, []string{"custom_module"}, res.HiddenImports)
	assert.Equal(t, []string{"requests"}, res.Packages)
}

func TestResolveDependencies_ScriptFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(script, []byte("import numpy\n"), 0o644))

	req := &buildspec.Request{AppName: "MyApp", Script: script, AutoDetect: true}

	var res detect.Resolution
	captureStdout(func() {
		res = resolveDependencies(req)
	})

	assert.Contains(t, res.Packages, "numpy")
	assert.Contains(t, res.HiddenImports, "numpy")
}

func TestReportResult_Success(t *testing.T) {
	req := &buildspec.Request{AppName: "MyApp"}
	result := &bundler.Result{
		OK:      true,
		ExePath: filepath.Join("dist", "MyApp"),
		Size:    2_621_440, // 2.5 MB
	}

	out := captureStdout(func() {
		reportResult(req, result)
	})

	assert.Contains(t, out, "Executable created successfully!")
	assert.Contains(t, out, "📍 Location: "+filepath.Join("dist", "MyApp"))
	assert.Contains(t, out, "📊 Size: 2.50 MB")
	assert.NotContains(t, out, "sys._MEIPASS")
}

func TestReportResult_SuccessWithBundledFiles(t *testing.T) {
	req := &buildspec.Request{
		AppName:   "MyApp",
		DataFiles: []buildspec.DataFile{{Source: "logo.png", Dest: "."}},
	}
	result := &bundler.Result{OK: true, ExePath: "MyApp", Size: 1}

	out := captureStdout(func() {
		reportResult(req, result)
	})
	assert.Contains(t, out, "sys._MEIPASS")
}

func TestReportResult_Failure(t *testing.T) {
	stderr := "Traceback (most recent call last):\nModuleNotFoundError: No module named 'widget'\n"
	req := &buildspec.Request{AppName: "MyApp"}
	result := &bundler.Result{
		OK:     false,
		Stderr: stderr,
		Hint:   "💡 Tip: Try installing missing modules or add them to hidden imports",
	}

	out := captureStdout(func() {
		reportResult(req, result)
	})

	assert.Contains(t, out, "BUILD FAILED")
	assert.Contains(t, out, stderr, "stderr must appear unmodified")
	assert.Contains(t, out, "💡 Tip:")
}

func TestDetectTarget_File(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(script, []byte("import pygame\n"), 0o644))

	imports, err := detectTarget([]string{script})
	require.NoError(t, err)
	assert.Equal(t, []string{"pygame"}, imports)
}

func TestDetectTarget_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte("import numpy\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.py"), []byte("import requests\n"), 0o644))

	imports, err := detectTarget([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"numpy", "requests"}, imports)
}

func TestDetectTarget_MissingPath(t *testing.T) {
	_, err := detectTarget([]string{filepath.Join(t.TempDir(), "nope.py")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot scan")
}

func TestCommandWiring(t *testing.T) {
	root := RootCmd()
	root.AddCommand(PackageCmd(), DetectCmd(), InitCmd(), DoctorCmd(), VersionCmd())

	names := make([]string, 0, 5)
	for _, sub := range root.Commands() {
		names = append(names, strings.Fields(sub.Use)[0])
	}
	for _, want := range []string{"package", "detect", "init", "doctor", "version"} {
		assert.Contains(t, names, want)
	}
}
