package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSource(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			name: "plain import",
			code: "import foo",
			want: []string{"foo"},
		},
		{
			name: "from import",
			code: "from foo import bar",
			want: []string{"foo"},
		},
		{
			name: "dotted import keeps top-level name only",
			code: "import foo.bar",
			want: []string{"foo"},
		},
		{
			name: "dotted from import keeps top-level name only",
			code: "from foo.bar import baz",
			want: []string{"foo"},
		},
		{
			name: "indented imports inside try blocks count",
			code: "try:\n    import simplejson\nexcept ImportError:\n    import json",
			want: []string{"json", "simplejson"},
		},
		{
			name: "duplicates collapse",
			code: "import os\nimport os\nfrom os import path",
			want: []string{"os"},
		},
		{
			name: "commented-out import is ignored",
			code: "# import tkinter",
			want: nil,
		},
		{
			name: "relative import has no top-level name",
			code: "from . import helpers",
			want: nil,
		},
		{
			name: "only first name of a multi-import line is seen",
			code: "import os, sys",
			want: []string{"os"},
		},
		{
			name: "empty source",
			code: "",
			want: nil,
		},
		{
			name: "realistic program",
			code: "import tkinter\nfrom tkinter import ttk\n" +
				"from PIL import Image, ImageTk\nimport requests\n\n" +
				"root = tkinter.Tk()\nroot.mainloop()\n",
			want: []string{"PIL", "requests", "tkinter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanSource(tt.code)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(path, []byte("import pygame\nimport numpy\n"), 0644))

	imports, err := ScanFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"numpy", "pygame"}, imports)
}

func TestScanFile_Missing(t *testing.T) {
	_, err := ScanFile(filepath.Join(t.TempDir(), "nope.py"))
	require.Error(t, err)
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	write("main.py", "import tkinter\n")
	write("lib/util.py", "import requests\n")
	write("notes.txt", "import numpy\n")
	write("__pycache__/cached.py", "import numpy\n")
	write("venv/site.py", "import wx\n")
	write(".hidden/secret.py", "import kivy\n")

	imports, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"requests", "tkinter"}, imports)
}

func TestLooksLikeGUI(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "tkinter", code: "import tkinter\nroot = tkinter.Tk()", want: true},
		{name: "PyQt is case-insensitive", code: "from PyQt5 import QtWidgets", want: true},
		{name: "wxPython usage", code: "import wx\napp = wx.App()", want: true},
		{name: "pygame", code: "import pygame", want: true},
		{name: "plain script", code: "import os\nprint(os.getcwd())", want: false},
		{name: "empty", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeGUI(tt.code))
		})
	}
}
