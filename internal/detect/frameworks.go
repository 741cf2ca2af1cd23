package detect

// guiFrameworks maps an importable GUI framework module to the pip packages
// that provide it. An empty list means the framework ships with the
// interpreter itself.
var guiFrameworks = map[string][]string{
	"tkinter": {},
	"PyQt5":   {"PyQt5"},
	"PyQt6":   {"PyQt6"},
	"PySide2": {"PySide2"},
	"PySide6": {"PySide6"},
	"wx":      {"wxPython"},
	"pygame":  {"pygame"},
	"pyglet":  {"pyglet"},
	"kivy":    {"kivy"},
}

// extraPackages lists well-known libraries whose import name differs from
// (or simply implies) a pip package. Checked in order so results stay
// deterministic.
var extraPackages = []struct {
	module string
	pkg    string
}{
	{"PIL", "pillow"},
	{"Image", "pillow"},
	{"numpy", "numpy"},
	{"requests", "requests"},
}

// hiddenImports maps a detected module to the submodules PyInstaller's
// static analysis misses: dynamically loaded toolkit pieces, C extension
// entry points, and backend renderers.
var hiddenImports = map[string][]string{
	"tkinter": {
		"tkinter",
		"tkinter.ttk",
		"tkinter.messagebox",
		"tkinter.filedialog",
		"tkinter.font",
		"_tkinter",
	},
	"PyQt5": {
		"PyQt5.QtCore",
		"PyQt5.QtGui",
		"PyQt5.QtWidgets",
		"PyQt5.QtSvg",
	},
	"PyQt6": {
		"PyQt6.QtCore",
		"PyQt6.QtGui",
		"PyQt6.QtWidgets",
		"PyQt6.QtSvg",
	},
	"PySide2": {
		"PySide2.QtCore",
		"PySide2.QtGui",
		"PySide2.QtWidgets",
		"PySide2.QtSvg",
	},
	"PySide6": {
		"PySide6.QtCore",
		"PySide6.QtGui",
		"PySide6.QtWidgets",
		"PySide6.QtSvg",
	},
	"PIL": {
		"PIL",
		"PIL.Image",
		"PIL.ImageTk",
		"PIL.ImageDraw",
		"PIL.ImageFont",
	},
	"pygame": {
		"pygame",
		"pygame.mixer",
		"pygame.font",
	},
	"matplotlib": {
		"matplotlib",
		"matplotlib.backends.backend_tkagg",
		"matplotlib.backends.backend_qt5agg",
	},
}

// importAliases folds alternate spellings into the canonical table key.
// Tkinter is the Python 2 module name; Image is the old PIL interface.
var importAliases = map[string]string{
	"Tkinter": "tkinter",
	"Image":   "PIL",
}

// guiHints are substrings whose literal presence in lowercased source
// suggests a GUI application (used to pick the console-window default).
var guiHints = []string{"tkinter", "pyqt", "pyside", "wx.", "pygame"}
