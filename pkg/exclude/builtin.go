package exclude

// Builtin exclusion sets. These are always consulted, regardless of any
// caller-supplied configuration.

var builtinDirs = map[string]struct{}{
	// Version control
	".git": {},
	".svn": {},
	".hg":  {},

	// IDE and editor state
	".vscode": {},
	".idea":   {},
	".vs":     {},

	// Build output
	"target": {},
	"dist":   {},
	"build":  {},
	"out":    {},

	// Dependencies
	"node_modules": {},
	"vendor":       {},
	".cargo":       {},

	// Caches
	".cache":        {},
	"__pycache__":   {},
	".pytest_cache": {},

	// OS artifacts
	".DS_Store": {},
	"Thumbs.db": {},
}

var builtinFiles = map[string]struct{}{
	// Version control dotfiles
	".gitignore":     {},
	".gitmodules":    {},
	".gitattributes": {},

	// Package manager lockfiles
	"package-lock.json": {},
	"yarn.lock":         {},
	"Cargo.lock":        {},
	"composer.lock":     {},
	"Gemfile.lock":      {},

	// Editor config
	".editorconfig": {},

	// OS artifacts
	".DS_Store":   {},
	"Thumbs.db":   {},
	"desktop.ini": {},
}

var builtinExtensions = map[string]struct{}{
	// Images
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {},
	".bmp": {}, ".tiff": {}, ".svg": {}, ".ico": {},
	".webp": {},

	// Video
	".mp4": {}, ".avi": {}, ".mov": {}, ".wmv": {},
	".flv": {}, ".webm": {}, ".mkv": {},

	// Audio
	".mp3": {}, ".wav": {}, ".flac": {}, ".aac": {},
	".ogg": {}, ".wma": {},

	// Archives
	".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {},
	".rar": {}, ".7z": {}, ".xz": {},

	// Executables and native binaries
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {},
	".bin": {}, ".app": {},

	// Binary document formats
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {},
	".xlsx": {}, ".ppt": {}, ".pptx": {}, ".ps": {},

	// Fonts
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {},
	".eot": {},
}
