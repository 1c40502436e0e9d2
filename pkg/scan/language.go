package scan

import (
	"path"
	"strings"
)

// languageByExtension maps lowercased file extensions (without dot) to the
// fenced-block language tag used in the assembled document.
var languageByExtension = map[string]string{
	"rs":         "rust",
	"py":         "python",
	"js":         "javascript",
	"ts":         "typescript",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"html":       "html",
	"htm":        "html",
	"css":        "css",
	"scss":       "scss",
	"sass":       "scss",
	"json":       "json",
	"xml":        "xml",
	"yml":        "yaml",
	"yaml":       "yaml",
	"toml":       "toml",
	"md":         "markdown",
	"markdown":   "markdown",
	"sh":         "bash",
	"bash":       "bash",
	"zsh":        "zsh",
	"fish":       "fish",
	"c":          "c",
	"cpp":        "cpp",
	"cc":         "cpp",
	"cxx":        "cpp",
	"c++":        "cpp",
	"h":          "c",
	"hpp":        "c",
	"go":         "go",
	"java":       "java",
	"kt":         "kotlin",
	"kts":        "kotlin",
	"swift":      "swift",
	"php":        "php",
	"rb":         "ruby",
	"pl":         "perl",
	"lua":        "lua",
	"r":          "r",
	"sql":        "sql",
	"dockerfile": "dockerfile",
	"env":        "bash", // environment files use shell-like syntax
	"sol":        "solidity",
	"vy":         "python", // Vyper, python highlighting is the closest fit
	"move":       "rust",   // Move, rust highlighting is the closest fit
}

// DetectLanguage returns the language tag for a relative path, or "" when the
// extension is not recognized. Filename rules win over the extension table.
func DetectLanguage(relPath string) string {
	base := path.Base(relPath)

	// .env, .env.local, .env.production and friends
	if strings.HasPrefix(base, ".env") {
		return "bash"
	}
	// Dockerfile, dockerfile.dev, Dockerfile.prod
	if strings.HasPrefix(strings.ToLower(base), "dockerfile") {
		return "dockerfile"
	}

	ext := strings.TrimPrefix(path.Ext(base), ".")
	if ext == "" {
		return ""
	}
	return languageByExtension[strings.ToLower(ext)]
}
