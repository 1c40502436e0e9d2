package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repobook/pkg/config"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func runConfig(outDir, format string) config.Config {
	cfg := config.Default()
	cfg.Output.Folder = outDir
	cfg.Output.Format = format
	cfg.Document.Title = "Test Project"
	return cfg
}

func TestRunMarkdownEndToEnd(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/main.rs": "fn main() {}\n",
		"README.md":   "# Readme\n",
		".git/config": "[core]\n",
	})
	outDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, Run(root, runConfig(outDir, "markdown"), zap.NewNop()))

	data, err := os.ReadFile(filepath.Join(outDir, "Test Project.md"))
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "# Test Project")
	assert.Contains(t, doc, "### src/main.rs")
	assert.Contains(t, doc, "```rust\nfn main() {}\n```")
	assert.Contains(t, doc, "# Readme")
	assert.NotContains(t, doc, ".git/config")
	assert.NotContains(t, doc, `\newpage`)
}

func TestRunHTML(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "hello\n"})
	outDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, Run(root, runConfig(outDir, "html"), zap.NewNop()))

	data, err := os.ReadFile(filepath.Join(outDir, "Test Project.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
	assert.Contains(t, string(data), "hello")
}

func TestRunDefaultTitleFromRoot(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "hello\n"})
	outDir := filepath.Join(t.TempDir(), "out")

	cfg := runConfig(outDir, "markdown")
	cfg.Document.Title = ""
	require.NoError(t, Run(root, cfg, zap.NewNop()))

	base := filepath.Base(root)
	data, err := os.ReadFile(filepath.Join(outDir, base+".md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# "+base)
}

func TestRunExplicitFilename(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "hello\n"})
	outDir := filepath.Join(t.TempDir(), "out")

	cfg := runConfig(outDir, "markdown")
	cfg.Output.Filename = "custom.md"
	require.NoError(t, Run(root, cfg, zap.NewNop()))

	_, err := os.Stat(filepath.Join(outDir, "custom.md"))
	assert.NoError(t, err)
}

func TestRunUnknownFormat(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "hello\n"})
	err := Run(root, runConfig(t.TempDir(), "docx"), zap.NewNop())
	assert.Error(t, err)
}

func TestRunMissingRoot(t *testing.T) {
	err := Run(filepath.Join(t.TempDir(), "absent"), runConfig(t.TempDir(), "markdown"), zap.NewNop())
	assert.Error(t, err)
}

func TestRunEmptyTree(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, Run(root, runConfig(outDir, "markdown"), zap.NewNop()))

	data, err := os.ReadFile(filepath.Join(outDir, "Test Project.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Test Project")
	assert.NotContains(t, string(data), "## File Contents")
}

func TestRunNoCreateFolder(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "hello\n"})
	outDir := filepath.Join(t.TempDir(), "missing")

	cfg := runConfig(outDir, "markdown")
	cfg.Output.CreateFolder = false
	assert.Error(t, Run(root, cfg, zap.NewNop()))
}
