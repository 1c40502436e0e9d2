// Package pipeline wires the stages together: scan, plan, assemble, render,
// write. Stages run strictly in sequence; ordering guarantees in the output
// depend on that.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"repobook/pkg/chunk"
	"repobook/pkg/config"
	"repobook/pkg/document"
	"repobook/pkg/exclude"
	"repobook/pkg/render"
	"repobook/pkg/scan"
)

// Run executes one full generation for the tree under root. Only whole-run
// preconditions (unusable root, unwritable output, unknown format) come back
// as errors; everything else is downgraded to diagnostics.
func Run(root string, cfg config.Config, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting document generation", zap.String("root", root), zap.String("format", cfg.Output.Format))

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve root path: %w", err)
	}

	rules := exclude.New(cfg.Ignore.Files, cfg.Ignore.Extensions, cfg.Ignore.Directories)
	files, err := scan.Discover(absRoot, scan.Options{
		Rules:            rules,
		RespectGitignore: cfg.Ignore.Gitignore,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to scan %q: %w", root, err)
	}
	if len(files) == 0 {
		logger.Warn("No files remain after filtering; output will contain no file sections")
	}

	stats := chunk.Collect(files)
	for _, f := range files {
		if f.Size > chunk.HugeFileBytes {
			logger.Warn("Very large file included",
				zap.String("path", f.Path),
				zap.String("size", document.FormatFileSize(int64(f.Size))))
		}
	}
	chunkSize := chunk.Plan(stats, cfg.Limits.ChunkSize)
	logger.Debug("Planned assembly batches",
		zap.Int("fileCount", stats.FileCount),
		zap.Int64("totalBytes", stats.TotalBytes),
		zap.Int("largeFiles", stats.LargeFiles),
		zap.Int("chunkSize", chunkSize))

	title := cfg.Document.Title
	if title == "" {
		title = filepath.Base(absRoot)
	}

	assembler := document.New(document.Options{
		Title:           title,
		IncludeTOC:      cfg.Document.TOC,
		IncludeFileTree: cfg.Document.FileTree,
		ChunkSize:       chunkSize,
		MaxFileBytes:    cfg.Limits.MaxFileSizeMB * 1024 * 1024,
		SoftMemoryLimit: uint64(cfg.Limits.SoftMemoryMB) * 1024 * 1024,
	}, logger)
	markdown := assembler.Assemble(files)

	renderer, err := render.New(format)
	if err != nil {
		return err
	}
	artifact, err := renderer.Render(markdown, render.Metadata{
		Title:      title,
		Author:     cfg.Document.Author,
		Date:       time.Now().UTC().Format("2006-01-02"),
		Language:   "en",
		IncludeTOC: cfg.Document.TOC,
		Theme:      cfg.Document.Theme,
	})
	if err != nil {
		return fmt.Errorf("failed to render %s output: %w", format, err)
	}

	outputPath, err := resolveOutputPath(cfg.Output, title, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, artifact, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", outputPath, err)
	}

	logger.Info("Document generated",
		zap.String("output", outputPath),
		zap.Int("totalFiles", len(files)),
		zap.String("size", document.FormatFileSize(int64(len(artifact)))),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// resolveOutputPath determines the artifact path, creating the output folder
// when configured to. An uncreatable output location is fatal.
func resolveOutputPath(out config.OutputConfig, title string, format render.Format) (string, error) {
	folder := out.Folder
	if folder == "" {
		folder = "."
	}
	if out.CreateFolder {
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory %q: %w", folder, err)
		}
	}
	filename := out.Filename
	if filename == "" {
		filename = fmt.Sprintf("%s.%s", title, format.Extension())
	}
	return filepath.Join(folder, filename), nil
}
