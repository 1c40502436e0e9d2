// Package document assembles scanned file records into a single markdown
// document: title, timestamp, optional table of contents, file tree, then one
// section per file with page-break markers between them. Files are processed
// in small sequential batches with a cooperative yield between batches so the
// host can reclaim memory.
package document

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"

	"repobook/pkg/scan"
)

// MarkupLanguage is the language tag of the document's own dialect. Content
// carrying this tag is inlined unfenced instead of being wrapped in a code
// block.
const MarkupLanguage = "markdown"

// Default content-safety limits.
const (
	DefaultMaxFileBytes = 50 * 1024 * 1024
	DefaultPreviewBytes = 100 * 1024
	DefaultSampleBytes  = 10 * 1024
	DefaultMaxSamples   = 5
)

// Options configures a single assembly run.
type Options struct {
	Title           string
	IncludeTOC      bool
	IncludeFileTree bool

	// ChunkSize is the batch size from the chunk planner. Values below 1 are
	// treated as 1.
	ChunkSize int

	// MaxFileBytes is the size above which a file's content is reduced to a
	// preview plus samples. PreviewBytes, SampleBytes and MaxSamples shape
	// that reduction; zero values take the package defaults.
	MaxFileBytes int
	PreviewBytes int
	SampleBytes  int
	MaxSamples   int

	// SoftMemoryLimit, when non-zero, is the heap size in bytes above which a
	// warning is logged between batches. Never throttles or aborts.
	SoftMemoryLimit uint64

	// Checkpoint is invoked between batches to cede control to the caller's
	// scheduler. Defaults to runtime.Gosched.
	Checkpoint func()
}

// Assembler builds the document buffer. It owns the memory probe for the
// duration of a run.
type Assembler struct {
	opts   Options
	logger *zap.Logger
	probe  *memoryProbe
}

// New returns an Assembler with defaults applied.
func New(opts Options, logger *zap.Logger) *Assembler {
	if opts.ChunkSize < 1 {
		opts.ChunkSize = 1
	}
	if opts.MaxFileBytes <= 0 {
		opts.MaxFileBytes = DefaultMaxFileBytes
	}
	if opts.PreviewBytes <= 0 {
		opts.PreviewBytes = DefaultPreviewBytes
	}
	if opts.SampleBytes <= 0 {
		opts.SampleBytes = DefaultSampleBytes
	}
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = DefaultMaxSamples
	}
	if opts.Checkpoint == nil {
		opts.Checkpoint = runtime.Gosched
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		opts:   opts,
		logger: logger,
		probe:  &memoryProbe{softLimit: opts.SoftMemoryLimit, logger: logger},
	}
}

// Assemble renders the full document for the given records, which must
// already be in their final order. It does not fail for well-formed input.
func (a *Assembler) Assemble(files []scan.FileRecord) string {
	start := time.Now()
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", a.opts.Title)
	fmt.Fprintf(&b, "Generated on: %s UTC\n\n", time.Now().UTC().Format("2006-01-02 15:04:05"))

	// Slugs are computed up front so TOC entries and headings agree.
	slugs := newSlugger().slugAll(files)

	if a.opts.IncludeTOC && len(files) > 0 {
		b.WriteString("## Table of Contents\n\n")
		for i, f := range files {
			fmt.Fprintf(&b, "- [%s](#%s)\n", EscapeMarkup(f.Path), slugs[i])
		}
		b.WriteString("\n")
	}

	if a.opts.IncludeFileTree && len(files) > 0 {
		b.WriteString("## File Structure\n\n```\n")
		for _, f := range files {
			b.WriteString(f.Path)
			b.WriteString("\n")
		}
		b.WriteString("```\n\n")
	}

	if len(files) == 0 {
		a.logger.Warn("No files to include; document has no file sections")
		return b.String()
	}

	b.WriteString("## File Contents\n\n")
	for batchStart := 0; batchStart < len(files); batchStart += a.opts.ChunkSize {
		batchEnd := batchStart + a.opts.ChunkSize
		if batchEnd > len(files) {
			batchEnd = len(files)
		}
		for i := batchStart; i < batchEnd; i++ {
			a.writeFileSection(&b, files[i], slugs[i], i > 0)
		}
		if batchEnd < len(files) {
			// Cede control so the host can reclaim memory before the next
			// batch; the probe only ever logs.
			a.opts.Checkpoint()
			a.probe.sample()
		}
	}

	a.logger.Debug("Document assembled",
		zap.Int("files", len(files)),
		zap.Int("chunkSize", a.opts.ChunkSize),
		zap.Int("documentBytes", b.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return b.String()
}

// writeFileSection emits one file: page break, heading with anchor, size
// annotation, then the content with all safety transforms applied.
func (a *Assembler) writeFileSection(b *strings.Builder, f scan.FileRecord, slug string, pageBreak bool) {
	if pageBreak {
		b.WriteString("\n\\newpage\n\n")
	}
	fmt.Fprintf(b, "### %s {#%s}\n\n", EscapeMarkup(f.Path), slug)
	fmt.Fprintf(b, "**Size:** %s\n\n", FormatFileSize(int64(f.Size)))

	// Gate on the decoded length, not the on-disk size: a huge binary file
	// carries only a short placeholder here and must pass through untouched.
	content := f.Content
	if len(content) > a.opts.MaxFileBytes {
		content = a.truncateOversized(content, f.Size)
		a.logger.Warn("File content reduced to preview and samples",
			zap.String("path", f.Path),
			zap.Int("sizeBytes", f.Size),
			zap.Int("maxBytes", a.opts.MaxFileBytes))
	}
	content = wrapLongLines(content)

	if f.Language == MarkupLanguage {
		// The document's own dialect nests badly inside fences; inline it.
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	} else {
		fmt.Fprintf(b, "```%s\n", f.Language)
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```\n\n")
	}
	b.WriteString("---\n\n")
}
