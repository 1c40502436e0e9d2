// Package render turns the assembled markdown document into a final
// artifact. The core pipeline only produces the markdown buffer; everything
// here is a downstream backend selected by output format.
package render

import (
	"fmt"
	"strings"
)

// Metadata accompanies the document text into a renderer.
type Metadata struct {
	Title      string
	Author     string // optional
	Date       string // optional, YYYY-MM-DD
	Language   string // target language tag, e.g. "en"
	IncludeTOC bool
	Theme      string // highlight theme name, passed through to backends
}

// Format identifies one of the four output backends.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatEPUB     Format = "epub"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a user-facing format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "epub":
		return FormatEPUB, nil
	case "html":
		return FormatHTML, nil
	case "markdown", "md", "text", "txt":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected pdf, epub, html or markdown)", s)
}

// Extension returns the output file extension for the format, without dot.
func (f Format) Extension() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatEPUB:
		return "epub"
	case FormatHTML:
		return "html"
	default:
		return "md"
	}
}

// Renderer converts assembled markdown into final bytes.
type Renderer interface {
	Render(markdown string, meta Metadata) ([]byte, error)
}

// New returns the renderer for the given format.
func New(format Format) (Renderer, error) {
	switch format {
	case FormatPDF:
		return &pdfRenderer{}, nil
	case FormatEPUB:
		return &epubRenderer{}, nil
	case FormatHTML:
		return &htmlRenderer{}, nil
	case FormatMarkdown:
		return &markdownRenderer{}, nil
	}
	return nil, fmt.Errorf("no renderer for format %q", format)
}

// pageBreakMarker is the explicit page-break token the assembler emits
// between file sections. Paginated backends honor it; flowing backends strip
// it.
const pageBreakMarker = `\newpage`

// stripPageBreaks removes page-break marker lines for backends without a page
// concept.
func stripPageBreaks(markdown string) string {
	lines := strings.Split(markdown, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == pageBreakMarker {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
