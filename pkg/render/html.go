package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// htmlRenderer produces a standalone HTML page. Styling is deliberately
// minimal so fenced code blocks keep their own formatting.
type htmlRenderer struct{}

const htmlStyle = `body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  line-height: 1.6;
  max-width: 1200px;
  margin: 0 auto;
  padding: 20px;
}
pre {
  white-space: pre-wrap;
  word-wrap: break-word;
  overflow-wrap: break-word;
  overflow-x: auto;
}`

func (r *htmlRenderer) Render(markdown string, meta Metadata) ([]byte, error) {
	var body bytes.Buffer
	if err := newEngine().Convert([]byte(stripPageBreaks(markdown)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}

	lang := meta.Language
	if lang == "" {
		lang = "en"
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "<!DOCTYPE html>\n<html lang=%q>\n<head>\n<meta charset=\"utf-8\">\n", lang)
	fmt.Fprintf(&out, "<title>%s</title>\n", html.EscapeString(meta.Title))
	if meta.Author != "" {
		fmt.Fprintf(&out, "<meta name=\"author\" content=%q>\n", meta.Author)
	}
	fmt.Fprintf(&out, "<style>\n%s\n</style>\n</head>\n<body>\n", htmlStyle)
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}

// newEngine builds the shared goldmark configuration. WithAttribute keeps the
// {#anchor} heading attributes the assembler emits working as element IDs.
func newEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Linkify),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
			parser.WithAutoHeadingID(),
		),
	)
}
