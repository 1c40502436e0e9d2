package render

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"fmt"
	"html"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// epubRenderer packages the document as a minimal single-chapter EPUB 3
// container: stored mimetype entry first, then the OCF container descriptor,
// package manifest, navigation document and one XHTML content document.
type epubRenderer struct{}

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

const epubCSS = `pre {
  white-space: pre-wrap;
  word-wrap: break-word;
  overflow-wrap: break-word;
}`

func (r *epubRenderer) Render(markdown string, meta Metadata) ([]byte, error) {
	var body bytes.Buffer
	if err := newXHTMLEngine().Convert([]byte(stripPageBreaks(markdown)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to XHTML: %w", err)
	}

	lang := meta.Language
	if lang == "" {
		lang = "en"
	}
	date := meta.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	identifier := fmt.Sprintf("urn:repobook:%x", sha1.Sum([]byte(meta.Title+date)))

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	// The mimetype entry must come first and must not be compressed.
	mimetype, err := w.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return nil, fmt.Errorf("failed to create mimetype entry: %w", err)
	}
	if _, err := mimetype.Write([]byte("application/epub+zip")); err != nil {
		return nil, fmt.Errorf("failed to write mimetype entry: %w", err)
	}

	entries := []struct {
		name    string
		content string
	}{
		{"META-INF/container.xml", containerXML},
		{"OEBPS/content.opf", r.packageDocument(meta, identifier, lang, date)},
		{"OEBPS/nav.xhtml", r.navDocument(meta)},
		{"OEBPS/style.css", epubCSS},
		{"OEBPS/content.xhtml", r.contentDocument(meta, lang, body.String())},
	}
	for _, e := range entries {
		f, err := w.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", e.name, err)
		}
		if _, err := f.Write([]byte(e.content)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", e.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize EPUB container: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *epubRenderer) packageDocument(meta Metadata, identifier, lang, date string) string {
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="pub-id">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
`)
	fmt.Fprintf(&b, "    <dc:identifier id=\"pub-id\">%s</dc:identifier>\n", identifier)
	fmt.Fprintf(&b, "    <dc:title>%s</dc:title>\n", html.EscapeString(meta.Title))
	if meta.Author != "" {
		fmt.Fprintf(&b, "    <dc:creator>%s</dc:creator>\n", html.EscapeString(meta.Author))
	}
	fmt.Fprintf(&b, "    <dc:language>%s</dc:language>\n", lang)
	fmt.Fprintf(&b, "    <meta property=\"dcterms:modified\">%sT00:00:00Z</meta>\n", date)
	b.WriteString(`  </metadata>
  <manifest>
    <item id="nav" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>
    <item id="style" href="style.css" media-type="text/css"/>
    <item id="content" href="content.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine>
    <itemref idref="content"/>
  </spine>
</package>
`)
	return b.String()
}

func (r *epubRenderer) navDocument(meta Metadata) string {
	title := html.EscapeString(meta.Title)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head><title>%s</title></head>
<body>
  <nav epub:type="toc">
    <ol><li><a href="content.xhtml">%s</a></li></ol>
  </nav>
</body>
</html>
`, title, title)
}

func (r *epubRenderer) contentDocument(meta Metadata, lang, body string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="%s">
<head>
  <title>%s</title>
  <link rel="stylesheet" type="text/css" href="style.css"/>
</head>
<body>
%s</body>
</html>
`, lang, html.EscapeString(meta.Title), body)
}

// newXHTMLEngine mirrors newEngine but emits XHTML-compatible markup for the
// EPUB content document.
func newXHTMLEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(gmhtml.WithXHTML()),
	)
}
