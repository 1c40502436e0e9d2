package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// pdfRenderer drives fpdf from a goldmark AST walk. Page-break markers in the
// document become real page breaks.
type pdfRenderer struct{}

func (r *pdfRenderer) Render(markdown string, meta Metadata) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(meta.Title, true)
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)

	source := []byte(markdown)
	doc := newEngine().Parser().Parse(text.NewReader(source))

	w := &pdfWalker{pdf: pdf, source: source, font: "Helvetica", size: 10}
	if err := ast.Walk(doc, w.walk); err != nil {
		return nil, fmt.Errorf("failed to lay out PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF output: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfWalker struct {
	pdf    *fpdf.Fpdf
	source []byte
	font   string
	size   float64
	bold   bool
	italic bool
}

func (w *pdfWalker) updateFont() {
	style := ""
	if w.bold {
		style += "B"
	}
	if w.italic {
		style += "I"
	}
	w.pdf.SetFont(w.font, style, w.size)
}

func (w *pdfWalker) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n.Kind() {
	case ast.KindHeading:
		return w.handleHeading(n.(*ast.Heading), entering)
	case ast.KindParagraph:
		return w.handleParagraph(n.(*ast.Paragraph), entering)
	case ast.KindText:
		if entering {
			w.pdf.Write(5, string(n.Text(w.source)))
		}
	case ast.KindEmphasis:
		if n.(*ast.Emphasis).Level == 2 {
			w.bold = entering
		} else {
			w.italic = entering
		}
		w.updateFont()
	case ast.KindCodeSpan:
		return w.handleCodeSpan(n, entering)
	case ast.KindFencedCodeBlock:
		if entering {
			w.writeCodeBlock(n.Lines())
			return ast.WalkSkipChildren, nil
		}
	case ast.KindCodeBlock:
		if entering {
			w.writeCodeBlock(n.Lines())
			return ast.WalkSkipChildren, nil
		}
	case ast.KindListItem:
		if entering {
			w.pdf.Ln(5)
			w.pdf.Write(5, "- ")
		}
	case ast.KindThematicBreak:
		if entering {
			w.pdf.Ln(3)
			left, _, right, _ := w.pdf.GetMargins()
			pageW, _ := w.pdf.GetPageSize()
			w.pdf.Line(left, w.pdf.GetY(), pageW-right, w.pdf.GetY())
			w.pdf.Ln(3)
		}
	}
	return ast.WalkContinue, nil
}

func (w *pdfWalker) handleHeading(n *ast.Heading, entering bool) (ast.WalkStatus, error) {
	if entering {
		w.pdf.Ln(6)
		size := 10.0
		switch n.Level {
		case 1:
			size = 16
		case 2:
			size = 13
		case 3:
			size = 11
		}
		w.pdf.SetFont(w.font, "B", size)
	} else {
		w.pdf.Ln(7)
		w.updateFont()
	}
	return ast.WalkContinue, nil
}

func (w *pdfWalker) handleParagraph(n *ast.Paragraph, entering bool) (ast.WalkStatus, error) {
	if entering {
		if strings.TrimSpace(string(n.Text(w.source))) == pageBreakMarker {
			w.pdf.AddPage()
			return ast.WalkSkipChildren, nil
		}
	} else {
		w.pdf.Ln(7)
	}
	return ast.WalkContinue, nil
}

func (w *pdfWalker) handleCodeSpan(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		w.pdf.SetFont("Courier", "", w.size)
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if textNode, ok := c.(*ast.Text); ok {
				w.pdf.Write(5, string(textNode.Segment.Value(w.source)))
			}
		}
	} else {
		w.updateFont()
	}
	return ast.WalkSkipChildren, nil
}

func (w *pdfWalker) writeCodeBlock(lines *text.Segments) {
	w.pdf.Ln(2)
	w.pdf.SetFont("Courier", "", 8)
	w.pdf.SetFillColor(245, 245, 245)
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		line := strings.TrimRight(string(segment.Value(w.source)), "\n")
		w.pdf.MultiCell(0, 4, line, "", "L", true)
	}
	w.pdf.SetFillColor(255, 255, 255)
	w.updateFont()
	w.pdf.Ln(2)
}
