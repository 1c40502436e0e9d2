package render

// markdownRenderer is the plain-text passthrough: the assembled document is
// already markdown, only the page-break markers are dropped.
type markdownRenderer struct{}

func (r *markdownRenderer) Render(markdown string, _ Metadata) ([]byte, error) {
	return []byte(stripPageBreaks(markdown)), nil
}
