package document

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// truncateOversized reduces content to a leading preview, a "continues for"
// notice, evenly spaced samples from the omitted span with positional
// markers, and a closing summary with approximate line counts. The result is
// always strictly shorter than the input.
func (a *Assembler) truncateOversized(content string, originalSize int) string {
	previewLen := a.opts.PreviewBytes
	// The preview must leave something to omit, or the notice would lie.
	if previewLen >= len(content) {
		previewLen = len(content) / 2
	}
	previewLen = alignToRune(content, previewLen)

	preview := content[:previewLen]
	remaining := content[previewLen:]
	omitted := len(remaining)

	var b strings.Builder
	b.WriteString(preview)
	if !strings.HasSuffix(preview, "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n... [Content continues for another %s (%d bytes omitted)] ...\n",
		FormatFileSize(int64(omitted)), omitted)

	sampleLen := a.opts.SampleBytes
	sampleCount := a.opts.MaxSamples
	// Samples may cover at most half the omitted span, so the output stays
	// strictly shorter than the input.
	if maxFit := omitted / (2 * sampleLen); sampleCount > maxFit {
		sampleCount = maxFit
	}
	for k := 1; k <= sampleCount; k++ {
		offset := alignToRune(remaining, omitted*k/(sampleCount+1))
		end := alignToRune(remaining, offset+sampleLen)
		if end > len(remaining) {
			end = len(remaining)
		}
		percent := (previewLen + offset) * 100 / len(content)
		fmt.Fprintf(&b, "\n--- Sample at %d%% of file ---\n", percent)
		b.WriteString(remaining[offset:end])
		if !strings.HasSuffix(remaining[offset:end], "\n") {
			b.WriteString("\n")
		}
	}

	totalLines := strings.Count(content, "\n") + 1
	shownLines := strings.Count(b.String(), "\n") + 1
	fmt.Fprintf(&b, "\n--- Truncated: total size %s, showing ~%d of ~%d lines ---\n",
		FormatFileSize(int64(originalSize)), shownLines, totalLines)

	return b.String()
}

// alignToRune moves offset back to the nearest rune boundary in s.
func alignToRune(s string, offset int) int {
	if offset >= len(s) {
		return len(s)
	}
	for offset > 0 && !utf8.RuneStart(s[offset]) {
		offset--
	}
	return offset
}
