package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"repobook/pkg/scan"
)

func testAssembler(maxFileBytes, previewBytes, sampleBytes, maxSamples int) *Assembler {
	return New(Options{
		Title:        "t",
		MaxFileBytes: maxFileBytes,
		PreviewBytes: previewBytes,
		SampleBytes:  sampleBytes,
		MaxSamples:   maxSamples,
	}, nil)
}

func numberedLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(strings.Repeat("x", 40))
		b.WriteString("\n")
	}
	return b.String()
}

func TestTruncateStrictlyShorter(t *testing.T) {
	a := testAssembler(1024, 256, 64, 5)
	content := numberedLines(200) // ~8 KB
	out := a.truncateOversized(content, len(content))
	assert.Less(t, len(out), len(content))
}

func TestTruncateNoticeAndSummary(t *testing.T) {
	a := testAssembler(1024, 256, 64, 3)
	content := numberedLines(200)
	out := a.truncateOversized(content, len(content))

	assert.Contains(t, out, "... [Content continues for another ")
	assert.Contains(t, out, "bytes omitted)] ...")
	assert.Contains(t, out, "--- Sample at ")
	assert.Contains(t, out, "% of file ---")
	assert.Contains(t, out, "--- Truncated: total size ")
	assert.Contains(t, out, " lines ---")

	// The preview is the leading bytes, verbatim.
	assert.True(t, strings.HasPrefix(out, content[:256]))
}

func TestTruncateSampleCountCapped(t *testing.T) {
	// The omitted span fits at most omitted/(2*64) samples, well under the 20
	// requested; the cap keeps the output shorter than the input.
	a := testAssembler(512, 256, 64, 20)
	content := numberedLines(25) // ~1 KB
	out := a.truncateOversized(content, len(content))
	assert.LessOrEqual(t, strings.Count(out, "--- Sample at "), 6)
	assert.Less(t, len(out), len(content))
}

func TestTruncatePreviewHalvedWhenContentSmall(t *testing.T) {
	// Preview request exceeds the content, so it is halved to leave an
	// omitted span for the notice to describe.
	a := testAssembler(10, 1<<20, 64, 5)
	content := numberedLines(30)
	out := a.truncateOversized(content, len(content))
	assert.Contains(t, out, "bytes omitted")
	assert.True(t, strings.HasPrefix(out, content[:len(content)/2-1]))
}

func TestOversizedBinaryPlaceholderUntouched(t *testing.T) {
	// A binary file over the size limit is represented by a short placeholder;
	// the on-disk size must not trigger truncation of the placeholder itself.
	a := testAssembler(1024, 256, 64, 5)
	placeholder := "[Binary file: blob.dat (62914560 bytes)]"
	record := scan.FileRecord{Path: "blob.dat", Content: placeholder, Size: 60 * 1024 * 1024}

	var b strings.Builder
	a.writeFileSection(&b, record, "blob-dat", false)

	out := b.String()
	assert.Contains(t, out, placeholder)
	assert.NotContains(t, out, "Content continues")
	assert.NotContains(t, out, "--- Truncated:")
}

func TestOversizedContentUntouchedBelowLimit(t *testing.T) {
	a := testAssembler(1<<20, 0, 0, 0)
	var b strings.Builder
	a.writeFileSection(&b, fileRecord("small.txt", "hello\n", ""), "small-txt", false)
	assert.Contains(t, b.String(), "hello")
	assert.NotContains(t, b.String(), "Content continues")
}
