package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{1024 * 1024 * 1024, "1.0 GB"},
		{1024 * 1024 * 1024 * 1024, "1.0 TB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatFileSize(tc.size), "size %d", tc.size)
	}
}

func TestEscapeMarkup(t *testing.T) {
	assert.Equal(t, `src/my\_file.rs`, EscapeMarkup("src/my_file.rs"))
	assert.Equal(t, `\#\$\%\&\^\{\}`, EscapeMarkup("#$%&^{}"))
	assert.Equal(t, "plain/path.txt", EscapeMarkup("plain/path.txt"))

	// Each special character gains exactly one backslash.
	escaped := EscapeMarkup("a_b_c")
	assert.Equal(t, 2, strings.Count(escaped, `\`))
}

func TestWrapLongLinesShortUntouched(t *testing.T) {
	content := "short line\nanother short line\n"
	assert.Equal(t, content, wrapLongLines(content))
}

func TestWrapLongLinesBreaksAtBreakpoint(t *testing.T) {
	// 120 'a's, a space, then more text: the break lands at the space since it
	// is the first breakpoint at or past 100 bytes.
	line := strings.Repeat("a", 120) + " tail"
	wrapped := wrapLongLines(line)
	lines := strings.Split(wrapped, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat("a", 120)+" ", lines[0])
	assert.Equal(t, "tail", lines[1])
}

func TestWrapLongLinesNoBreakpoint(t *testing.T) {
	line := strings.Repeat("x", 250)
	assert.Equal(t, line, wrapLongLines(line))
}

func TestWrapLongLinesMultiple(t *testing.T) {
	words := strings.Repeat("word ", 60) // 300 bytes
	wrapped := wrapLongLines(words)
	for _, line := range strings.Split(wrapped, "\n") {
		// Breaks happen at the first breakpoint past the threshold, so lines
		// run at most a few bytes over it.
		assert.LessOrEqual(t, len(line), wrapWidth+5)
	}
	assert.Equal(t, strings.ReplaceAll(words, "\n", ""), strings.ReplaceAll(wrapped, "\n", ""))
}
