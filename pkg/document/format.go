package document

import (
	"fmt"
	"strings"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatFileSize renders a byte count with binary prefixes: exact bytes under
// 1024, otherwise one decimal place in the first unit the value fits.
func FormatFileSize(size int64) string {
	f := float64(size)
	unit := 0
	for f >= 1024 && unit < len(sizeUnits)-1 {
		f /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", size, sizeUnits[unit])
	}
	return fmt.Sprintf("%.1f %s", f, sizeUnits[unit])
}

var markupEscaper = strings.NewReplacer(
	"_", `\_`,
	"#", `\#`,
	"$", `\$`,
	"%", `\%`,
	"&", `\&`,
	"^", `\^`,
	"{", `\{`,
	"}", `\}`,
)

// EscapeMarkup backslash-escapes the characters that are special to the
// markup dialect or its downstream renderers. Applied only to text emitted
// outside fenced blocks.
func EscapeMarkup(text string) string {
	return markupEscaper.Replace(text)
}

// wrapWidth is the byte length past which a line is broken at the next
// acceptable breakpoint, keeping unbounded line widths away from renderers.
const wrapWidth = 100

func isBreakpoint(r rune) bool {
	switch r {
	case ' ', ',', ';', ')', '}':
		return true
	}
	return false
}

// wrapLongLines breaks every line longer than wrapWidth at the first
// breakpoint at or past that mark. Lines without a breakpoint are left whole.
func wrapLongLines(content string) string {
	if !hasLongLine(content) {
		return content
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) <= wrapWidth {
			out = append(out, line)
			continue
		}
		var current strings.Builder
		for _, r := range line {
			current.WriteRune(r)
			if current.Len() >= wrapWidth && isBreakpoint(r) {
				out = append(out, current.String())
				current.Reset()
			}
		}
		if current.Len() > 0 {
			out = append(out, current.String())
		}
	}
	return strings.Join(out, "\n")
}

func hasLongLine(content string) bool {
	for len(content) > 0 {
		nl := strings.IndexByte(content, '\n')
		if nl < 0 {
			return len(content) > wrapWidth
		}
		if nl > wrapWidth {
			return true
		}
		content = content[nl+1:]
	}
	return false
}
