package document

import (
	"fmt"
	"strings"

	"repobook/pkg/scan"
)

// slugger derives deterministic heading anchors from file paths. Distinct
// paths can normalize to the same anchor ("a/b.c" and "a-b.c" both become
// "a-b-c"), so a counter suffix keeps every anchor unique within a run.
type slugger struct {
	seen map[string]struct{}
}

func newSlugger() *slugger {
	return &slugger{seen: make(map[string]struct{})}
}

func (s *slugger) slugAll(files []scan.FileRecord) []string {
	slugs := make([]string, len(files))
	for i, f := range files {
		slugs[i] = s.slug(f.Path)
	}
	return slugs
}

func (s *slugger) slug(relPath string) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.':
			return '-'
		}
		return r
	}, relPath)

	candidate := base
	for n := 2; ; n++ {
		if _, taken := s.seen[candidate]; !taken {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	s.seen[candidate] = struct{}{}
	return candidate
}
