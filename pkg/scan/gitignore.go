package scan

import (
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

// vcsMatcher wraps go-git's layered gitignore matcher. Patterns are loaded in
// ascending priority (system, global, repository exclude file, then nested
// .gitignore files root to leaf); the underlying matcher scans them in
// reverse, so deeper patterns and negations override broader ones.
type vcsMatcher struct {
	matcher gitignore.Matcher
}

// newVCSMatcher loads every reachable ignore source for the given root. A
// missing source is not an error; with no patterns at all the matcher is a
// no-op.
func newVCSMatcher(root string, logger *zap.Logger) *vcsMatcher {
	var patterns []gitignore.Pattern

	rootFS := osfs.New("/")
	if ps, err := gitignore.LoadSystemPatterns(rootFS); err == nil {
		patterns = append(patterns, ps...)
	}
	if ps, err := gitignore.LoadGlobalPatterns(rootFS); err == nil {
		patterns = append(patterns, ps...)
	}

	// ReadPatterns picks up .git/info/exclude and all nested .gitignore files.
	ps, err := gitignore.ReadPatterns(osfs.New(root), nil)
	if err != nil {
		logger.Warn("Failed to read repository ignore files", zap.String("root", root), zap.Error(err))
	}
	patterns = append(patterns, ps...)

	if len(patterns) == 0 {
		return &vcsMatcher{}
	}
	return &vcsMatcher{matcher: gitignore.NewMatcher(patterns)}
}

// Match reports whether the slash-normalized relative path is ignored.
func (m *vcsMatcher) Match(relPath string, isDir bool) bool {
	if m == nil || m.matcher == nil {
		return false
	}
	return m.matcher.Match(strings.Split(relPath, "/"), isDir)
}
