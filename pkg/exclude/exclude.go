// Package exclude implements the exclusion policy applied to every path
// discovered during a repository scan. A path is excluded when it matches
// any builtin rule (version-control metadata, build output, binary media,
// lockfiles) or any caller-supplied rule. Builtin rules are always active.
package exclude

import (
	"path"
	"strings"
)

// Rules is an immutable, resolved exclusion rule set. The zero value applies
// only the builtin rules; use New to layer caller-supplied rules on top.
type Rules struct {
	files      []string
	extensions map[string]struct{}
	dirs       []string
}

// New builds a rule set from caller-supplied ignore lists. Entries in files
// match as substrings of the relative path or base name, extensions match
// exactly (leading dot, case-sensitive), and dirs match as raw prefixes of
// the relative path.
func New(files, extensions, dirs []string) *Rules {
	r := &Rules{
		files:      append([]string(nil), files...),
		extensions: make(map[string]struct{}, len(extensions)),
		dirs:       make([]string, 0, len(dirs)),
	}
	for _, ext := range extensions {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.extensions[ext] = struct{}{}
	}
	for _, dir := range dirs {
		dir = strings.Trim(strings.TrimSpace(dir), "/")
		if dir != "" {
			r.dirs = append(r.dirs, dir)
		}
	}
	return r
}

// Match reports whether the slash-normalized, root-relative path is excluded.
// Pure predicate: no I/O, deterministic for a fixed rule set.
func (r *Rules) Match(relPath string) bool {
	if r.MatchDir(relPath) {
		return true
	}

	base := path.Base(relPath)
	if _, ok := builtinFiles[base]; ok {
		return true
	}

	// Extension matching is case-sensitive: ".PNG" is not ".png".
	ext := path.Ext(relPath)
	if ext != "" {
		if _, ok := builtinExtensions[ext]; ok {
			return true
		}
		if r != nil {
			if _, ok := r.extensions[ext]; ok {
				return true
			}
		}
	}

	if r != nil {
		for _, f := range r.files {
			if strings.Contains(relPath, f) || strings.Contains(base, f) {
				return true
			}
		}
	}

	return false
}

// MatchDir reports whether a directory at the given relative path is
// excluded. Directory exclusions cover the whole subtree, so the walker may
// prune without descending.
func (r *Rules) MatchDir(relPath string) bool {
	for _, component := range strings.Split(relPath, "/") {
		if _, ok := builtinDirs[component]; ok {
			return true
		}
	}
	if r != nil {
		for _, dir := range r.dirs {
			// Raw prefix, not component-bounded: rule "src" also covers a
			// sibling "srcfoo" tree.
			if strings.HasPrefix(relPath, dir) {
				return true
			}
		}
	}
	return false
}
