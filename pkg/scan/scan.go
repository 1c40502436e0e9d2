// Package scan walks a directory tree and produces the ordered list of file
// records that feed document assembly. It applies the exclusion policy from
// pkg/exclude, layered gitignore semantics, and binary/encoding
// classification, and guarantees deterministic ordering of its results.
package scan

import "repobook/pkg/exclude"

// FileRecord is one discovered file: its decoded content plus path, size and
// language metadata. Records are created here and immutable afterwards.
type FileRecord struct {
	// Path is root-relative and slash-normalized for display.
	Path string
	// Content is the decoded text, or a placeholder for binary files. Raw
	// binary bytes never appear here.
	Content string
	// Language is the fenced-block tag, empty when unknown.
	Language string
	// Size is the original byte length on disk, even when Content was
	// replaced or will later be truncated.
	Size int
}

// Options controls a single Discover run.
type Options struct {
	// Rules is the exclusion rule set. A nil value applies builtin rules only.
	Rules *exclude.Rules
	// RespectGitignore layers system, global, repository-exclude and nested
	// .gitignore patterns over the exclusion rules.
	RespectGitignore bool
}
