package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"repobook/pkg/exclude"
)

// advisoryFileCount is the included-file count above which Discover emits a
// large-repository diagnostic.
const advisoryFileCount = 50

// Discover walks the tree under root and returns one FileRecord per included
// file, sorted by relative path in byte-wise lexicographic order. The only
// fatal failure is an unusable root; every per-file failure is logged and
// skipped. Symbolic links are never followed.
func Discover(root string, opts Options, logger *zap.Logger) ([]FileRecord, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path %q: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot open root path %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %q is not a directory", root)
	}

	rules := opts.Rules
	if rules == nil {
		rules = exclude.New(nil, nil, nil)
	}

	var vcs *vcsMatcher
	if opts.RespectGitignore {
		vcs = newVCSMatcher(absRoot, logger)
	}

	var files []FileRecord
	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", p), zap.Error(walkErr))
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, p)
		if relErr != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", p), zap.Error(relErr))
			return nil
		}
		if rel == "." {
			return nil
		}
		relSlash := filepath.ToSlash(rel)

		if d.IsDir() {
			if rules.MatchDir(relSlash) || vcs.Match(relSlash, true) {
				logger.Debug("Pruning excluded directory", zap.String("directory", relSlash))
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if rules.Match(relSlash) || vcs.Match(relSlash, false) {
			return nil
		}

		record, procErr := processFile(p, relSlash)
		if procErr != nil {
			logger.Warn("Failed to process file", zap.String("path", p), zap.Error(procErr))
			return nil
		}
		files = append(files, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}

	// Byte-wise path order makes output independent of filesystem
	// enumeration order.
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	if len(files) > advisoryFileCount {
		reportLargeFileCount(files, logger)
	}
	return files, nil
}

// processFile reads and classifies a single file.
func processFile(absPath, relPath string) (FileRecord, error) {
	data, err := os.ReadFile(absPath)
	if err != nil {
		return FileRecord{}, fmt.Errorf("error reading file %s: %w", relPath, err)
	}

	record := FileRecord{Path: relPath, Size: len(data)}
	text, binary := decodeContent(data)
	if binary {
		record.Content = binaryPlaceholder(path.Base(relPath), len(data))
		return record, nil
	}
	record.Content = text
	record.Language = DetectLanguage(relPath)
	return record, nil
}

// reportLargeFileCount logs the top directories by included-file count so the
// caller can tighten exclusion rules. Advisory only.
func reportLargeFileCount(files []FileRecord, logger *zap.Logger) {
	counts := make(map[string]int)
	for _, f := range files {
		dir := path.Dir(f.Path)
		counts[dir]++
	}

	type dirCount struct {
		dir   string
		count int
	}
	sorted := make([]dirCount, 0, len(counts))
	for dir, n := range counts {
		sorted = append(sorted, dirCount{dir, n})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].dir < sorted[j].dir
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	top := make([]string, len(sorted))
	for i, dc := range sorted {
		top[i] = fmt.Sprintf("%s (%d files)", dc.dir, dc.count)
	}
	logger.Warn("Processing a large number of files; consider narrowing ignore rules",
		zap.Int("fileCount", len(files)),
		zap.Strings("topDirectories", top))
}
