// Package chunk sizes the assembly batches from aggregate statistics of a
// scan. Heavy inputs shrink the batch so peak memory stays bounded without
// parallelizing; this is a heuristic, not an enforced limit.
package chunk

import "repobook/pkg/scan"

// Thresholds for classifying individual files by original size.
const (
	LargeFileBytes = 50 * 1024
	HugeFileBytes  = 10 * 1024 * 1024
)

// Stats are the aggregate numbers the planner works from.
type Stats struct {
	FileCount  int
	TotalBytes int64
	LargeFiles int // files over LargeFileBytes
	HugeFiles  int // files over HugeFileBytes
}

// Collect computes Stats from a scan result.
func Collect(files []scan.FileRecord) Stats {
	var s Stats
	s.FileCount = len(files)
	for _, f := range files {
		s.TotalBytes += int64(f.Size)
		if f.Size > LargeFileBytes {
			s.LargeFiles++
		}
		if f.Size > HugeFileBytes {
			s.HugeFiles++
		}
	}
	return s
}

// Plan returns the effective batch size for the given statistics. Rules are
// evaluated in order, first match wins:
//
//	count > 10, total > 1 MB, or more than 5 large files -> 1
//	count > 5 or average file size > 10 KB               -> 3
//	otherwise                                            -> defaultSize
//
// Pure and total; the result is always positive.
func Plan(s Stats, defaultSize int) int {
	if defaultSize < 1 {
		defaultSize = 1
	}

	if s.FileCount > 10 || s.TotalBytes > 1_000_000 || s.LargeFiles > 5 {
		return 1
	}

	var avg int64
	if s.FileCount > 0 {
		avg = s.TotalBytes / int64(s.FileCount)
	}
	if s.FileCount > 5 || avg > 10_000 {
		return 3
	}
	return defaultSize
}
