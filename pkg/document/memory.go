package document

import (
	"runtime"

	"go.uber.org/zap"
)

// memoryProbe samples heap usage between batches. Crossing the soft limit
// only produces a warning; assembly never throttles or aborts on memory. The
// probe lives on the Assembler for the duration of one run.
type memoryProbe struct {
	softLimit uint64
	logger    *zap.Logger
	warned    bool
}

func (p *memoryProbe) sample() {
	if p.softLimit == 0 {
		return
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc > p.softLimit && !p.warned {
		p.warned = true
		p.logger.Warn("Heap usage above configured soft limit",
			zap.Uint64("heapAllocBytes", ms.HeapAlloc),
			zap.Uint64("softLimitBytes", p.softLimit))
	}
}
