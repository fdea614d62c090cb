package simd

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Path identifies which implementation a dispatch selected. Exposed for
// diagnostics and equivalence testing, not for callers to branch on.
type Path int

const (
	PathScalar Path = iota
	PathAVX2
	PathAVX512
)

func (p Path) String() string {
	switch p {
	case PathAVX512:
		return "avx512"
	case PathAVX2:
		return "avx2"
	default:
		return "scalar"
	}
}

type impl struct {
	path    Path
	sum     func([]byte) uint64
	search  func([]byte, uint64) int
	compare func([]byte, []byte) bool
}

var scalarImpl = &impl{path: PathScalar, sum: scalarSum, search: scalarSearch, compare: scalarCompare}

// selected caches the one-time dispatch decision. Every subsequent call is
// a lock-free atomic load, mirroring the spec's "one-shot cell" dispatcher
// (§9 design note) and the abbreviation dictionary's sync.Once-guarded
// lazy global.
var selected atomic.Pointer[impl]

func detect() *impl {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL:
		return &impl{path: PathAVX512, sum: avx512Sum, search: avx512Search, compare: avx512Compare}
	case cpu.X86.HasAVX2:
		return &impl{path: PathAVX2, sum: avx2Sum, search: avx2Search, compare: avx2Compare}
	default:
		return scalarImpl
	}
}

func current() *impl {
	if p := selected.Load(); p != nil {
		return p
	}

	p := detect()
	selected.CompareAndSwap(nil, p)

	return selected.Load()
}

// DetectedPath returns the implementation the dispatcher has selected (or
// will select on first use), for diagnostics and tests.
func DetectedPath() Path {
	return current().path
}
