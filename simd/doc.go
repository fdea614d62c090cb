// Package simd implements the three batch primitives of §4.6: SumU64s,
// Search, and Compare over contiguous byte regions interpreted as packed
// little-endian u64 values. A runtime dispatcher probes CPU features once
// (golang.org/x/sys/cpu) and caches the selected path in a one-shot
// atomic.Pointer, mirroring endian.CheckEndianness's host-probing style and
// design note §9's function-pointer-dispatch recommendation. Every path
// must return results identical to the scalar path for any input — the
// spec makes no performance claim, only this equivalence (§8 property 10).
package simd
