//go:build !linux

package machine

// adviseSequential is a no-op on hosts without a madvise-style prefetch
// hint; behaviour is identical, only the hint is unavailable.
func adviseSequential(region []byte) {}
