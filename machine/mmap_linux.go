//go:build linux

package machine

import "golang.org/x/sys/unix"

// adviseSequential hints the kernel to prefetch pages sequentially,
// matching the batch reader's forward-only walk over records (§4.4
// "sequential-prefetch hints where the host supports them").
func adviseSequential(region []byte) {
	_ = unix.Madvise(region, unix.MADV_SEQUENTIAL)
}
