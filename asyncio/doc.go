// Package asyncio implements the four-capability async batch file I/O
// façade of §4.7: Read, Write, ReadBatch, WriteBatch over file paths.
// Write is atomic on every backend (write-to-temp + rename). Batch
// operations fan files out across goroutines via golang.org/x/sync/errgroup
// (internal/start.RunAll's fan-out idiom) and report each item's outcome
// independently; there is no cross-item ordering guarantee and no
// all-or-nothing semantics (§4.7, §5).
//
// The façade selects a Backend at construction: ring-based on Linux,
// event-queue-based on BSD/macOS, completion-port-based on Windows, or a
// blocking worker pool anywhere else or when the preferred backend fails
// to initialise. This build carries only the blocking backend — no pack
// example or ecosystem io_uring/kqueue/IOCP binding was retrieved to
// ground the other three on (see DESIGN.md) — so selection always
// resolves to it today; the Backend interface is the seam a ring/queue/
// completion-port implementation would plug into without callers
// noticing, per §4.7's "selection is opaque to callers".
package asyncio
