package asyncio

import "context"

// Kind identifies which backend a Facade selected (§4.7's backend table).
type Kind int

const (
	KindBlockingPool Kind = iota
	KindRingBased
	KindEventQueue
	KindCompletionPort
)

func (k Kind) String() string {
	switch k {
	case KindRingBased:
		return "ring-based"
	case KindEventQueue:
		return "event-queue-based"
	case KindCompletionPort:
		return "completion-port-based"
	default:
		return "blocking-pool"
	}
}

// Backend is the single-item I/O executor a Facade drives. Each concrete
// backend owns its own suspension model (an event loop, or a worker pool
// for the blocking fallback); Facade adds batching and atomic-write
// semantics on top, identically regardless of which Backend is in play.
type Backend interface {
	Read(ctx context.Context, path string) ([]byte, error)
	// WriteFile replaces path's contents atomically: the backend writes
	// the bytes to a temporary file beside path and renames it onto path
	// itself; Facade does not rename.
	WriteFile(ctx context.Context, path string, data []byte) error
	Close() error
}
