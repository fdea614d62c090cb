package asyncio

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// errBlockingIsPreferred lets preferred_other.go share New's single
// fallback code path instead of special-casing "already blocking".
var errBlockingIsPreferred = errors.New("asyncio: blocking pool is the preferred backend on this host")

// Facade is the single capability set {read, write, read_batch,
// write_batch} of §4.7. Construction probes for the host's preferred
// backend and transparently falls back to a blocking pool on failure;
// Kind reports which one is actually in use.
type Facade struct {
	backend Backend
	kind    Kind
	limit   int
}

// Option configures a Facade at construction.
type Option func(*facadeConfig)

type facadeConfig struct {
	poolSize   int
	batchLimit int
}

// WithPoolSize sets the blocking backend's worker pool size, used only if
// the blocking fallback is selected.
func WithPoolSize(n int) Option {
	return func(c *facadeConfig) { c.poolSize = n }
}

// WithBatchLimit bounds how many items of a batch operation run
// concurrently; defaults to defaultPoolSize.
func WithBatchLimit(n int) Option {
	return func(c *facadeConfig) { c.batchLimit = n }
}

// New selects a backend and returns a ready Facade. It never fails:
// per §4.7, "failure to initialise the preferred backend falls back to
// blocking", and the blocking backend cannot itself fail to construct.
func New(opts ...Option) *Facade {
	cfg := facadeConfig{poolSize: defaultPoolSize, batchLimit: defaultPoolSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	kind := preferredKind()
	backend, err := newPreferredBackend()
	if err != nil {
		backend = newBlockingBackend(cfg.poolSize)
		kind = KindBlockingPool
	}

	limit := cfg.batchLimit
	if limit <= 0 {
		limit = defaultPoolSize
	}

	return &Facade{backend: backend, kind: kind, limit: limit}
}

// Kind reports which backend this Facade is actually driving. Selection
// is opaque to callers of Read/Write/ReadBatch/WriteBatch; this exists
// only for diagnostics.
func (f *Facade) Kind() Kind { return f.kind }

// Close releases backend resources.
func (f *Facade) Close() error { return f.backend.Close() }

// Read returns path's entire contents.
func (f *Facade) Read(ctx context.Context, path string) ([]byte, error) {
	return f.backend.Read(ctx, path)
}

// Write replaces path's contents atomically.
func (f *Facade) Write(ctx context.Context, path string, data []byte) error {
	return f.backend.WriteFile(ctx, path, data)
}

// ReadResult pairs a ReadBatch input path with its outcome, preserving
// input order even when individual items fail or are cancelled.
type ReadResult struct {
	Path string
	Data []byte
	Err  error
}

// ReadBatch reads every path, aligned 1:1 with the input. Per §4.7 there
// is no ordering guarantee between items — they are fanned out across
// goroutines bounded by the Facade's batch limit via errgroup, the same
// fan-out idiom internal/start.RunAll uses — but the result slice is
// always returned in input order for caller convenience.
func (f *Facade) ReadBatch(ctx context.Context, paths []string) []ReadResult {
	results := make([]ReadResult, len(paths))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(f.limit)

	for i, path := range paths {
		i, path := i, path
		// Each goroutine returns nil to the group regardless of its own
		// item's outcome: one item's failure must not cancel gctx and
		// abort its siblings, since ReadBatch has no all-or-nothing
		// contract. Only ctx's own deadline or cancellation stops the
		// batch early.
		group.Go(func() error {
			data, err := f.backend.Read(gctx, path)
			results[i] = ReadResult{Path: path, Data: data, Err: err}

			return nil
		})
	}
	_ = group.Wait()

	return results
}

// WritePair is one item of a WriteBatch call.
type WritePair struct {
	Path string
	Data []byte
}

// WriteResult pairs a WriteBatch input with its outcome.
type WriteResult struct {
	Path string
	Err  error
}

// WriteBatch commits every pair. A cancelled batch may have partially
// completed items; those already renamed into place remain visible, per
// §4.7's cooperative-cancellation contract. Callers needing all-or-nothing
// semantics must layer their own transaction on top.
func (f *Facade) WriteBatch(ctx context.Context, pairs []WritePair) []WriteResult {
	results := make([]WriteResult, len(pairs))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(f.limit)

	for i, pair := range pairs {
		i, pair := i, pair
		group.Go(func() error {
			err := f.backend.WriteFile(gctx, pair.Path, pair.Data)
			results[i] = WriteResult{Path: pair.Path, Err: err}

			return nil
		})
	}
	_ = group.Wait()

	return results
}
