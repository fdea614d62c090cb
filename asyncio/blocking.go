package asyncio

import (
	"context"
	"os"

	"github.com/hexdraft/zdoc/errs"
)

// defaultPoolSize bounds how many blocking syscalls the fallback backend
// runs concurrently; §5 calls this "a bounded worker pool for the
// blocking fallback".
const defaultPoolSize = 32

// blockingBackend satisfies every platform: each call borrows a slot from
// a buffered-channel semaphore, then performs an ordinary blocking
// syscall on the calling goroutine. It is the backend every Facade
// resolves to today (see doc.go).
type blockingBackend struct {
	sem chan struct{}
}

var _ Backend = (*blockingBackend)(nil)

func newBlockingBackend(poolSize int) *blockingBackend {
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	return &blockingBackend{sem: make(chan struct{}, poolSize)}
}

func (b *blockingBackend) acquire(ctx context.Context) error {
	if ctx.Err() != nil {
		return &errs.IoError{Cause: errs.ErrCancelled}
	}

	select {
	case b.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return &errs.IoError{Cause: errs.ErrCancelled}
	}
}

func (b *blockingBackend) release() {
	<-b.sem
}

func (b *blockingBackend) Read(ctx context.Context, path string) ([]byte, error) {
	if err := b.acquire(ctx); err != nil {
		return nil, err
	}
	defer b.release()

	if ctx.Err() != nil {
		return nil, &errs.IoError{Cause: errs.ErrCancelled}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errs.IoError{Cause: err}
	}

	return data, nil
}

// WriteFile writes data to a temp file in path's directory, then renames
// it onto path — the write-to-temp-plus-rename atomicity §4.7 requires on
// every backend. The rename is the only step that can make the write
// observable, so a cancellation before it leaves the target untouched.
func (b *blockingBackend) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := b.acquire(ctx); err != nil {
		return err
	}
	defer b.release()

	if ctx.Err() != nil {
		return &errs.IoError{Cause: errs.ErrCancelled}
	}

	tmp, err := os.CreateTemp(dirOf(path), tempPattern(path))
	if err != nil {
		return &errs.IoError{Cause: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return &errs.IoError{Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return &errs.IoError{Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return &errs.IoError{Cause: err}
	}

	if ctx.Err() != nil {
		os.Remove(tmpPath)

		return &errs.IoError{Cause: errs.ErrCancelled}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)

		return &errs.IoError{Cause: err}
	}

	return nil
}

func (b *blockingBackend) Close() error { return nil }
