//go:build linux

package asyncio

import "errors"

// errRingBackendUnavailable is returned unconditionally: a ring-based
// (io_uring) backend has no grounding in the retrieved examples, so the
// preferred backend always fails to initialise here and Facade falls
// back to the blocking pool, per §4.7's fallback rule.
var errRingBackendUnavailable = errors.New("asyncio: ring-based backend not implemented")

func preferredKind() Kind { return KindRingBased }

func newPreferredBackend() (Backend, error) {
	return nil, errRingBackendUnavailable
}
