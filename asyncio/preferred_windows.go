//go:build windows

package asyncio

import "errors"

// errCompletionPortUnavailable: see preferred_linux.go's errRingBackendUnavailable.
var errCompletionPortUnavailable = errors.New("asyncio: completion-port-based backend not implemented")

func preferredKind() Kind { return KindCompletionPort }

func newPreferredBackend() (Backend, error) {
	return nil, errCompletionPortUnavailable
}
