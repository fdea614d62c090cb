package machine

import (
	"math/rand/v2"
	"testing"

	"github.com/hexdraft/zdoc/internal/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Property 7: a slot's marker byte is 0x00 iff the string's length is <=14,
// and 0xFF iff its length is >14 (§4.4 slot discipline). White-box (same
// package as encodeSlot/decodeSlot) since the marker byte isn't exposed
// through machine's public API.
func TestPropertySlotMarkerDiscipline(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	const alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	for i := 0; i < 100; i++ {
		n := rng.IntN(64)
		b := make([]byte, n)
		for j := range b {
			b[j] = alnum[rng.IntN(len(alnum))]
		}
		s := string(b)

		heap := pool.NewByteBuffer(64)
		slot := encodeSlot(s, heap)

		if n <= maxInlineLen {
			assert.Equalf(t, byte(markerInline), slot[15], "case %d: len %d should be inline", i, n)
		} else {
			assert.Equalf(t, byte(markerHeap), slot[15], "case %d: len %d should be on heap", i, n)
		}

		got, err := decodeSlot(slot[:], heap.Bytes())
		require.NoErrorf(t, err, "case %d", i)
		assert.Equalf(t, s, got, "case %d", i)
	}
}
