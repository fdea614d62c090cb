package base62_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/hexdraft/zdoc/internal/base62"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeZero(t *testing.T) {
	assert.Equal(t, "0", base62.Encode(0))
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	values := []uint64{0, 1, 61, 62, 63, 320, 1000000}
	for i := 0; i < 200; i++ {
		values = append(values, r.Uint64())
	}

	for _, v := range values {
		enc := base62.Encode(v)
		got, err := base62.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestNoLeadingZeros(t *testing.T) {
	enc := base62.Encode(62)
	assert.NotEqual(t, byte('0'), enc[0])

	_, err := base62.Decode("00")
	require.Error(t, err)
}

func TestDecodeRejectsInvalidAlphabet(t *testing.T) {
	_, err := base62.Decode("5A!")
	require.Error(t, err)
}

func TestMagnitudeOrderPreserved(t *testing.T) {
	prev := ""
	for n := uint64(0); n < 5000; n += 37 {
		enc := base62.Encode(n)
		require.GreaterOrEqual(t, len(enc), 1)
		if prev != "" {
			require.Truef(t, len(enc) > len(prev) || (len(enc) == len(prev) && enc > prev),
				"Encode(%d) = %q does not sort after %q", n, enc, prev)
		}
		prev = enc
	}
}

func Test320EncodesTo5A(t *testing.T) {
	assert.Equal(t, "5A", base62.Encode(320))
	n, err := base62.Decode("5A")
	require.NoError(t, err)
	assert.Equal(t, uint64(320), n)
}

func TestBase62Efficiency(t *testing.T) {
	for n := uint64(62); n < 100000; n += 131 {
		dec := strconv.FormatUint(n, 10)
		enc := base62.Encode(n)
		if n > 61 && base62.ShorterThanDecimal(n) {
			assert.Less(t, len(enc), len(dec))
		}
	}

	for n := uint64(0); n <= 61; n++ {
		dec := strconv.FormatUint(n, 10)
		enc := base62.Encode(n)
		assert.LessOrEqual(t, len(enc), len(dec))
	}
}
