package machine_test

import (
	"math/rand/v2"
	"testing"

	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDoc(t *testing.T) *zdoc.Document {
	t.Helper()

	doc := zdoc.New()
	doc.Context = append(doc.Context,
		zdoc.ContextEntry{Key: "name", Value: zdoc.String("dx")},
		zdoc.ContextEntry{Key: "version", Value: zdoc.String("0.0.1")},
	)
	require.NoError(t, doc.AddSection(zdoc.Section{
		ID:     "dependencies",
		Schema: []string{"name", "version"},
		Rows: []zdoc.Row{
			{zdoc.String("left-pad"), zdoc.String("1.0.0")},
			{zdoc.String("react"), zdoc.String("18.2.0")},
		},
	}))

	return doc
}

func TestWriteReadRoundTrip(t *testing.T) {
	doc := buildDoc(t)

	data, err := machine.Write(doc)
	require.NoError(t, err)

	back, err := machine.ReadDocument(data)
	require.NoError(t, err)
	assert.True(t, doc.Equal(back))
}

func TestWriteReadRoundTripWithArraysAndRefs(t *testing.T) {
	doc := zdoc.New()
	doc.AddReference("k1", "San Francisco")
	require.NoError(t, doc.AddSection(zdoc.Section{
		ID:     "s",
		Schema: []string{"city", "tags"},
		Rows: []zdoc.Row{
			{zdoc.Ref("k1"), zdoc.Array(zdoc.String("a"), zdoc.Number(2), zdoc.Bool(true), zdoc.Null())},
			{zdoc.Ref("k1"), zdoc.Array()},
		},
	}))

	data, err := machine.Write(doc)
	require.NoError(t, err)

	back, err := machine.ReadDocument(data)
	require.NoError(t, err)
	assert.True(t, doc.Equal(back))
}

// Scenario D: a 5-byte string is stored inline with marker 0x00 at byte 15.
func TestSlotMarkerScenarioD(t *testing.T) {
	doc := zdoc.New()
	require.NoError(t, doc.AddSection(zdoc.Section{
		ID:     "s",
		Schema: []string{"name"},
		Rows:   []zdoc.Row{{zdoc.String("Alice")}},
	}))

	data, err := machine.Write(doc)
	require.NoError(t, err)

	back, err := machine.ReadDocument(data)
	require.NoError(t, err)
	assert.True(t, doc.Equal(back))

	// "Alice" is 5 bytes, well under the 14-byte inline threshold, so the
	// buffer carries no heap section at all.
	assert.Equal(t, byte(0), data[3]&0x01)

	// "Alice" is the last slot interned (after "s" and "name") and there
	// is no heap, so its length byte (14) and marker byte (15) end the
	// buffer.
	assert.Equal(t, byte(5), data[len(data)-2])
	assert.Equal(t, byte(0x00), data[len(data)-1])
}

// Property 12: a buffer carrying N records yields exactly N items from
// Records, in order.
func TestPropertyBatchIterationYieldsExactCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	for i := 0; i < 100; i++ {
		n := 1 + rng.IntN(150)

		doc := zdoc.New()
		rows := make([]zdoc.Row, n)
		for r := range rows {
			rows[r] = zdoc.Row{zdoc.Number(float64(r)), zdoc.Bool(r%2 == 0)}
		}
		require.NoError(t, doc.AddSection(zdoc.Section{ID: "b", Schema: []string{"idx", "flag"}, Rows: rows}))

		data, err := machine.Write(doc)
		require.NoErrorf(t, err, "case %d", i)

		reader := machine.NewReader(data)
		require.NoErrorf(t, reader.Validate(), "case %d", i)
		seq, count, err := reader.Records("b")
		require.NoErrorf(t, err, "case %d", i)
		require.Equalf(t, n, count, "case %d", i)

		seen := 0
		for idx, record := range seq {
			assert.Equalf(t, seen, idx, "case %d: out of order at %d", i, seen)
			assert.NotNilf(t, record, "case %d: nil record at %d", i, idx)
			seen++
		}
		assert.Equalf(t, n, seen, "case %d: yielded %d items, want %d", i, seen, n)
	}
}

// Scenario E: a bad magic byte is rejected before any field decode.
func TestHeaderRejectsBadMagic(t *testing.T) {
	buf := []byte{0x5A, 0x45, machine.Version, 0x02, 0, 0, 0, 0}
	_, err := machine.ReadDocument(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid magic")
}

func TestHeaderRejectsUnsupportedVersion(t *testing.T) {
	buf := []byte{machine.MagicByte0, machine.MagicByte1, 0x02, 0x02, 0, 0, 0, 0}
	_, err := machine.ReadDocument(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestHeaderRejectsBufferTooSmall(t *testing.T) {
	_, err := machine.ReadDocument([]byte{0x5A})
	require.Error(t, err)
}

func TestBatchRecordsIteration(t *testing.T) {
	doc := buildDoc(t)
	data, err := machine.Write(doc)
	require.NoError(t, err)

	r := machine.NewReader(data)
	require.NoError(t, r.Validate())

	seq, count, err := r.Records("dependencies")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	n := 0
	for i, rec := range seq {
		assert.Equal(t, n, i)
		assert.Len(t, rec, 18) // 2 columns * 9-byte cells, no array cells present
		n++
	}
	assert.Equal(t, 2, n)
}

func TestBatchRecordsRejectsArraySections(t *testing.T) {
	doc := zdoc.New()
	require.NoError(t, doc.AddSection(zdoc.Section{
		ID:     "s",
		Schema: []string{"tags"},
		Rows:   []zdoc.Row{{zdoc.Array(zdoc.String("a"))}},
	}))
	data, err := machine.Write(doc)
	require.NoError(t, err)

	r := machine.NewReader(data)
	require.NoError(t, r.Validate())

	_, _, err = r.Records("s")
	assert.ErrorIs(t, err, machine.ErrSectionNotBatchEligible)
}

func TestBigEndianRoundTrip(t *testing.T) {
	doc := buildDoc(t)

	data, err := machine.Write(doc, machine.WithBigEndian())
	require.NoError(t, err)

	back, err := machine.ReadDocument(data)
	require.NoError(t, err)
	assert.True(t, doc.Equal(back))
}
