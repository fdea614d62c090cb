package convert_test

import (
	"math/rand/v2"
	"testing"

	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/convert"
	"github.com/hexdraft/zdoc/humantext"
	"github.com/hexdraft/zdoc/internal/gentest"
	"github.com/hexdraft/zdoc/llmtext"
	"github.com/hexdraft/zdoc/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc(t *testing.T) *zdoc.Document {
	t.Helper()

	doc := zdoc.New()
	doc.Context = append(doc.Context,
		zdoc.ContextEntry{Key: "name", Value: zdoc.String("dx")},
		zdoc.ContextEntry{Key: "version", Value: zdoc.String("0.0.1")},
	)
	require.NoError(t, doc.AddSection(zdoc.Section{
		ID:     "places",
		Schema: []string{"city", "tags"},
		Rows: []zdoc.Row{
			{zdoc.String("San Francisco"), zdoc.Array(zdoc.Number(1), zdoc.Bool(true))},
			{zdoc.String("San Francisco"), zdoc.Array()},
			{zdoc.String("Boulder"), zdoc.Null()},
		},
	}))

	return doc
}

// Property 3: cross-format round-trip through LLM and through Machine.
func TestCrossFormatRoundTripViaLLM(t *testing.T) {
	doc := sampleDoc(t)

	human, err := humantext.Emit(doc)
	require.NoError(t, err)

	llm, err := convert.HumanToLLM(human)
	require.NoError(t, err)

	backHuman, err := convert.LLMToHuman(llm)
	require.NoError(t, err)

	back, err := humantext.Parse(backHuman)
	require.NoError(t, err)
	assert.True(t, doc.Equal(back))
}

func TestCrossFormatRoundTripViaMachine(t *testing.T) {
	doc := sampleDoc(t)

	human, err := humantext.Emit(doc)
	require.NoError(t, err)

	machineBuf, err := convert.HumanToMachine(human)
	require.NoError(t, err)

	backHuman, err := convert.MachineToHuman(machineBuf)
	require.NoError(t, err)

	back, err := humantext.Parse(backHuman)
	require.NoError(t, err)
	assert.True(t, doc.Equal(back))
}

func TestLLMMachineRoundTrip(t *testing.T) {
	doc := sampleDoc(t)

	llm, err := convert.HumanToLLM(mustHumanEmit(t, doc))
	require.NoError(t, err)

	machineBuf, err := convert.LLMToMachine(llm)
	require.NoError(t, err)

	backLLM, err := convert.MachineToLLM(machineBuf)
	require.NoError(t, err)

	back, err := convert.ToDocument(convert.FormatLLM, backLLM)
	require.NoError(t, err)
	assert.True(t, doc.Equal(back))
}

// Property 3: cross-format round-trip, driven through a random Document
// instead of one fixed fixture, for both the LLM and Machine paths.
func TestPropertyCrossFormatRoundTripViaLLM(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for i := 0; i < 100; i++ {
		doc := gentest.New(rng)

		human, err := humantext.Emit(doc)
		require.NoErrorf(t, err, "case %d", i)

		llm, err := convert.HumanToLLM(human)
		require.NoErrorf(t, err, "case %d", i)

		backHuman, err := convert.LLMToHuman(llm)
		require.NoErrorf(t, err, "case %d", i)

		back, err := humantext.Parse(backHuman)
		require.NoErrorf(t, err, "case %d", i)
		assert.Truef(t, doc.Equal(back), "case %d", i)
	}
}

func TestPropertyCrossFormatRoundTripViaMachine(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for i := 0; i < 100; i++ {
		doc := gentest.New(rng)

		human, err := humantext.Emit(doc)
		require.NoErrorf(t, err, "case %d", i)

		machineBuf, err := convert.HumanToMachine(human)
		require.NoErrorf(t, err, "case %d", i)

		backHuman, err := convert.MachineToHuman(machineBuf)
		require.NoErrorf(t, err, "case %d", i)

		back, err := humantext.Parse(backHuman)
		require.NoErrorf(t, err, "case %d", i)
		assert.Truef(t, doc.Equal(back), "case %d", i)
	}
}

// Property 16: section order in emit_X(D) equals section order in D, for
// X in {llm, human, machine}.
func TestPropertySectionOrderPreservedAcrossFormats(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	for i := 0; i < 100; i++ {
		doc := gentest.New(rng)
		var wantIDs []string
		for _, sec := range doc.Sections {
			wantIDs = append(wantIDs, sec.ID)
		}

		humanOut, err := humantext.Emit(doc)
		require.NoErrorf(t, err, "case %d", i)
		humanBack, err := humantext.Parse(humanOut)
		require.NoErrorf(t, err, "case %d", i)
		assert.Equalf(t, wantIDs, sectionIDs(humanBack), "case %d: human", i)

		llmOut, err := llmtext.Emit(doc)
		require.NoErrorf(t, err, "case %d", i)
		llmBack, err := llmtext.Parse(llmOut)
		require.NoErrorf(t, err, "case %d", i)
		assert.Equalf(t, wantIDs, sectionIDs(llmBack), "case %d: llm", i)

		machineOut, err := machine.Write(doc)
		require.NoErrorf(t, err, "case %d", i)
		machineBack, err := machine.ReadDocument(machineOut)
		require.NoErrorf(t, err, "case %d", i)
		assert.Equalf(t, wantIDs, sectionIDs(machineBack), "case %d: machine", i)
	}
}

// Property 17: a [parent.child] section round-trips to [parent.child]
// with keys inside not carrying the child prefix. gentest.New always
// places such a section at index 1, so every iteration exercises it.
func TestPropertyNestedSectionFidelityAcrossFormats(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	for i := 0; i < 100; i++ {
		doc := gentest.New(rng)
		want := doc.Sections[1]
		require.True(t, want.IsNested(), "case %d: fixture section is not nested", i)

		humanOut, err := humantext.Emit(doc)
		require.NoErrorf(t, err, "case %d", i)
		humanBack, err := humantext.Parse(humanOut)
		require.NoErrorf(t, err, "case %d", i)
		assertNestedSectionIntact(t, i, "human", want, humanBack)

		llmOut, err := llmtext.Emit(doc)
		require.NoErrorf(t, err, "case %d", i)
		llmBack, err := llmtext.Parse(llmOut)
		require.NoErrorf(t, err, "case %d", i)
		assertNestedSectionIntact(t, i, "llm", want, llmBack)

		machineOut, err := machine.Write(doc)
		require.NoErrorf(t, err, "case %d", i)
		machineBack, err := machine.ReadDocument(machineOut)
		require.NoErrorf(t, err, "case %d", i)
		assertNestedSectionIntact(t, i, "machine", want, machineBack)
	}
}

func assertNestedSectionIntact(t *testing.T, i int, format string, want zdoc.Section, back *zdoc.Document) {
	t.Helper()
	got, ok := back.Section(want.ID)
	require.Truef(t, ok, "case %d: %s: section %q missing", i, format, want.ID)
	assert.Equalf(t, want.Parent(), got.Parent(), "case %d: %s: parent", i, format)
	assert.Equalf(t, want.Child(), got.Child(), "case %d: %s: child", i, format)
	assert.Equalf(t, want.Schema, got.Schema, "case %d: %s: schema carries no prefix", i, format)
}

func sectionIDs(doc *zdoc.Document) []string {
	ids := make([]string, len(doc.Sections))
	for i, sec := range doc.Sections {
		ids[i] = sec.ID
	}

	return ids
}

func TestToDocumentDispatchesOnFormat(t *testing.T) {
	doc := sampleDoc(t)
	human := mustHumanEmit(t, doc)

	back, err := convert.ToDocument(convert.FormatHuman, human)
	require.NoError(t, err)
	assert.True(t, doc.Equal(back))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "Human", convert.FormatHuman.String())
	assert.Equal(t, "LLM", convert.FormatLLM.String())
	assert.Equal(t, "Machine", convert.FormatMachine.String())
}

func mustHumanEmit(t *testing.T, doc *zdoc.Document) []byte {
	t.Helper()
	out, err := humantext.Emit(doc)
	require.NoError(t, err)

	return out
}
