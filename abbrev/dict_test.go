package abbrev_test

import (
	"testing"

	"github.com/hexdraft/zdoc/abbrev"
	"github.com/stretchr/testify/assert"
)

func TestExpandAndContractRoundTrip(t *testing.T) {
	d := abbrev.New(map[string]string{"n": "name", "v": "version"})

	assert.Equal(t, "name", d.Expand("", "n"))
	assert.Equal(t, "n", d.Contract("", "name"))
}

func TestUnrecognisedKeyPassesThrough(t *testing.T) {
	d := abbrev.New(map[string]string{"n": "name"})

	assert.Equal(t, "zzz", d.Expand("", "zzz"))
	assert.Equal(t, "zzz", d.Contract("", "zzz"))
}

func TestContextOverrideConsultedFirst(t *testing.T) {
	d := abbrev.New(map[string]string{"t": "type"})
	d.WithOverride("dependencies", "t", "target")

	assert.Equal(t, "target", d.Expand("dependencies", "t"))
	assert.Equal(t, "type", d.Expand("other-section", "t"))
	assert.Equal(t, "t", d.Contract("dependencies", "target"))
}

func TestDefaultDictIsStableSingleton(t *testing.T) {
	d1 := abbrev.Default()
	d2 := abbrev.Default()

	assert.Same(t, d1, d2)
	assert.Equal(t, "name", d1.Expand("", "n"))
	assert.Equal(t, "dependencies", d1.Expand("", "dep"))
}
