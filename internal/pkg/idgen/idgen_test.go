package idgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziyadedher/skrish/internal/pkg/idgen"
)

func TestSequentialGeneratesSortableIDs(t *testing.T) {
	gen := idgen.NewSequential("ent")

	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		ids = append(ids, gen.Generate())
	}

	assert.Equal(t, "ent_001", ids[0])
	assert.Equal(t, "ent_012", ids[11])
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i], "IDs must sort in generation order")
	}
}

func TestSequentialWithoutPrefix(t *testing.T) {
	gen := idgen.NewSequential("")
	assert.Equal(t, "001", gen.Generate())
	assert.Equal(t, "002", gen.Generate())
}

func TestUUIDGeneratorUnique(t *testing.T) {
	gen := idgen.NewUUID("sess")

	a := gen.Generate()
	b := gen.Generate()

	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "sess_")
}
