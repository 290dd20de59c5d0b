package gemv

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a1, b1 := Generate[uint32](33, 17)
	a2, b2 := Generate[uint32](33, 17)

	require.Len(t, a1, 33*17)
	require.Len(t, b1, 17)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestGenerateRange(t *testing.T) {
	a, b := Generate[int64](64, 64)
	for i, v := range slices.Concat(a, b) {
		if v < 0 || v >= MaxValue {
			t.Fatalf("element %d = %d, want [0, %d)", i, v, MaxValue)
		}
	}
}

func TestGenerateSameValuesAcrossTypes(t *testing.T) {
	ai, bi := Generate[int32](8, 9)
	af, bf := Generate[float64](8, 9)
	for i := range ai {
		assert.Equal(t, float64(ai[i]), af[i], "a[%d]", i)
	}
	for i := range bi {
		assert.Equal(t, float64(bi[i]), bf[i], "b[%d]", i)
	}
}

func TestGenerateSeeded(t *testing.T) {
	a0, _ := GenerateSeeded[uint32](16, 16, Seed)
	a1, _ := GenerateSeeded[uint32](16, 16, Seed+1)
	aDefault, _ := Generate[uint32](16, 16)

	assert.Equal(t, aDefault, a0)
	assert.NotEqual(t, a0, a1)
}

func TestGenerateEmpty(t *testing.T) {
	a, b := Generate[float32](0, 0)
	assert.Empty(t, a)
	assert.Empty(t, b)
}
