package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dmolchanov/magequest/internal/game/random"
)

func TestCryptoSource_IntnRange(t *testing.T) {
	src := random.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestCryptoSource_Float64Range(t *testing.T) {
	src := random.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestCryptoSource_IntnPanicsOnNonPositive(t *testing.T) {
	src := random.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-3) })
}

func TestSequenceSource_ReplaysAndCycles(t *testing.T) {
	src := random.NewSequenceSource([]int{0, 2, 5}, []float64{0.25})
	assert.Equal(t, 0, src.Intn(10))
	assert.Equal(t, 2, src.Intn(10))
	assert.Equal(t, 5, src.Intn(10))
	assert.Equal(t, 0, src.Intn(10), "sequence cycles")
	assert.Equal(t, 0.25, src.Float64())
	assert.Equal(t, 0.25, src.Float64())
}

func TestSequenceSource_ReducesOutOfRange(t *testing.T) {
	src := random.NewSequenceSource([]int{11}, nil)
	assert.Equal(t, 1, src.Intn(10))
}

func TestProperty_BetweenInclusive(t *testing.T) {
	src := random.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		min := rapid.IntRange(-50, 50).Draw(rt, "min")
		max := rapid.IntRange(min, min+100).Draw(rt, "max")
		v := random.Between(src, min, max)
		assert.GreaterOrEqual(rt, v, min)
		assert.LessOrEqual(rt, v, max)
	})
}

func TestPick_SingleElement(t *testing.T) {
	src := random.NewCryptoSource()
	assert.Equal(t, "only", random.Pick(src, []string{"only"}))
}

func TestPick_PanicsOnEmpty(t *testing.T) {
	src := random.NewCryptoSource()
	assert.Panics(t, func() { random.Pick(src, []string{}) })
}
