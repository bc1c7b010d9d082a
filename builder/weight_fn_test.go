package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ghertil/builder"
	"github.com/stretchr/testify/assert"
)

func TestDefaultWeightFn(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
}

func TestConstantWeightFn(t *testing.T) {
	fn := builder.ConstantWeightFn(42)
	assert.Equal(t, int64(42), fn(nil))
	assert.Equal(t, int64(42), fn(rand.New(rand.NewSource(1))))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
}

func TestUniformWeightFn(t *testing.T) {
	fn := builder.UniformWeightFn(1, 10)
	rng := rand.New(rand.NewSource(5))
	seen := make(map[int64]bool)
	for i := 0; i < 2000; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(1))
		assert.LessOrEqual(t, w, int64(10))
		seen[w] = true
	}
	assert.Len(t, seen, 10, "both bounds are inclusive")

	assert.Equal(t, int64(1), fn(nil))
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 3) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
}
