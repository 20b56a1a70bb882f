package bag

import (
	rng "github.com/leesper/go_rng"

	"github.com/coldcore/coldcore/piece"
)

// Shuffled7 returns one random permutation of the seven guideline
// kinds, drawn with a Mersenne-twister uniform generator instead of a
// hand-rolled math/rand shuffle. Used by the demo CLI and by tests
// that need a realistic, non-fixed bag sequence.
func Shuffled7(seed int64) [7]piece.Kind {
	gen := rng.NewUniformGenerator(seed)
	out := piece.Kinds
	for i := len(out) - 1; i > 0; i-- {
		// Int64Range's bounds are inclusive, so the upper bound is i
		// itself (the Fisher-Yates draw wants j in [0, i]), not i+1.
		j := int(gen.Int64Range(0, int64(i)))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
