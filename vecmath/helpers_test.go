package vecmath

import (
	"math"
	"math/rand"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig = func() *spew.ConfigState {
	c := spew.NewDefaultConfig()
	c.DisableCapacities = true
	c.DisablePointerAddresses = true
	return c
}()

func dump(a ...interface{}) string { return spewConfig.Sdump(a...) }

func randVec3(rng *rand.Rand) Vec3 {
	return Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
}

func randVec4(rng *rand.Rand) Vec4 {
	return Vec4{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
}

func randMat4(rng *rand.Rand) Mat4 {
	return Mat4{randVec4(rng), randVec4(rng), randVec4(rng), randVec4(rng)}
}

// randInvertible returns a diagonally dominant, hence well conditioned, matrix.
func randInvertible(rng *rand.Rand) Mat4 {
	m := randMat4(rng)
	for i := 0; i < 4; i++ {
		m[i][i] += 4
	}
	return m
}

func hasNonFinite(m Mat4) bool {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			f := float64(m[c][r])
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return true
			}
		}
	}
	return false
}
