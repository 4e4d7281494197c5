package vecmath

import "math"

// vector is the closed set of vector layouts. The arithmetic below is written once
// against it; the typed method sets in vec_gen.go forward to these helpers.
type vector interface {
	~[2]float32 | ~[3]float32 | ~[4]float32
}

func add[V vector](a, b V) V {
	var r V
	for i := 0; i < len(a); i++ {
		r[i] = a[i] + b[i]
	}
	return r
}

func sub[V vector](a, b V) V {
	var r V
	for i := 0; i < len(a); i++ {
		r[i] = a[i] - b[i]
	}
	return r
}

func addScalar[V vector](a V, s float32) V {
	var r V
	for i := 0; i < len(a); i++ {
		r[i] = a[i] + s
	}
	return r
}

func subScalar[V vector](a V, s float32) V {
	var r V
	for i := 0; i < len(a); i++ {
		r[i] = a[i] - s
	}
	return r
}

func mulScalar[V vector](a V, s float32) V {
	var r V
	for i := 0; i < len(a); i++ {
		r[i] = a[i] * s
	}
	return r
}

// divScalar divides each component; s == 0 gives Inf/NaN components.
func divScalar[V vector](a V, s float32) V {
	var r V
	for i := 0; i < len(a); i++ {
		r[i] = a[i] / s
	}
	return r
}

func neg[V vector](a V) V {
	var r V
	for i := 0; i < len(a); i++ {
		r[i] = -a[i]
	}
	return r
}

func dot[V vector](a, b V) float32 {
	var sum float32
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func length[V vector](a V) float32 {
	return float32(math.Sqrt(float64(dot(a, a))))
}

// normalize scales a by 1/|a|. The zero vector is not special-cased.
func normalize[V vector](a V) V {
	return mulScalar(a, 1/length(a))
}

func approxEqual[V vector](a, b V, eps float32) bool {
	for i := 0; i < len(a); i++ {
		if !FloatEqualThreshold(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// FloatEqualThreshold reports whether a and b differ by at most eps.
// NaN is never equal to anything.
func FloatEqualThreshold(a, b, eps float32) bool {
	if a == b {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
