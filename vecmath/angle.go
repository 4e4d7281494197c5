package vecmath

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg * (math.Pi / 180) }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 { return rad * (180 / math.Pi) }
