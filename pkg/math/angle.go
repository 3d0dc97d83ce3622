package math

import "math"

// Angle helpers for yaw-based heading control. Yaw is rotation about the
// vertical axis in radians; yaw 0 points along -Z.

// YawFromDirection returns the yaw of a horizontal direction vector.
// The zero vector has no meaningful yaw; callers must guard it.
func YawFromDirection(dir Vec3) float32 {
	return float32(math.Atan2(float64(dir.X), float64(-dir.Z)))
}

// DirectionFromYaw returns the unit horizontal direction for a yaw angle.
// It is the inverse of YawFromDirection.
func DirectionFromYaw(yaw float32) Vec3 {
	return Vec3{
		X: float32(math.Sin(float64(yaw))),
		Y: 0,
		Z: -float32(math.Cos(float64(yaw))),
	}
}

// AngleBetweenHorizontal returns the angle in [0, π] between two vectors
// projected onto the horizontal plane. Returns 0 if either vector projects
// to (near) zero.
func AngleBetweenHorizontal(a, b Vec3) float32 {
	a.Y = 0
	b.Y = 0
	la := a.Length()
	lb := b.Length()
	if la == 0 || lb == 0 {
		return 0
	}
	dot := Clamp(a.Dot(b)/(la*lb), -1, 1)
	return float32(math.Acos(float64(dot)))
}

// WrapAngle normalizes an angle in radians to (-π, π].
func WrapAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	a = float32(math.Mod(float64(a), twoPi))
	if a > math.Pi {
		a -= twoPi
	} else if a <= -math.Pi {
		a += twoPi
	}
	return a
}

// WrapDegrees normalizes an angle in degrees to [0, 360).
func WrapDegrees(a float32) float32 {
	a = float32(math.Mod(float64(a), 360))
	if a < 0 {
		a += 360
	}
	return a
}

// LerpAngle interpolates from one angle to another along the shorter arc,
// so the swept angle never exceeds π.
func LerpAngle(from, to, t float32) float32 {
	return from + WrapAngle(to-from)*t
}

// MoveToward moves from toward to by at most step, without overshoot.
// step must be non-negative.
func MoveToward(from, to, step float32) float32 {
	if from < to {
		from += step
		if from > to {
			from = to
		}
	} else {
		from -= step
		if from < to {
			from = to
		}
	}
	return from
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math.Pi
}
