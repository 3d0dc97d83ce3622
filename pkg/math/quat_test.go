package math

import (
	gomath "math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
	if q.Yaw() != 0 {
		t.Errorf("Identity quaternion yaw should be 0, got %v", q.Yaw())
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(gomath.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if gomath.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(gomath.Pi/2))

	// Should have Y component and W = cos(45deg)
	expectedW := float32(gomath.Cos(gomath.Pi / 4))
	expectedY := float32(gomath.Sin(gomath.Pi / 4))

	if gomath.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if gomath.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatYawRoundTrip(t *testing.T) {
	for _, yaw := range []float32{0, 0.4, -0.4, 1.9, -2.8, 3.1} {
		q := QuatFromYaw(yaw)
		got := q.Yaw()
		if abs(WrapAngle(got-yaw)) > 1e-5 {
			t.Errorf("QuatFromYaw(%v).Yaw() = %v", yaw, got)
		}
	}
}

func TestQuatFromYawMatchesDirection(t *testing.T) {
	// Rotating the rest forward (-Z) by a heading quaternion must agree
	// with DirectionFromYaw.
	for _, yaw := range []float32{0, 0.7, -1.3, 2.5} {
		m := QuatFromYaw(yaw).ToMat4()
		p := m.TransformPoint([3]float32{0, 0, -1})
		want := DirectionFromYaw(yaw)
		if abs(p[0]-want.X) > 1e-5 || abs(p[1]) > 1e-5 || abs(p[2]-want.Z) > 1e-5 {
			t.Errorf("QuatFromYaw(%v) rotates forward to %v, want %v", yaw, p, want)
		}
	}
}

func TestQuatToMat4(t *testing.T) {
	// Identity quaternion should produce identity matrix
	q := QuatIdentity()
	m := q.ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if gomath.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatMulCombines(t *testing.T) {
	a := QuatFromYaw(0.5)
	b := QuatFromYaw(0.25)
	got := a.Mul(b).Yaw()
	if abs(WrapAngle(got-0.75)) > 1e-5 {
		t.Errorf("combined yaw = %v, want 0.75", got)
	}
}
