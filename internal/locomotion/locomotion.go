// Package locomotion implements turn-then-move character locomotion on a
// fixed physics tick. The body never translates while it reorients: any
// requested heading change beyond a small tolerance stops the body, plays a
// timed turn toward the new heading, and only then lets speed ramp back up.
package locomotion

import "github.com/Faultbox/strider/pkg/math"

// Body is the per-tick physics surface the controller drives. Rotation is
// constrained to the vertical axis; the controller owns yaw and planar
// velocity, and never touches vertical motion.
type Body interface {
	// Yaw returns the body's current heading in radians.
	Yaw() float32
	// SetYaw writes a new heading. The other two rotational axes stay locked.
	SetYaw(yaw float32)
	// PlanarVelocity returns the horizontal (x, z) velocity components.
	PlanarVelocity() math.Vec2
	// SetPlanarVelocity writes the horizontal velocity, leaving vertical
	// velocity untouched.
	SetPlanarVelocity(v math.Vec2)
	// KillSpin forces angular velocity to zero. Heading is authored by
	// SetYaw only, never by rotational dynamics.
	KillSpin()
}

// Facing supplies the horizontal rotation that movement input is relative
// to, typically a third-person camera rig.
type Facing interface {
	HorizontalRotation() float32
}

// AxisProvider supplies the combined 2D movement axis, polled once per tick.
// Components are in [-1, 1] with the combined magnitude clamped to 1.
type AxisProvider interface {
	Axis() math.Vec2
}
