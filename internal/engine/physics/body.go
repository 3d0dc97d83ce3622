// Package physics provides the kinematic character body driven by the
// locomotion controller.
package physics

import "github.com/Faultbox/strider/pkg/math"

// Gravity in m/s², applied to vertical velocity while airborne.
const Gravity = 20.0

// Body is a kinematic character body. Orientation is a quaternion
// constrained to the vertical axis: the two other rotational degrees of
// freedom are permanently locked, so external spin can tilt velocity but
// never the body. Vertical motion (gravity, ground contact) is handled
// here; the locomotion controller only writes yaw and planar velocity.
type Body struct {
	Position math.Vec3
	Velocity math.Vec3

	orientation math.Quat
	angular     math.Vec3

	// GroundY is the height of the ground plane the body stands on.
	GroundY  float32
	OnGround bool
}

// NewBody creates a body at pos with the given starting heading.
func NewBody(pos math.Vec3, yaw float32) *Body {
	return &Body{
		Position:    pos,
		orientation: math.QuatFromYaw(yaw),
		OnGround:    pos.Y <= 0,
	}
}

// Yaw returns the current heading in radians.
func (b *Body) Yaw() float32 {
	return b.orientation.Yaw()
}

// SetYaw writes a new heading. The orientation stays a pure vertical-axis
// rotation no matter what was written before.
func (b *Body) SetYaw(yaw float32) {
	b.orientation = math.QuatFromYaw(yaw)
}

// Orientation returns the body's rotation for rendering.
func (b *Body) Orientation() math.Quat {
	return b.orientation
}

// PlanarVelocity returns the horizontal velocity components.
func (b *Body) PlanarVelocity() math.Vec2 {
	return b.Velocity.XZ()
}

// SetPlanarVelocity writes the horizontal velocity, leaving vertical
// velocity untouched.
func (b *Body) SetPlanarVelocity(v math.Vec2) {
	b.Velocity.X = v.X
	b.Velocity.Z = v.Y
}

// AngularVelocity returns the current angular velocity.
func (b *Body) AngularVelocity() math.Vec3 {
	return b.angular
}

// SetAngularVelocity applies an external spin. Only the vertical component
// ever reaches the orientation; the locked axes absorb the rest.
func (b *Body) SetAngularVelocity(w math.Vec3) {
	b.angular = w
}

// KillSpin forces angular velocity to zero.
func (b *Body) KillSpin() {
	b.angular = math.Vec3{}
}

// Integrate advances the body by dt seconds: residual vertical spin, then
// gravity, translation and ground contact.
func (b *Body) Integrate(dt float32) {
	if b.angular.Y != 0 {
		b.SetYaw(math.WrapAngle(b.Yaw() + b.angular.Y*dt))
	}

	if !b.OnGround {
		b.Velocity.Y -= Gravity * dt
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	if b.Position.Y <= b.GroundY {
		b.Position.Y = b.GroundY
		if b.Velocity.Y < 0 {
			b.Velocity.Y = 0
		}
		b.OnGround = true
	} else {
		b.OnGround = false
	}
}
