// Package camera provides the third-person orbit rig.
package camera

import (
	gomath "math"

	"github.com/Faultbox/strider/pkg/math"
)

// Rig orbits a follow target. Mouse deltas adjust pitch and yaw directly as
// they arrive; the locomotion tick only samples HorizontalRotation, so the
// rig stays independent of the tick cadence.
type Rig struct {
	// Angles in degrees. Yaw is wrapped to [0, 360), pitch clamped to
	// [MinPitch, MaxPitch].
	yaw   float32
	pitch float32

	// Constraints and sensitivity
	MinPitch    float32 // degrees
	MaxPitch    float32 // degrees
	Sensitivity float32 // degrees per mouse count

	// Distance from target
	Distance        float32
	MinDistance     float32
	MaxDistance     float32
	ZoomSensitivity float32

	// FocusHeight lifts the look-at point above the target's feet.
	FocusHeight float32
}

// Config holds the rig tunables taken from configuration.
type Config struct {
	Sensitivity float32
	MinPitch    float32
	MaxPitch    float32
	Distance    float32
	MinDistance float32
	MaxDistance float32
}

// New creates a rig with the given tunables and a mid-range starting pitch.
func New(cfg Config) *Rig {
	r := &Rig{
		MinPitch:        cfg.MinPitch,
		MaxPitch:        cfg.MaxPitch,
		Sensitivity:     cfg.Sensitivity,
		Distance:        cfg.Distance,
		MinDistance:     cfg.MinDistance,
		MaxDistance:     cfg.MaxDistance,
		ZoomSensitivity: 0.1,
		FocusHeight:     1.2,
	}
	r.pitch = math.Clamp((cfg.MinPitch+cfg.MaxPitch)/2, cfg.MinPitch, cfg.MaxPitch)
	return r
}

// HorizontalRotation returns the rig's yaw in radians, the heading the view
// faces on the horizontal plane.
func (r *Rig) HorizontalRotation() float32 {
	return math.Radians(r.yaw)
}

// Pitch returns the rig's pitch in degrees.
func (r *Rig) Pitch() float32 {
	return r.pitch
}

// ApplyMouseDelta feeds a relative mouse motion event into the rig. dx turns
// the view, dy tilts it; both are scaled by Sensitivity.
func (r *Rig) ApplyMouseDelta(dx, dy float32) {
	r.yaw = math.WrapDegrees(r.yaw + dx*r.Sensitivity)
	r.pitch = math.Clamp(r.pitch+dy*r.Sensitivity, r.MinPitch, r.MaxPitch)
}

// HandleZoom updates distance from the target based on scroll delta.
func (r *Rig) HandleZoom(delta float32) {
	r.Distance -= delta * r.Distance * r.ZoomSensitivity
	r.Distance = math.Clamp(r.Distance, r.MinDistance, r.MaxDistance)
}

// Position returns the camera position in world space for a target point.
func (r *Rig) Position(target math.Vec3) math.Vec3 {
	pitchRad := math.Radians(r.pitch)
	horiz := r.Distance * float32(gomath.Cos(float64(pitchRad)))
	height := r.Distance * float32(gomath.Sin(float64(pitchRad)))

	forward := math.DirectionFromYaw(r.HorizontalRotation())
	return target.Sub(forward.Scale(horiz)).Add(math.Vec3{Y: height + r.FocusHeight})
}

// ViewMatrix returns the view matrix looking at the target.
func (r *Rig) ViewMatrix(target math.Vec3) math.Mat4 {
	focus := target.Add(math.Vec3{Y: r.FocusHeight})
	up := math.Vec3{Y: 1}
	return math.LookAt(r.Position(target), focus, up)
}
