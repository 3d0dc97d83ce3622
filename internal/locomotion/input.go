package locomotion

import "github.com/Faultbox/strider/pkg/math"

// MapAxis converts a raw 2-axis input vector into a world-space horizontal
// unit direction relative to cameraYaw. The second return is false when the
// axis is zero or degenerates under normalization, meaning "no input" for
// this tick.
func MapAxis(raw math.Vec2, cameraYaw float32) (math.Vec3, bool) {
	if raw.IsZero() {
		return math.Vec3{}, false
	}

	dir := math.Vec3{X: -raw.X, Y: 0, Z: raw.Y}.Normalize()
	dir = dir.RotateY(-cameraYaw).Normalize()
	if dir.IsZero() {
		return math.Vec3{}, false
	}
	return dir, true
}
