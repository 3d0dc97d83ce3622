package locomotion

import "github.com/Faultbox/strider/pkg/math"

// Tuning holds the immutable movement parameters for one controller.
type Tuning struct {
	// MaxSpeed is the upper bound on planar speed in m/s.
	MaxSpeed float32
	// TimeToMaxSpeed is the time in seconds to reach MaxSpeed from rest.
	TimeToMaxSpeed float32
	// TurnTime is the duration of a heading change in seconds. Zero or
	// negative snaps the heading instantly.
	TurnTime float32
	// TurnEpsilon is the misalignment in radians tolerated without
	// triggering a turn.
	TurnEpsilon float32
}

const (
	// minAccelTime keeps the acceleration finite for degenerate tunings.
	minAccelTime = 1e-4
	// stopThreshold is the speed below which the body is considered at rest.
	stopThreshold = 1e-3
	// turnDoneEpsilon tolerates float error at the end of a turn ramp.
	turnDoneEpsilon = 1e-6
)

// sanitized returns the tuning with degenerate values clamped. Silent by
// design: these are tuning safeguards, not data errors.
func (t Tuning) sanitized() Tuning {
	if t.MaxSpeed < 0 {
		t.MaxSpeed = 0
	}
	if t.TimeToMaxSpeed < minAccelTime {
		t.TimeToMaxSpeed = minAccelTime
	}
	if t.TurnTime < 0 {
		t.TurnTime = 0
	}
	if t.TurnEpsilon < 0 {
		t.TurnEpsilon = 0
	}
	return t
}

// Controller owns the turning/speed state for a single body and advances it
// once per fixed physics tick. Exactly one of cruising or turning holds at
// every tick boundary; while turning, speed and planar velocity are zero.
type Controller struct {
	tuning Tuning
	accel  float32

	body   Body
	camera Facing       // optional, nil skips camera-relative rotation
	input  AxisProvider // optional, nil means no input

	turning    bool
	elapsed    float32
	fromYaw    float32
	toYaw      float32
	targetDir  math.Vec3
	currentDir math.Vec3
	speed      float32
}

// New creates a controller for body. The current heading is initialized from
// the body's actual starting orientation. camera and input may be nil.
func New(tuning Tuning, body Body, camera Facing, input AxisProvider) *Controller {
	t := tuning.sanitized()
	c := &Controller{
		tuning: t,
		accel:  t.MaxSpeed / t.TimeToMaxSpeed,
		body:   body,
		camera: camera,
		input:  input,
	}
	c.currentDir = math.DirectionFromYaw(body.Yaw())
	c.targetDir = c.currentDir
	return c
}

// Step advances the controller by delta seconds. It polls the input axis,
// maps it relative to the camera, runs the turn/cruise state machine and
// writes yaw and planar velocity back to the body.
func (c *Controller) Step(delta float32) {
	c.body.KillSpin()
	actualYaw := c.body.Yaw()

	var inputDir math.Vec3
	hasInput := false
	if c.input != nil {
		var cameraYaw float32
		if c.camera != nil {
			cameraYaw = c.camera.HorizontalRotation()
		}
		inputDir, hasInput = MapAxis(c.input.Axis(), cameraYaw)
	}

	if hasInput {
		if c.turning {
			// A direction change mid-turn restarts the turn from the
			// body's present heading; the full TurnTime is measured
			// from the restart, never shortened by prior progress.
			if math.AngleBetweenHorizontal(c.targetDir, inputDir) > c.tuning.TurnEpsilon {
				c.beginTurn(inputDir, actualYaw)
			}
		} else if math.AngleBetweenHorizontal(c.currentDir, inputDir) > c.tuning.TurnEpsilon {
			c.beginTurn(inputDir, actualYaw)
		}
	}

	if c.turning {
		c.speed = 0
		c.body.SetPlanarVelocity(math.Vec2{})

		if c.tuning.TurnTime <= 0 {
			c.body.SetYaw(c.toYaw)
			c.finishTurn()
			return
		}

		c.elapsed += delta
		if c.elapsed > c.tuning.TurnTime {
			c.elapsed = c.tuning.TurnTime
		}
		t := c.elapsed / c.tuning.TurnTime
		c.body.SetYaw(math.LerpAngle(c.fromYaw, c.toYaw, t))
		if t >= 1-turnDoneEpsilon {
			c.finishTurn()
		}
		return
	}

	if !hasInput {
		c.speed = math.MoveToward(c.speed, 0, c.accel*delta)
		if c.speed > stopThreshold {
			// Re-lock yaw to the tracked heading, then derive forward
			// from the orientation actually written. If something
			// external knocked the body, motion follows the real
			// heading rather than a stale cache.
			c.body.SetYaw(math.YawFromDirection(c.currentDir))
			forward := math.DirectionFromYaw(c.body.Yaw())
			c.body.SetPlanarVelocity(forward.Scale(c.speed).XZ())
		} else {
			c.body.SetPlanarVelocity(math.Vec2{})
		}
		return
	}

	// Input present and within TurnEpsilon of the current heading, or a
	// larger misalignment would have started a turn above. The small
	// snap here is deliberate tolerance; see the package docs on epsilon
	// sizing.
	c.currentDir = inputDir
	c.targetDir = inputDir
	c.speed = math.MoveToward(c.speed, c.tuning.MaxSpeed, c.accel*delta)
	c.body.SetYaw(math.YawFromDirection(c.currentDir))
	forward := math.DirectionFromYaw(c.body.Yaw())
	c.body.SetPlanarVelocity(forward.Scale(c.speed).XZ())
}

func (c *Controller) beginTurn(dir math.Vec3, actualYaw float32) {
	c.targetDir = dir
	c.fromYaw = actualYaw
	c.toYaw = math.YawFromDirection(dir)
	c.elapsed = 0
	c.turning = true
	c.speed = 0
	c.body.SetPlanarVelocity(math.Vec2{})
}

func (c *Controller) finishTurn() {
	c.turning = false
	c.currentDir = c.targetDir
	c.elapsed = 0
}

// Turning reports whether the body is currently reorienting.
func (c *Controller) Turning() bool {
	return c.turning
}

// Speed returns the current planar speed in m/s.
func (c *Controller) Speed() float32 {
	return c.speed
}

// CurrentDir returns the heading the controller is tracking.
func (c *Controller) CurrentDir() math.Vec3 {
	return c.currentDir
}
