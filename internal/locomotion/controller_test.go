package locomotion

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/strider/pkg/math"
)

// fakeBody records what the controller writes each tick.
type fakeBody struct {
	yaw       float32
	planar    math.Vec2
	spinKills int
}

func (b *fakeBody) Yaw() float32 { return b.yaw }

func (b *fakeBody) SetYaw(y float32) { b.yaw = y }

func (b *fakeBody) PlanarVelocity() math.Vec2 { return b.planar }

func (b *fakeBody) SetPlanarVelocity(v math.Vec2) { b.planar = v }

func (b *fakeBody) KillSpin() { b.spinKills++ }

type stubAxis struct{ v math.Vec2 }

func (s *stubAxis) Axis() math.Vec2 { return s.v }

type stubFacing struct{ yaw float32 }

func (s *stubFacing) HorizontalRotation() float32 { return s.yaw }

func testTuning() Tuning {
	return Tuning{
		MaxSpeed:       8,
		TimeToMaxSpeed: 0.35,
		TurnTime:       0.18,
		TurnEpsilon:    0.02,
	}
}

// axisForYaw returns the raw axis that maps to a world direction of the
// given yaw when the camera yaw is zero.
func axisForYaw(yaw float32) math.Vec2 {
	dir := math.DirectionFromYaw(yaw)
	// MapAxis builds (-x, 0, y) from the axis, so invert that.
	return math.Vec2{X: -dir.X, Y: dir.Z}
}

func approx(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestTurnScenarioQuarterTurn(t *testing.T) {
	// Body facing yaw 0, input arrives at yaw π/2. After 0.09s the yaw is
	// the shortest-path midpoint π/4 with zero speed; after 0.18s the turn
	// completes and speed starts ramping.
	body := &fakeBody{}
	axis := &stubAxis{v: axisForYaw(gomath.Pi / 2)}
	c := New(testTuning(), body, nil, axis)

	c.Step(0.09)
	if !c.Turning() {
		t.Fatal("expected controller to be turning")
	}
	if c.Speed() != 0 {
		t.Errorf("speed while turning = %v, want 0", c.Speed())
	}
	if !body.planar.IsZero() {
		t.Errorf("planar velocity while turning = %v, want zero", body.planar)
	}
	if !approx(body.yaw, gomath.Pi/4, 1e-4) {
		t.Errorf("yaw at t=0.5 = %v, want π/4", body.yaw)
	}

	c.Step(0.09)
	if c.Turning() {
		t.Fatal("turn should complete after exactly TurnTime")
	}
	if !approx(body.yaw, gomath.Pi/2, 1e-4) {
		t.Errorf("yaw after turn = %v, want π/2", body.yaw)
	}
	if got := math.AngleBetweenHorizontal(c.CurrentDir(), math.DirectionFromYaw(gomath.Pi/2)); got != 0 {
		t.Errorf("current dir misaligned from target by %v after completion", got)
	}

	c.Step(0.09)
	if c.Turning() {
		t.Error("same input direction after completion must not re-turn")
	}
	if c.Speed() <= 0 {
		t.Errorf("speed should ramp after turn, got %v", c.Speed())
	}
}

func TestVelocityZeroForEveryTurningTick(t *testing.T) {
	body := &fakeBody{}
	axis := &stubAxis{v: axisForYaw(gomath.Pi)}
	c := New(testTuning(), body, nil, axis)

	for i := 0; i < 18; i++ {
		c.Step(0.01)
		if !c.Turning() {
			break
		}
		if c.Speed() != 0 {
			t.Fatalf("tick %d: speed = %v while turning", i, c.Speed())
		}
		if body.planar.Length() != 0 {
			t.Fatalf("tick %d: planar velocity = %v while turning", i, body.planar)
		}
	}
	if c.Turning() {
		t.Error("turn should have completed within TurnTime")
	}
}

func TestTurnRestartMeasuresFullDuration(t *testing.T) {
	body := &fakeBody{}
	axis := &stubAxis{v: axisForYaw(gomath.Pi / 2)}
	c := New(testTuning(), body, nil, axis)

	// Half the turn elapses.
	c.Step(0.09)
	midYaw := body.yaw

	// New direction arrives mid-turn: elapsed resets, the turn restarts
	// from the body's present heading, and the full TurnTime applies from
	// this instant.
	axis.v = axisForYaw(gomath.Pi)
	c.Step(0.09)
	if !c.Turning() {
		t.Fatal("restarted turn must still be in progress after half its time")
	}
	wantMid := math.LerpAngle(midYaw, gomath.Pi, 0.5)
	if !approx(body.yaw, wantMid, 1e-4) {
		t.Errorf("yaw after restart tick = %v, want %v", body.yaw, wantMid)
	}

	c.Step(0.09)
	if c.Turning() {
		t.Error("restarted turn should complete exactly TurnTime after restart")
	}
	if !approx(math.WrapAngle(body.yaw-gomath.Pi), 0, 1e-4) {
		t.Errorf("yaw after restarted turn = %v, want π", body.yaw)
	}
}

func TestRestartIgnoredWhenTargetUnchanged(t *testing.T) {
	body := &fakeBody{}
	axis := &stubAxis{v: axisForYaw(gomath.Pi / 2)}
	c := New(testTuning(), body, nil, axis)

	c.Step(0.09)
	c.Step(0.05) // same direction: elapsed keeps accumulating
	c.Step(0.04)
	if c.Turning() {
		t.Error("turn with a stable target should complete in TurnTime total")
	}
}

func TestAccelerationRamp(t *testing.T) {
	// max_speed=8, time_to_max_speed=0.35 → accel ≈ 22.857 m/s².
	body := &fakeBody{}
	axis := &stubAxis{v: axisForYaw(0)} // aligned with starting heading
	c := New(testTuning(), body, nil, axis)

	for i := 0; i < 2; i++ {
		c.Step(0.05)
	}
	if !approx(c.Speed(), 2.2857, 1e-2) {
		t.Errorf("speed after 0.1s = %v, want ≈2.286", c.Speed())
	}

	prev := c.Speed()
	for i := 0; i < 5; i++ {
		c.Step(0.05)
		if c.Speed() < prev {
			t.Fatalf("speed must ramp monotonically, went %v -> %v", prev, c.Speed())
		}
		prev = c.Speed()
	}
	// 0.35s total: clamped at max, no overshoot.
	if !approx(c.Speed(), 8, 1e-3) {
		t.Errorf("speed after 0.35s = %v, want 8", c.Speed())
	}
	c.Step(0.05)
	if c.Speed() != 8 {
		t.Errorf("speed must clamp exactly at max, got %v", c.Speed())
	}

	// Velocity direction matches the heading.
	want := math.DirectionFromYaw(body.yaw).Scale(c.Speed()).XZ()
	if !approx(body.planar.X, want.X, 1e-4) || !approx(body.planar.Y, want.Y, 1e-4) {
		t.Errorf("planar velocity = %v, want %v", body.planar, want)
	}
}

func TestSpeedBoundsInvariant(t *testing.T) {
	body := &fakeBody{}
	axis := &stubAxis{}
	c := New(testTuning(), body, nil, axis)

	script := []math.Vec2{
		axisForYaw(0), axisForYaw(0), axisForYaw(gomath.Pi / 2), {},
		axisForYaw(gomath.Pi / 2), {}, {}, axisForYaw(-gomath.Pi / 2),
		axisForYaw(-gomath.Pi / 2), axisForYaw(-gomath.Pi / 2), {}, {},
	}
	for i, a := range script {
		axis.v = a
		for j := 0; j < 4; j++ {
			c.Step(0.016)
			if c.Speed() < 0 || c.Speed() > 8 {
				t.Fatalf("step %d.%d: speed %v out of [0, 8]", i, j, c.Speed())
			}
		}
	}
}

func TestDecelerationIsLinear(t *testing.T) {
	body := &fakeBody{}
	axis := &stubAxis{v: axisForYaw(0)}
	c := New(testTuning(), body, nil, axis)

	// Ramp up to 4 m/s: accel ≈ 22.857, so 0.175s.
	for i := 0; i < 35; i++ {
		c.Step(0.005)
	}
	if !approx(c.Speed(), 4, 0.05) {
		t.Fatalf("setup: speed = %v, want ≈4", c.Speed())
	}
	start := c.Speed()

	// Release input: decelerating from s takes s/max·timeToMax seconds.
	axis.v = math.Vec2{}
	ticks := 0
	for c.Speed() > 0 {
		c.Step(0.005)
		ticks++
		if ticks > 100 {
			t.Fatal("deceleration did not terminate")
		}
	}
	wantTicks := int(gomath.Round(float64(start / 8 * 0.35 / 0.005)))
	if ticks < wantTicks-1 || ticks > wantTicks+1 {
		t.Errorf("deceleration took %d ticks, want %d±1", ticks, wantTicks)
	}
}

func TestDecelerationRelocksYawAgainstPerturbation(t *testing.T) {
	body := &fakeBody{}
	axis := &stubAxis{v: axisForYaw(0)}
	c := New(testTuning(), body, nil, axis)

	for i := 0; i < 4; i++ {
		c.Step(0.05)
	}
	axis.v = math.Vec2{}

	// Something external knocks the body's heading between ticks.
	body.yaw = 1.3
	c.Step(0.05)
	if !approx(body.yaw, 0, 1e-5) {
		t.Errorf("yaw not re-locked during deceleration: %v", body.yaw)
	}
	// Velocity follows the re-locked heading.
	want := math.DirectionFromYaw(0).Scale(c.Speed()).XZ()
	if !approx(body.planar.X, want.X, 1e-4) || !approx(body.planar.Y, want.Y, 1e-4) {
		t.Errorf("planar velocity = %v, want %v", body.planar, want)
	}
}

func TestStopAppliesZeroVelocity(t *testing.T) {
	body := &fakeBody{}
	axis := &stubAxis{}
	c := New(testTuning(), body, nil, axis)

	c.Step(0.016)
	if !body.planar.IsZero() {
		t.Errorf("idle body should get zero planar velocity, got %v", body.planar)
	}
	if c.Turning() {
		t.Error("idle body must stay in the cruising state")
	}
}

func TestInstantTurnWhenTurnTimeZero(t *testing.T) {
	tuning := testTuning()
	tuning.TurnTime = 0
	body := &fakeBody{}
	axis := &stubAxis{v: axisForYaw(gomath.Pi / 2)}
	c := New(tuning, body, nil, axis)

	c.Step(0.016)
	if c.Turning() {
		t.Error("zero TurnTime must snap the heading in one tick")
	}
	if !approx(body.yaw, gomath.Pi/2, 1e-5) {
		t.Errorf("yaw = %v, want π/2", body.yaw)
	}
	if c.Speed() != 0 || !body.planar.IsZero() {
		t.Error("the snap tick still applies zero velocity")
	}

	c.Step(0.016)
	if c.Speed() <= 0 {
		t.Error("speed should ramp on the tick after an instant turn")
	}
}

func TestSmallMisalignmentSnapsWithoutTurn(t *testing.T) {
	body := &fakeBody{}
	axis := &stubAxis{v: axisForYaw(0.01)} // within TurnEpsilon of yaw 0
	c := New(testTuning(), body, nil, axis)

	c.Step(0.016)
	if c.Turning() {
		t.Error("misalignment below TurnEpsilon must not trigger a turn")
	}
	if !approx(body.yaw, 0.01, 1e-4) {
		t.Errorf("heading should snap to the input direction, yaw = %v", body.yaw)
	}
	if c.Speed() <= 0 {
		t.Error("speed should ramp while snapping within tolerance")
	}
}

func TestCameraRelativeInput(t *testing.T) {
	body := &fakeBody{}
	axis := &stubAxis{v: math.Vec2{X: 0, Y: -1}} // push forward
	cam := &stubFacing{yaw: gomath.Pi / 2}
	tuning := testTuning()
	tuning.TurnTime = 0
	c := New(tuning, body, cam, axis)

	c.Step(0.016)
	c.Step(0.016)
	// Forward input with the camera yawed 90° moves at yaw 90°.
	if !approx(body.yaw, gomath.Pi/2, 1e-4) {
		t.Errorf("yaw = %v, want π/2", body.yaw)
	}
}

func TestSpinKilledEveryTick(t *testing.T) {
	body := &fakeBody{}
	c := New(testTuning(), body, nil, &stubAxis{})

	for i := 0; i < 5; i++ {
		c.Step(0.016)
	}
	if body.spinKills != 5 {
		t.Errorf("KillSpin called %d times over 5 ticks, want 5", body.spinKills)
	}
}

func TestSanitizedTuning(t *testing.T) {
	tuning := Tuning{MaxSpeed: 8, TimeToMaxSpeed: 0, TurnTime: -1, TurnEpsilon: -0.5}
	body := &fakeBody{}
	c := New(tuning, body, nil, &stubAxis{v: axisForYaw(1)})

	// Zero TimeToMaxSpeed is floored, not a division by zero.
	c.Step(0.016)
	c.Step(0.016)
	if c.Speed() != 8 {
		t.Errorf("floored accel time should reach max speed immediately, got %v", c.Speed())
	}
}

func TestInitialHeadingFromBody(t *testing.T) {
	body := &fakeBody{yaw: 1.1}
	c := New(testTuning(), body, nil, &stubAxis{})

	want := math.DirectionFromYaw(1.1)
	if got := c.CurrentDir(); !approx(got.X, want.X, 1e-5) || !approx(got.Z, want.Z, 1e-5) {
		t.Errorf("initial heading = %v, want %v", got, want)
	}
}
