package model

import "github.com/go-gl/mathgl/mgl32"

// Movement and turn increments applied per frame and held key.
const (
	moveStep        = 0.05
	turnStepDegrees = 0.5
)

// Camera is a pose in world space: a position and a unit quaternion giving
// the look direction. The projection is deliberately not part of the
// camera; it belongs to the render core and is combined in ViewProjection.
type Camera struct {
	Position      mgl32.Vec3
	LookDirection mgl32.Quat
}

// NewCamera returns a camera at the origin looking down the default axis.
func NewCamera() *Camera {
	return &Camera{LookDirection: mgl32.QuatIdent()}
}

// ViewProjection composes the camera-space transform with the given
// projection: projection * rotate(lookDirection) * translate(-position).
// The position is negated and applied after the rotation, the standard
// inverse-camera convention.
func (c *Camera) ViewProjection(projection mgl32.Mat4) mgl32.Mat4 {
	view := c.LookDirection.Mat4().Mul4(
		mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
	return projection.Mul4(view)
}

// InputState is the per-frame snapshot of the held movement and turn keys.
// Camera updates are a pure function of this snapshot and the current pose,
// which keeps them testable without a window.
type InputState struct {
	Forward, Back      bool
	Left, Right        bool
	Up, Down           bool
	YawLeft, YawRight  bool
	PitchUp, PitchDown bool
}

// Update advances the pose by one tick. Held keys apply cumulatively in a
// fixed order. Strafing left uses only the horizontal part of the right
// vector so that looking up or down does not add vertical drift. Turns
// right-multiply the look direction, rotating in the camera's local frame;
// the quaternion is not renormalized and floating-point drift over long
// runs is accepted.
func (c *Camera) Update(in InputState) {
	inv := c.LookDirection.Inverse()
	forward := inv.Rotate(mgl32.Vec3{0, 0, -1})
	right := inv.Rotate(mgl32.Vec3{1, 0, 0})
	up := inv.Rotate(mgl32.Vec3{0, 1, 0})
	flatRight := mgl32.Vec3{right.X(), 0, right.Z()}

	if in.Forward {
		c.Position = c.Position.Add(forward.Mul(moveStep))
	}
	if in.Left {
		c.Position = c.Position.Sub(flatRight.Mul(moveStep))
	}
	if in.Back {
		c.Position = c.Position.Sub(forward.Mul(moveStep))
	}
	if in.Right {
		c.Position = c.Position.Add(right.Mul(moveStep))
	}
	if in.Up {
		c.Position = c.Position.Add(up.Mul(moveStep))
	}
	if in.Down {
		c.Position = c.Position.Sub(up.Mul(moveStep))
	}

	if in.YawLeft {
		c.LookDirection = c.LookDirection.Mul(mgl32.QuatRotate(mgl32.DegToRad(-turnStepDegrees), mgl32.Vec3{0, 1, 0}))
	}
	if in.YawRight {
		c.LookDirection = c.LookDirection.Mul(mgl32.QuatRotate(mgl32.DegToRad(turnStepDegrees), mgl32.Vec3{0, 1, 0}))
	}
	if in.PitchUp {
		c.LookDirection = c.LookDirection.Mul(mgl32.QuatRotate(mgl32.DegToRad(-turnStepDegrees), right))
	}
	if in.PitchDown {
		c.LookDirection = c.LookDirection.Mul(mgl32.QuatRotate(mgl32.DegToRad(turnStepDegrees), right))
	}
}
