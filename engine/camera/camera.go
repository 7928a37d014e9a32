package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/glog"
)

// Movement is a keyboard-like movement direction, kept apart from any
// window-system key codes.
type Movement uint8

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Movement(?)"
}

// Default camera options.
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultFov         float32 = 45.0

	// MaxPitch keeps Front away from WorldUp so Right stays well defined.
	MaxPitch float32 = 89.0
	MinFov   float32 = 1.0
	MaxFov   float32 = 45.0
)

// Camera is a first-person camera driven by Euler angles.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// degrees
	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Fov              float32

	// projection params
	Aspect float32
	Near   float32
	Far    float32
}

// NewCamera creates a camera positioned at pos, looking with yaw/pitch (degrees).
// up is usually mgl32.Vec3{0,1,0}. Pitch is not clamped here.
func NewCamera(pos, up mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:         pos,
		Front:            mgl32.Vec3{0, 0, -1},
		WorldUp:          up,
		Yaw:              yaw,
		Pitch:            pitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Fov:              DefaultFov,
		Aspect:           4.0 / 3.0,
		Near:             0.1,
		Far:              100.0,
	}
	c.updateCameraVectors()
	return c
}

// NewCameraScalar is NewCamera with the vectors given component-wise.
func NewCameraScalar(posX, posY, posZ, upX, upY, upZ, yaw, pitch float32) *Camera {
	return NewCamera(mgl32.Vec3{posX, posY, posZ}, mgl32.Vec3{upX, upY, upZ}, yaw, pitch)
}

// NewDefaultCamera creates a camera at the origin looking down -Z with +Y up.
func NewDefaultCamera() *Camera {
	return NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

// SetAspect updates the projection aspect ratio (call on window resize).
func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = aspect
}

// ProcessKeyboard moves the camera one step in dir. deltaTime is in seconds.
// Call once per held direction; the steps add up.
func (c *Camera) ProcessKeyboard(dir Movement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement adjusts yaw/pitch from a pointer delta. Positive
// xOffset turns right, positive yOffset looks up. With constrainPitch the
// pitch is clamped to [-MaxPitch, MaxPitch].
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	xOffset *= c.MouseSensitivity
	yOffset *= c.MouseSensitivity

	c.Yaw += xOffset
	c.Pitch += yOffset

	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	}

	c.updateCameraVectors()
	if glog.V(2) {
		glog.Infof("camera: yaw=%.2f pitch=%.2f front=%v", c.Yaw, c.Pitch, c.Front)
	}
}

// ProcessMouseScroll zooms by changing the field of view, clamped to [MinFov, MaxFov].
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Fov = mgl32.Clamp(c.Fov-yOffset, MinFov, MaxFov)
}

// GetViewMatrix returns the view matrix (mgl32.Mat4) for the current camera transform.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	target := c.Position.Add(c.Front)
	return mgl32.LookAtV(c.Position, target, c.Up)
}

// GetProjectionMatrix returns a perspective projection matrix (mgl32.Mat4).
// Uses current Fov (degrees), Aspect, Near and Far.
func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// internal: recompute front/right/up vectors from yaw/pitch
func (c *Camera) updateCameraVectors() {
	yawRad := float64(c.Yaw) * math.Pi / 180.0
	pitchRad := float64(c.Pitch) * math.Pi / 180.0

	fx := float32(math.Cos(yawRad) * math.Cos(pitchRad))
	fy := float32(math.Sin(pitchRad))
	fz := float32(math.Sin(yawRad) * math.Cos(pitchRad))

	c.Front = mgl32.Vec3{fx, fy, fz}.Normalize()
	// Right shrinks towards zero as Front nears WorldUp, hence the normalize.
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
