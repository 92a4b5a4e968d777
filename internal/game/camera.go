package game

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a chase camera hanging behind and above the player.
type Camera struct {
	X, Y, Z float64 // world position

	// Screen shake.
	ShakeX, ShakeY float64 // current offset
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

const (
	camBack   = 9.0 // distance behind the player
	camHeight = 5.0
	camAheadZ = 8.0 // look-at point ahead of the player
)

// Follow eases the camera toward its chase position.
func (c *Camera) Follow(p *Player, dt float64) {
	tx := p.Pos[0] * 0.6 // soften lateral tracking
	ty := camHeight + p.Pos[1]*0.35
	tz := p.Pos[2] - camBack
	k := clampF(8.0*dt, 0, 1)
	c.X += (tx - c.X) * k
	c.Y += (ty - c.Y) * k
	c.Z += (tz - c.Z) * k
}

// Snap places the camera directly at the chase position (run start).
func (c *Camera) Snap(p *Player) {
	c.X = p.Pos[0] * 0.6
	c.Y = camHeight
	c.Z = p.Pos[2] - camBack
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// View returns the view matrix with shake applied.
func (c *Camera) View(p *Player) mgl32.Mat4 {
	eye := mgl32.Vec3{float32(c.X + c.ShakeX), float32(c.Y + c.ShakeY), float32(c.Z)}
	at := mgl32.Vec3{float32(p.Pos[0] * 0.8), float32(1.2 + p.Pos[1]*0.5), float32(p.Pos[2] + camAheadZ)}
	return mgl32.LookAtV(eye, at, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for a framebuffer size.
func Projection(fbW, fbH int) mgl32.Mat4 {
	if fbH <= 0 {
		fbH = 1
	}
	aspect := float32(fbW) / float32(fbH)
	return mgl32.Perspective(mgl32.DegToRad(58), aspect, 0.1, 300.0)
}
