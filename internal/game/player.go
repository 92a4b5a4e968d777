package game

import "github.com/go-gl/mathgl/mgl64"

// Player is the bicycle rider. X is the lane position, Y the jump height,
// Z the distance ridden down the street.
type Player struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	W, H, D float64 // bounding box

	Speed float64 // forward units/s, set by the difficulty tier

	Jumping        bool
	Invincible     bool
	InvincibleLeft float64 // seconds
	Lean           float64 // -1..1 visual lean, follows lateral velocity
}

func NewPlayer(speed float64) *Player {
	return &Player{
		Pos:   mgl64.Vec3{0, 0, 0},
		W:     PlayerWidth,
		H:     PlayerHeight,
		D:     PlayerDepth,
		Speed: speed,
	}
}

// Steer sets the lateral velocity from the input axis (-1, 0 or +1).
// The input mapper calls this once per tick.
func (p *Player) Steer(axis float64) {
	p.Vel[0] = clampF(axis, -1, 1) * LateralSpeed
}

// Jump starts a jump if the player is on the ground.
func (p *Player) Jump() bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.Vel[1] = JumpSpeed
	return true
}

// RampLaunch throws the player into the air off a hill. Works mid-air too:
// riding up a ramp while already airborne just resets the climb.
func (p *Player) RampLaunch() {
	p.Jumping = true
	p.Vel[1] = RampJumpSpeed
}

// Update advances the player one frame: forward motion, lane clamp,
// jump integration, invincibility countdown.
func (p *Player) Update(dt float64) {
	p.Pos[2] += p.Speed * dt

	p.Pos[0] += p.Vel[0] * dt
	p.Pos[0] = clampF(p.Pos[0], LaneMin, LaneMax)

	if p.Jumping {
		p.Pos[1] += p.Vel[1] * dt
		p.Vel[1] -= Gravity * dt
		if p.Pos[1] <= 0 {
			p.Pos[1] = 0
			p.Vel[1] = 0
			p.Jumping = false
		}
	}

	if p.InvincibleLeft > 0 {
		p.InvincibleLeft -= dt
		if p.InvincibleLeft <= 0 {
			p.InvincibleLeft = 0
			p.Invincible = false
		}
	}

	// Visual lean trails the steering input.
	p.Lean = approach(p.Lean, p.Vel[0]/LateralSpeed, 6.0*dt)
}

// StartInvincibility begins the post-crash grace period.
func (p *Player) StartInvincibility() {
	p.Invincible = true
	p.InvincibleLeft = InvincibleTime
}
