package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayerStaysInLane(t *testing.T) {
	p := NewPlayer(10)

	p.Steer(1)
	for i := 0; i < 300; i++ {
		p.Update(1.0 / 60.0)
	}
	require.Equal(t, LaneMax, p.Pos[0])

	p.Steer(-1)
	for i := 0; i < 600; i++ {
		p.Update(1.0 / 60.0)
	}
	require.Equal(t, LaneMin, p.Pos[0])
}

func TestPlayerSteerAxisClamped(t *testing.T) {
	p := NewPlayer(10)
	p.Steer(5)
	require.Equal(t, LateralSpeed, p.Vel[0])
	p.Steer(-5)
	require.Equal(t, -LateralSpeed, p.Vel[0])
}

func TestPlayerJumpArc(t *testing.T) {
	p := NewPlayer(10)

	require.True(t, p.Jump())
	require.False(t, p.Jump(), "no double jump while airborne")

	apex := 0.0
	steps := 0
	for p.Jumping && steps < 600 {
		p.Update(1.0 / 60.0)
		if p.Pos[1] > apex {
			apex = p.Pos[1]
		}
		steps++
	}

	require.False(t, p.Jumping, "jump must terminate")
	require.Equal(t, 0.0, p.Pos[1], "player lands back on the ground")
	require.Greater(t, apex, 1.0, "jump should clear low obstacles")
	require.True(t, p.Jump(), "can jump again after landing")
}

func TestPlayerRampLaunchOutjumpsNormalJump(t *testing.T) {
	jump := NewPlayer(10)
	jump.Jump()
	ramp := NewPlayer(10)
	ramp.RampLaunch()
	require.Greater(t, ramp.Vel[1], jump.Vel[1])
}

func TestPlayerForwardMotion(t *testing.T) {
	p := NewPlayer(12)
	for i := 0; i < 60; i++ {
		p.Update(1.0 / 60.0)
	}
	require.InDelta(t, 12.0, p.Pos[2], 1e-9)
}

func TestPlayerInvincibilityExpires(t *testing.T) {
	p := NewPlayer(10)
	p.StartInvincibility()
	require.True(t, p.Invincible)

	p.Update(InvincibleTime / 2)
	require.True(t, p.Invincible)

	p.Update(InvincibleTime)
	require.False(t, p.Invincible)
	require.Equal(t, 0.0, p.InvincibleLeft)
}
