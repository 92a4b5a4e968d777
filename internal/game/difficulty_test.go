package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierSpeedNeverDecreases(t *testing.T) {
	prev := TierFor(0)
	for d := 50.0; d < 8000; d += 50 {
		cur := TierFor(d)
		require.GreaterOrEqual(t, cur.Speed, prev.Speed, "distance %v", d)
		require.GreaterOrEqual(t, cur.ObstaclesPerBlock, prev.ObstaclesPerBlock, "distance %v", d)
		prev = cur
	}
}

func TestTierCapsFarOut(t *testing.T) {
	far := TierFor(1e6)
	require.Equal(t, 20.0, far.Speed)
	require.Equal(t, 8, far.ObstaclesPerBlock)
}

func TestTierBoundaries(t *testing.T) {
	require.Equal(t, 10.0, TierFor(0).Speed)
	require.Equal(t, 10.0, TierFor(199).Speed)
	require.Equal(t, 12.0, TierFor(200).Speed)
	require.Equal(t, 15.0, TierFor(1400).Speed)
}

func TestApplyTierEasesSpeed(t *testing.T) {
	p := NewPlayer(10)
	w := NewWorld(1)
	tier := TierFor(300)

	ApplyTier(tier, p, w, 0.1)
	require.Greater(t, p.Speed, 10.0, "speed ramps toward the tier")
	require.Less(t, p.Speed, tier.Speed, "but not in one frame")
	require.Equal(t, tier.ObstaclesPerBlock, w.ObstaclesPerBlock)
	require.Equal(t, tier.ParkChance, w.ParkChance)

	// Enough frames reaches the target exactly.
	for i := 0; i < 200; i++ {
		ApplyTier(tier, p, w, 0.1)
	}
	require.Equal(t, tier.Speed, p.Speed)
}
