package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateBlockDeterministic(t *testing.T) {
	a := generateBlock(1234, 7, 4, 20)
	b := generateBlock(1234, 7, 4, 20)
	require.Equal(t, a, b, "same seed and index must produce the same block")

	c := generateBlock(1235, 7, 4, 20)
	require.NotEqual(t, a, c, "a different seed should change the street")
}

func TestEnsureAheadGeneratesAndRetires(t *testing.T) {
	w := NewWorld(42)

	w.EnsureAhead(0)
	require.NotEmpty(t, w.Blocks)
	require.GreaterOrEqual(t, w.lastZ(), float64(BlocksAhead)*BlockLength)
	require.Equal(t, 0, w.Blocks[0].Index)

	// Indices stay contiguous.
	for i := 1; i < len(w.Blocks); i++ {
		require.Equal(t, w.Blocks[i-1].Index+1, w.Blocks[i].Index)
	}

	playerZ := 500.0
	w.EnsureAhead(playerZ)
	require.GreaterOrEqual(t, w.lastZ(), playerZ+float64(BlocksAhead)*BlockLength)
	require.GreaterOrEqual(t, w.Blocks[0].Z1(), playerZ-float64(BlocksBehind)*BlockLength,
		"blocks far behind the player are retired")
}

func TestEnsureAheadIsStableForSameSeed(t *testing.T) {
	w1 := NewWorld(99)
	w1.EnsureAhead(0)
	w2 := NewWorld(99)
	w2.EnsureAhead(0)
	require.Equal(t, w1.Blocks, w2.Blocks)
}

func TestGeneratedGeometryWithinBounds(t *testing.T) {
	w := NewWorld(7)
	w.ObstaclesPerBlock = 5
	w.EnsureAhead(1000)

	houses := 0
	for _, b := range w.Blocks {
		for _, o := range b.Obstacles {
			require.LessOrEqual(t, math.Abs(o.Pos[0]), LaneMax,
				"obstacle %v outside the playable strip", o.Kind)
			require.GreaterOrEqual(t, o.Pos[2], b.Z0-BlockLength*0.5)
			require.LessOrEqual(t, o.Pos[2], b.Z1()+BlockLength*0.5)
			require.Greater(t, o.W, 0.0)
			require.Greater(t, o.H, 0.0)
			require.Greater(t, o.D, 0.0)
		}
		for _, m := range b.Mailboxes {
			require.Equal(t, CurbX, math.Abs(m.Pos[0]), "mailboxes sit on the curb line")
		}
		for _, p := range b.Porches {
			require.Equal(t, PorchX, math.Abs(p.Pos[0]), "porches sit on the house-front line")
		}
		if b.Kind == BlockPark {
			require.Empty(t, b.Mailboxes, "parks have no deliveries")
			require.Empty(t, b.Porches)
			require.Empty(t, b.Houses)
		} else {
			houses += len(b.Houses)
			require.Len(t, b.Houses, 2*HousesPerBlock)
			require.Len(t, b.Porches, 2*HousesPerBlock)
		}
	}
	require.Greater(t, houses, 0, "a long street must contain house blocks")
}

func TestStarterBlockHasNoRoadObstacles(t *testing.T) {
	for seed := uint64(1); seed < 30; seed++ {
		b := generateBlock(seed, 0, 5, 20)
		require.Equal(t, BlockHouses, b.Kind, "block zero is always a house block")
		for _, o := range b.Obstacles {
			require.False(t, roadKind(o.Kind),
				"seed %d: road obstacle %v on the starting block", seed, o.Kind)
		}
	}
}

func TestBlocksNearSelectsOverlap(t *testing.T) {
	w := NewWorld(5)
	w.EnsureAhead(300)

	blocks := w.BlocksNear(300, nil)
	require.NotEmpty(t, blocks)
	for _, b := range blocks {
		require.LessOrEqual(t, b.Z0, 300.0+BlockLength)
		require.GreaterOrEqual(t, b.Z1(), 300.0-BlockLength)
	}

	// Positions behind the retained window find nothing, those blocks are gone.
	require.Empty(t, w.BlocksNear(150, nil))
}
