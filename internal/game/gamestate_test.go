package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartRunResetsEverything(t *testing.T) {
	w := NewWorld(1)
	papers := NewPaperSystem()
	particles := NewParticleSystem(64, 1)
	s := NewGameSession(3, 30)
	var p *Player

	s.StartRun(42, w, &p, papers, particles)

	require.Equal(t, StatePlaying, s.State)
	require.Equal(t, 0, s.Score)
	require.Equal(t, 3, s.Lives)
	require.Equal(t, 30, s.Papers)
	require.Equal(t, 0.0, s.Distance)
	require.NotNil(t, p)
	require.NotEmpty(t, w.Blocks, "street exists from the first frame")
	require.Empty(t, papers.Papers)

	// A second run resets again after some play.
	s.Score = 300
	s.Lives = 1
	firstPlayer := p
	s.StartRun(43, w, &p, papers, particles)
	require.Equal(t, 0, s.Score)
	require.Equal(t, 3, s.Lives)
	require.NotSame(t, firstPlayer, p)
	require.Equal(t, 0, w.Blocks[0].Index, "generation restarts from block zero")
}

func TestRunEndsWhenLivesReachZero(t *testing.T) {
	s := playingSession(5)
	s.Lives = 0
	bus := NewEventBus()
	over := 0
	bus.Subscribe(EventGameOver, func(Event) { over++ })

	s.CheckRunEnd(NewPaperSystem(), bus)

	require.Equal(t, StateGameOver, s.State)
	require.Equal(t, 1, over)
}

func TestRunEndsWhenPapersExhausted(t *testing.T) {
	s := playingSession(1)
	ps := NewPaperSystem()
	bus := NewEventBus()

	// One paper left: still playing.
	s.CheckRunEnd(ps, bus)
	require.Equal(t, StatePlaying, s.State)

	// Budget spent but a paper is still airborne: the run rides on.
	s.Papers = 0
	ps.Papers = append(ps.Papers, Newspaper{Pos: vec3(0, 2, 0), Thrown: true})
	s.CheckRunEnd(ps, bus)
	require.Equal(t, StatePlaying, s.State)

	// Last paper grounds: now it is over.
	ps.Papers[0].Grounded = true
	s.CheckRunEnd(ps, bus)
	require.Equal(t, StateGameOver, s.State)
}

func TestBestScoreTracksAcrossRuns(t *testing.T) {
	s := playingSession(5)
	s.Score = 120
	s.Lives = 0
	s.CheckRunEnd(NewPaperSystem(), NewEventBus())
	require.Equal(t, 120, s.BestScore)

	// A worse run does not lower the best.
	s.State = StatePlaying
	s.Score = 40
	s.Lives = 0
	s.CheckRunEnd(NewPaperSystem(), NewEventBus())
	require.Equal(t, 120, s.BestScore)
}

func TestScoreNeverNegative(t *testing.T) {
	s := playingSession(5)
	s.AddScore(-50)
	require.Equal(t, 0, s.Score)
	s.AddScore(7)
	s.AddScore(-3)
	require.Equal(t, 4, s.Score)
}

func TestTogglePause(t *testing.T) {
	s := playingSession(5)
	s.TogglePause()
	require.Equal(t, StatePaused, s.State)
	s.TogglePause()
	require.Equal(t, StatePlaying, s.State)

	s.State = StateMenu
	s.TogglePause()
	require.Equal(t, StateMenu, s.State, "pause only applies mid-run")
}

func TestSessionDistanceFollowsPlayer(t *testing.T) {
	s := playingSession(5)
	p := NewPlayer(10)
	p.Pos[2] = 250
	s.Update(1.0, p)
	require.Equal(t, 250.0, s.Distance)
	require.Equal(t, 1.0, s.RunTimer)
}
