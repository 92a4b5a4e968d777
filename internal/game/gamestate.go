package game

type GameState int

const (
	StateMenu     GameState = iota
	StatePlaying            // main gameplay
	StatePaused             // frozen mid-run
	StateGameOver           // out of lives or out of papers
)

type GameSession struct {
	State GameState

	Score    int
	Lives    int
	Papers   int     // throwable budget left
	Distance float64 // metres ridden this run
	RunTimer float64

	BestScore int // session lifetime only, never persisted

	startLives  int
	startPapers int
}

func NewGameSession(lives, papers int) *GameSession {
	if lives <= 0 {
		lives = StartLives
	}
	if papers <= 0 {
		papers = StartPapers
	}
	return &GameSession{
		State:       StateMenu,
		startLives:  lives,
		startPapers: papers,
	}
}

// StartRun resets all systems and begins a new ride.
func (s *GameSession) StartRun(seed uint64, world *World, player **Player, papers *PaperSystem, particles *ParticleSystem) {
	s.Score = 0
	s.Lives = s.startLives
	s.Papers = s.startPapers
	s.Distance = 0
	s.RunTimer = 0
	s.State = StatePlaying

	diff := TierFor(0)
	world.Reset(seed)
	world.ObstaclesPerBlock = diff.ObstaclesPerBlock
	world.ParkChance = diff.ParkChance
	*player = NewPlayer(diff.Speed)
	world.EnsureAhead((*player).Pos[2])

	papers.Clear()
	particles.Clear()
}

// AddScore adjusts the score, clamped at zero.
func (s *GameSession) AddScore(delta int) {
	s.Score += delta
	if s.Score < 0 {
		s.Score = 0
	}
}

// Update advances run time and distance.
func (s *GameSession) Update(dt float64, player *Player) {
	if s.State != StatePlaying {
		return
	}
	s.RunTimer += dt
	if player != nil {
		s.Distance = player.Pos[2]
	}
}

// CheckRunEnd decides the terminal condition: out of lives, or the paper
// budget is spent with nothing left in flight.
func (s *GameSession) CheckRunEnd(papers *PaperSystem, bus *EventBus) {
	if s.State != StatePlaying {
		return
	}
	if s.Lives <= 0 {
		s.endRun(bus)
		return
	}
	if s.Papers <= 0 && papers.InFlight() == 0 {
		s.endRun(bus)
	}
}

func (s *GameSession) endRun(bus *EventBus) {
	s.State = StateGameOver
	if s.Score > s.BestScore {
		s.BestScore = s.Score
	}
	bus.Emit(Event{Type: EventGameOver, Data: s.Score})
}

// TogglePause flips between playing and paused.
func (s *GameSession) TogglePause() {
	switch s.State {
	case StatePlaying:
		s.State = StatePaused
	case StatePaused:
		s.State = StatePlaying
	}
}
