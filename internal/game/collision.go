package game

import "math"

// hitsObstacle does the axis-aligned distance test: a hit needs the centre
// distance under (half extents sum) * HitTolerance on X and Z, and
// the player below the obstacle's top on Y.
func hitsObstacle(p *Player, o *Obstacle) bool {
	if math.Abs(p.Pos[0]-o.Pos[0]) >= (p.W+o.W)/2*HitTolerance {
		return false
	}
	if math.Abs(p.Pos[2]-o.Pos[2]) >= (p.D+o.D)/2*HitTolerance {
		return false
	}
	return p.Pos[1] < o.H
}

// CheckObstacles linearly scans the obstacles of nearby blocks for a hit.
// Hills launch the player instead of hurting them; anything else costs a
// life, a score penalty and starts the invincibility window.
// Returns the scratch slice so the caller can reuse its backing array.
func CheckObstacles(p *Player, w *World, s *GameSession, bus *EventBus, scratch []*Block) []*Block {
	if s.State != StatePlaying {
		return scratch
	}

	blocks := w.BlocksNear(p.Pos[2], scratch)
	for _, b := range blocks {
		for i := range b.Obstacles {
			o := &b.Obstacles[i]
			if !hitsObstacle(p, o) {
				continue
			}
			if o.Kind == ObstacleHill {
				if !p.Jumping || p.Vel[1] < 0 {
					p.RampLaunch()
					bus.Emit(Event{Type: EventRampJump, Pos: o.Pos})
				}
				continue
			}
			if p.Invincible {
				continue
			}
			s.Lives--
			s.AddScore(-CrashPenalty)
			p.Speed *= CrashSpeedScale // the tier ramp eases it back up
			p.StartInvincibility()
			bus.Emit(Event{Type: EventCrash, Pos: o.Pos, Data: int(o.Kind)})
			return blocks
		}
	}
	return blocks
}
