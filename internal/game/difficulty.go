package game

// Tier holds the pacing knobs for a stretch of street.
type Tier struct {
	Speed             float64 // player forward speed
	ObstaclesPerBlock int
	ParkChance        int // percent of blocks that roll a park
}

// TierFor returns the difficulty for a distance ridden (in world units).
// The early stretches are hand-tuned; past them the street keeps
// tightening procedurally.
func TierFor(distance float64) Tier {
	switch {
	case distance < 200:
		// Gentle warm-up, wide gaps, mostly verge clutter.
		return Tier{Speed: 10.0, ObstaclesPerBlock: 2, ParkChance: 15}
	case distance < 500:
		// Parked cars start appearing in numbers.
		return Tier{Speed: 12.0, ObstaclesPerBlock: 3, ParkChance: 20}
	case distance < 900:
		// First genuinely busy stretch.
		return Tier{Speed: 13.5, ObstaclesPerBlock: 4, ParkChance: 20}
	case distance < 1400:
		// Rush hour.
		return Tier{Speed: 15.0, ObstaclesPerBlock: 5, ParkChance: 25}
	}
	// Beyond the tuned stretches: scale up, capped so the run stays rideable.
	extra := int((distance - 1400) / 500)
	t := Tier{
		Speed:             15.0 + float64(extra)*0.75,
		ObstaclesPerBlock: 5 + extra,
		ParkChance:        25,
	}
	if t.Speed > 20 {
		t.Speed = 20
	}
	if t.ObstaclesPerBlock > 8 {
		t.ObstaclesPerBlock = 8
	}
	return t
}

// ApplyTier eases the player toward the tier speed and feeds the world's
// generation knobs. Speed ramps instead of stepping so tier boundaries
// are invisible while riding.
func ApplyTier(t Tier, p *Player, w *World, dt float64) {
	p.Speed = approach(p.Speed, t.Speed, 2.0*dt)
	w.ObstaclesPerBlock = t.ObstaclesPerBlock
	w.ParkChance = t.ParkChance
}
