package game

import "github.com/go-gl/mathgl/mgl64"

// Particle is a short-lived cube used for crash dust and delivery confetti.
type Particle struct {
	Pos  mgl64.Vec3
	Vel  mgl64.Vec3
	Col  RGB
	Size float64
	Life float64
	Max  float64
}

type ParticleSystem struct {
	P    []Particle
	rand *Rand
	cap  int
}

func NewParticleSystem(capacity int, seed uint64) *ParticleSystem {
	return &ParticleSystem{
		P:    make([]Particle, 0, capacity),
		rand: NewRand(seed),
		cap:  capacity,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

func (ps *ParticleSystem) spawn(p Particle) {
	if len(ps.P) >= ps.cap {
		return
	}
	ps.P = append(ps.P, p)
}

// SpawnCrash bursts grey dust at a collision point.
func (ps *ParticleSystem) SpawnCrash(pos mgl64.Vec3) {
	for i := 0; i < 18; i++ {
		ps.spawn(Particle{
			Pos: pos.Add(vec3(ps.rand.RangeF(-0.4, 0.4), ps.rand.RangeF(0.1, 1.2), ps.rand.RangeF(-0.4, 0.4))),
			Vel: vec3(ps.rand.RangeF(-4, 4), ps.rand.RangeF(1, 6), ps.rand.RangeF(-3, 3)),
			Col: RGB{R: 150, G: 145, B: 135}.Add(ps.rand.Range(-20, 20), ps.rand.Range(-20, 20), ps.rand.Range(-20, 20)),
			Size: ps.rand.RangeF(0.1, 0.25),
			Life: ps.rand.RangeF(0.4, 0.9),
			Max:  0.9,
		})
	}
}

// SpawnDelivery puffs bright confetti at a landed delivery.
func (ps *ParticleSystem) SpawnDelivery(pos mgl64.Vec3) {
	for i := 0; i < 12; i++ {
		col := Palette.Paper
		if i%3 == 0 {
			col = Palette.HUDGood
		}
		ps.spawn(Particle{
			Pos:  pos.Add(vec3(0, 1.0, 0)),
			Vel:  vec3(ps.rand.RangeF(-2.5, 2.5), ps.rand.RangeF(2, 5), ps.rand.RangeF(-2.5, 2.5)),
			Col:  col,
			Size: ps.rand.RangeF(0.08, 0.16),
			Life: ps.rand.RangeF(0.5, 1.1),
			Max:  1.1,
		})
	}
}

// Update steps particles under gravity and drops the dead ones.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 || len(ps.P) == 0 {
		return
	}
	out := ps.P[:0]
	for i := range ps.P {
		p := ps.P[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		p.Vel[1] -= Gravity * 0.6 * dt
		if p.Pos[1] < 0 {
			p.Pos[1] = 0
			p.Vel[1] = 0
		}
		out = append(out, p)
	}
	ps.P = out
}
