package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Newspaper is a thrown projectile. Created on throw, stepped every frame
// while airborne, removed on delivery or after PaperTimeout.
type Newspaper struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	Thrown    bool
	Delivered bool
	Grounded  bool
	Age       float64
	Spin      float64 // render-only tumble angle
}

// PaperSystem owns every newspaper in flight or on the ground.
type PaperSystem struct {
	Papers []Newspaper

	scratch []*Block
}

func NewPaperSystem() *PaperSystem {
	return &PaperSystem{
		Papers: make([]Newspaper, 0, 16),
	}
}

func (ps *PaperSystem) Clear() {
	ps.Papers = ps.Papers[:0]
}

// InFlight counts papers that are still airborne.
func (ps *PaperSystem) InFlight() int {
	n := 0
	for i := range ps.Papers {
		if !ps.Papers[i].Grounded {
			n++
		}
	}
	return n
}

// Throw launches a paper from the player toward one curb (dir -1 left, +1 right).
// Refuses when the paper budget is spent, which bounds the list length by the
// session's resource count.
func (ps *PaperSystem) Throw(p *Player, dir int, s *GameSession, bus *EventBus) bool {
	if s.Papers <= 0 || s.State != StatePlaying {
		return false
	}
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	s.Papers--

	start := p.Pos.Add(vec3(0, 1.2, 0.4))
	ps.Papers = append(ps.Papers, Newspaper{
		Pos:    start,
		Vel:    vec3(float64(dir)*ThrowSpeedX, ThrowSpeedY, p.Speed+ThrowSpeedZ),
		Thrown: true,
	})
	bus.Emit(Event{Type: EventThrow, Pos: start})
	return true
}

// Update steps every paper: ballistic flight, delivery checks against the
// mailboxes and porches of nearby blocks, ground contact, timeout removal.
func (ps *PaperSystem) Update(dt float64, w *World, s *GameSession, bus *EventBus) {
	if dt <= 0 || len(ps.Papers) == 0 {
		return
	}

	out := ps.Papers[:0]
	for i := range ps.Papers {
		n := ps.Papers[i]
		n.Age += dt

		if !n.Grounded {
			n.Pos = n.Pos.Add(n.Vel.Mul(dt))
			n.Vel[1] -= Gravity * dt
			n.Spin += 8.0 * dt

			ps.scratch = w.BlocksNear(n.Pos[2], ps.scratch)
			if deliverPaper(&n, ps.scratch, s, bus) {
				// Delivered papers leave play immediately.
				continue
			}

			if n.Pos[1] <= PaperSize/2 {
				n.Pos[1] = PaperSize / 2
				n.Vel = mgl64.Vec3{}
				n.Grounded = true
			}
		}

		if n.Age >= PaperTimeout {
			bus.Emit(Event{Type: EventPaperExpired, Pos: n.Pos})
			continue
		}
		out = append(out, n)
	}
	ps.Papers = out
}

// deliverPaper scans nearby mailboxes, then porches. Mailboxes pay better,
// so they win when both zones overlap.
func deliverPaper(n *Newspaper, blocks []*Block, s *GameSession, bus *EventBus) bool {
	for _, b := range blocks {
		for i := range b.Mailboxes {
			m := &b.Mailboxes[i]
			if n.Pos[1] < MailboxZoneH &&
				math.Abs(n.Pos[0]-m.Pos[0]) < MailboxZoneX &&
				math.Abs(n.Pos[2]-m.Pos[2]) < MailboxZoneZ {
				n.Delivered = true
				s.AddScore(MailboxPoints)
				bus.Emit(Event{Type: EventDelivery, Pos: m.Pos, Data: MailboxPoints})
				return true
			}
		}
	}
	for _, b := range blocks {
		for i := range b.Porches {
			p := &b.Porches[i]
			if n.Pos[1] < PorchZoneH &&
				math.Abs(n.Pos[0]-p.Pos[0]) < PorchZoneX &&
				math.Abs(n.Pos[2]-p.Pos[2]) < PorchZoneZ {
				n.Delivered = true
				s.AddScore(PorchPoints)
				bus.Emit(Event{Type: EventDelivery, Pos: p.Pos, Data: PorchPoints})
				return true
			}
		}
	}
	return false
}
