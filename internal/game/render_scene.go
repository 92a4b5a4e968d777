package game

import "math"

// DrawWorld draws the street geometry of every live block.
func (r *Renderer) DrawWorld(w *World) {
	for _, b := range w.Blocks {
		r.drawBlockGround(b)
		for i := range b.Houses {
			h := &b.Houses[i]
			r.DrawBox(h.Pos, h.W, h.H, h.D, 0, h.Col)
			// Roof slab overhanging the body.
			roofPos := h.Pos
			roofPos[1] += h.H
			r.DrawBox(roofPos, h.W+1.0, 0.8, h.D+1.0, 0, Palette.Roof)
		}
		for i := range b.Porches {
			p := &b.Porches[i]
			r.DrawBox(p.Pos, PorchZoneX*2, 0.25, PorchZoneZ*2, 0, Palette.Porch)
		}
		for i := range b.Mailboxes {
			m := &b.Mailboxes[i]
			r.DrawBox(m.Pos, 0.15, 1.0, 0.15, 0, Palette.Post)
			boxPos := m.Pos
			boxPos[1] += 1.0
			r.DrawBox(boxPos, 0.6, 0.45, 0.9, 0, Palette.Mailbox)
		}
		for i := range b.Obstacles {
			r.drawObstacle(&b.Obstacles[i])
		}
	}
}

func (r *Renderer) drawBlockGround(b *Block) {
	mid := vec3(0, -0.2, b.Z0+BlockLength/2)
	if b.Kind == BlockPark {
		r.DrawBox(mid, VergeHalfWidth*2, 0.2, BlockLength, 0, Palette.ParkGrass)
		return
	}
	// Road, then sidewalk and grass strips on both sides.
	r.DrawBox(mid, RoadHalfWidth*2, 0.2, BlockLength, 0, Palette.Road)
	for _, s := range [2]float64{-1, 1} {
		walkMid := vec3(s*(RoadHalfWidth+2.0), -0.2, b.Z0+BlockLength/2)
		r.DrawBox(walkMid, 4.0, 0.22, BlockLength, 0, Palette.Sidewalk)
		grassW := VergeHalfWidth - RoadHalfWidth - 4.0
		grassMid := vec3(s*(RoadHalfWidth+4.0+grassW/2), -0.2, b.Z0+BlockLength/2)
		r.DrawBox(grassMid, grassW, 0.18, BlockLength, 0, Palette.Grass)
	}
	// Dashed centre line.
	for z := b.Z0 + 1.5; z < b.Z1(); z += 6.0 {
		r.DrawBox(vec3(0, -0.18, z), 0.3, 0.2, 2.4, 0, Palette.Stripe)
	}
}

func (r *Renderer) drawObstacle(o *Obstacle) {
	switch o.Kind {
	case ObstacleHill:
		// Stepped mound reads as a ramp.
		r.DrawBox(o.Pos, o.W, o.H*0.5, o.D, 0, Palette.Hill)
		top := o.Pos
		r.DrawBox(top, o.W*0.6, o.H, o.D*0.6, 0, Palette.Hill.Add(16, 14, 10))
	case ObstacleCar:
		r.DrawBox(o.Pos, o.W, o.H*0.6, o.D, 0, Palette.Car)
		cabin := o.Pos
		cabin[1] += o.H * 0.6
		r.DrawBox(cabin, o.W*0.85, o.H*0.4, o.D*0.55, 0, Palette.Car.Add(24, 24, 28))
	case ObstacleTree:
		r.DrawBox(o.Pos, 0.45, o.H*0.55, 0.45, 0, Palette.TreeTrunk)
		crown := o.Pos
		crown[1] += o.H * 0.55
		r.DrawBox(crown, 2.2, o.H*0.6, 2.2, 0, Palette.TreeTop)
	case ObstacleSign:
		r.DrawBox(o.Pos, 0.12, o.H, 0.12, 0, Palette.Post)
		face := o.Pos
		face[1] += o.H * 0.75
		r.DrawBox(face, 0.9, 0.7, 0.1, 0, Palette.Sign)
	case ObstacleBench:
		r.DrawBox(o.Pos, o.W, o.H*0.5, o.D, 0, Palette.Bench)
		back := o.Pos
		back[1] += o.H * 0.5
		back[2] -= o.D * 0.35
		r.DrawBox(back, o.W, o.H*0.5, 0.15, 0, Palette.Bench.Add(-14, -12, -10))
	case ObstaclePond:
		r.DrawBox(o.Pos, o.W, 0.15, o.D, 0, Palette.Pond)
	case ObstacleDrain:
		r.DrawBox(o.Pos, o.W, o.H, o.D, 0, Palette.Drain)
	default:
		r.DrawBox(o.Pos, o.W, o.H, o.D, 0, Palette.Drain)
	}
}

// DrawPlayer draws the rider and bike, blinking while invincible.
func (r *Renderer) DrawPlayer(p *Player, now float64) {
	if p.Invincible && int(now*10)%2 == 0 {
		return
	}
	yaw := -p.Lean * 0.3
	// Bike frame.
	r.DrawBox(p.Pos, 0.3, 0.8, p.D, yaw, Palette.Bike)
	// Rider.
	body := p.Pos
	body[1] += 0.7
	r.DrawBox(body, p.W, 0.8, 0.7, yaw, Palette.Player)
	head := p.Pos
	head[1] += 1.5
	r.DrawBox(head, 0.45, 0.45, 0.45, yaw, Palette.Player.Add(20, 40, 40))
}

// DrawPapers draws every newspaper as a small tumbling block.
func (r *Renderer) DrawPapers(ps *PaperSystem) {
	for i := range ps.Papers {
		n := &ps.Papers[i]
		pos := n.Pos
		pos[1] -= PaperSize / 2
		if pos[1] < 0 {
			pos[1] = 0
		}
		r.DrawBox(pos, PaperSize, PaperSize*0.6, PaperSize, math.Mod(n.Spin, 2*math.Pi), Palette.Paper)
	}
}

// DrawParticles draws crash dust and delivery confetti.
func (r *Renderer) DrawParticles(ps *ParticleSystem) {
	for i := range ps.P {
		p := &ps.P[i]
		col := p.Col
		if p.Max > 0 {
			col = lerpRGB(Palette.Sky, p.Col, p.Life/p.Max)
		}
		r.DrawBox(p.Pos, p.Size, p.Size, p.Size, 0, col)
	}
}
