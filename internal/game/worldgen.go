package game

// obstacleDims returns the fixed bounding box for an obstacle kind.
func obstacleDims(kind ObstacleKind) (w, h, d float64) {
	switch kind {
	case ObstacleHill:
		return 3.0, 1.0, 2.5
	case ObstacleCar:
		return 2.0, 1.4, 4.0
	case ObstacleTree:
		return 1.0, 3.0, 1.0
	case ObstacleSign:
		return 0.5, 2.2, 0.5
	case ObstacleBench:
		return 2.0, 0.8, 0.7
	case ObstaclePond:
		return 4.0, 0.6, 3.0
	case ObstacleDrain:
		return 1.6, 0.4, 1.6
	}
	return 1, 1, 1
}

// roadKind reports whether the obstacle belongs on the asphalt.
func roadKind(kind ObstacleKind) bool {
	switch kind {
	case ObstacleHill, ObstacleCar, ObstacleDrain:
		return true
	}
	return false
}

func houseColor(r *Rand) RGB {
	switch r.Intn(3) {
	case 0:
		return Palette.HouseA
	case 1:
		return Palette.HouseB
	}
	return Palette.HouseC
}

// generateBlock builds one street block. Content derives only from the seed
// and the block index, so a given seed always produces the same street.
// Block zero stays clear of road obstacles to give the player a fair start.
func generateBlock(seed uint64, index, density, parkChance int) *Block {
	r := NewRand(hash2D(seed, index, 0))
	b := &Block{
		Index: index,
		Z0:    float64(index) * BlockLength,
	}

	if index > 0 && r.Intn(100) < parkChance {
		b.Kind = BlockPark
		genParkBlock(b, r, density)
		return b
	}
	b.Kind = BlockHouses
	genHouseBlock(b, r, density, index == 0)
	return b
}

func genHouseBlock(b *Block, r *Rand, density int, starter bool) {
	// Houses with porches line both sides; most get a curbside mailbox.
	for _, side := range [2]int{-1, 1} {
		s := float64(side)
		for i := 0; i < HousesPerBlock; i++ {
			hz := b.Z0 + (float64(i)+0.5)*HouseSpacing
			hw := r.RangeF(5.0, 7.0)
			hh := r.RangeF(3.2, 4.6)
			b.Houses = append(b.Houses, House{
				Pos:  vec3(s*HouseX, 0, hz),
				W:    hw,
				H:    hh,
				D:    r.RangeF(5.0, 7.5),
				Col:  houseColor(r),
				Side: side,
			})
			b.Porches = append(b.Porches, Porch{Pos: vec3(s*PorchX, 0, hz)})
			if r.Intn(100) < 80 {
				b.Mailboxes = append(b.Mailboxes, Mailbox{
					Pos: vec3(s*CurbX, 0, hz+r.RangeF(-2.0, 2.0)),
				})
			}
		}
	}

	if starter {
		// Only verge clutter on the first block.
		density = clamp(density-1, 1, density)
	}

	// Obstacles land in evenly spaced Z slots with jitter, so they never
	// bunch into an unavoidable wall.
	slot := BlockLength / float64(density)
	for i := 0; i < density; i++ {
		kind := rollObstacleKind(r, starter)
		oz := b.Z0 + (float64(i)+0.5)*slot + r.RangeF(-slot*0.3, slot*0.3)
		var ox float64
		if roadKind(kind) {
			if kind == ObstacleCar {
				// Parked near a curb, nose along the street.
				edge := r.RangeF(8.0, 11.0)
				if r.Intn(2) == 0 {
					edge = -edge
				}
				ox = edge
			} else {
				ox = r.RangeF(-10.0, 10.0)
			}
		} else {
			ox = r.RangeF(13.0, 15.0)
			if r.Intn(2) == 0 {
				ox = -ox
			}
		}
		w, h, d := obstacleDims(kind)
		b.Obstacles = append(b.Obstacles, Obstacle{
			Pos: vec3(ox, 0, oz), W: w, H: h, D: d, Kind: kind,
		})
	}
}

func genParkBlock(b *Block, r *Rand, density int) {
	// Parks trade deliveries for clutter: trees, benches and ponds spread
	// across the whole playable strip.
	count := density + 2
	slot := BlockLength / float64(count)
	for i := 0; i < count; i++ {
		var kind ObstacleKind
		switch r.Intn(5) {
		case 0:
			kind = ObstaclePond
		case 1:
			kind = ObstacleBench
		case 2:
			kind = ObstacleHill
		default:
			kind = ObstacleTree
		}
		oz := b.Z0 + (float64(i)+0.5)*slot + r.RangeF(-slot*0.3, slot*0.3)
		ox := r.RangeF(LaneMin+1, LaneMax-1)
		w, h, d := obstacleDims(kind)
		b.Obstacles = append(b.Obstacles, Obstacle{
			Pos: vec3(ox, 0, oz), W: w, H: h, D: d, Kind: kind,
		})
	}
}

func rollObstacleKind(r *Rand, starter bool) ObstacleKind {
	if starter {
		// Verge-only kinds on the first block.
		switch r.Intn(3) {
		case 0:
			return ObstacleSign
		case 1:
			return ObstacleBench
		}
		return ObstacleTree
	}
	roll := r.Intn(100)
	switch {
	case roll < 15:
		return ObstacleHill
	case roll < 40:
		return ObstacleCar
	case roll < 55:
		return ObstacleDrain
	case roll < 70:
		return ObstacleSign
	case roll < 85:
		return ObstacleBench
	}
	return ObstacleTree
}
