package game

import "github.com/go-gl/mathgl/mgl64"

type ObstacleKind int

const (
	ObstacleHill ObstacleKind = iota
	ObstacleCar
	ObstacleTree
	ObstacleSign
	ObstacleBench
	ObstaclePond
	ObstacleDrain
)

// Obstacle is immutable after world generation; only collision reads it.
type Obstacle struct {
	Pos     mgl64.Vec3
	W, H, D float64
	Kind    ObstacleKind
}

// Mailbox is a delivery target at the curb line.
type Mailbox struct {
	Pos mgl64.Vec3
}

// Porch is the fallback delivery target at a house front.
type Porch struct {
	Pos mgl64.Vec3
}

// House carries only presentation data; it sits beyond the lane range and
// is never collision-checked.
type House struct {
	Pos     mgl64.Vec3
	W, H, D float64
	Col     RGB
	Side    int // -1 left, +1 right
}

type BlockKind int

const (
	BlockHouses BlockKind = iota
	BlockPark
)

// Block is one generated street segment. Exactly one slice of obstacles,
// mailboxes and porches is built per generation pass, then never mutated.
type Block struct {
	Index int
	Kind  BlockKind
	Z0    float64

	Obstacles []Obstacle
	Mailboxes []Mailbox
	Porches   []Porch
	Houses    []House
}

func (b *Block) Z1() float64 { return b.Z0 + BlockLength }

// World owns the generated street. Blocks are created ahead of the player
// and retired once they fall far enough behind.
type World struct {
	seed uint64

	Blocks []*Block

	nextIndex int

	// Generation knobs, set from the difficulty tier before EnsureAhead.
	ObstaclesPerBlock int
	ParkChance        int // percent
}

func NewWorld(seed uint64) *World {
	if seed == 0 {
		seed = 1
	}
	return &World{
		seed:              seed,
		ObstaclesPerBlock: 2,
		ParkChance:        20,
	}
}

// Reset drops all blocks and restarts generation from block zero.
func (w *World) Reset(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	w.seed = seed
	w.Blocks = w.Blocks[:0]
	w.nextIndex = 0
}

// EnsureAhead generates blocks in front of playerZ and retires blocks behind.
func (w *World) EnsureAhead(playerZ float64) {
	horizon := playerZ + BlocksAhead*BlockLength
	for lastZ := w.lastZ(); lastZ < horizon; lastZ = w.lastZ() {
		w.Blocks = append(w.Blocks, generateBlock(w.seed, w.nextIndex, w.ObstaclesPerBlock, w.ParkChance))
		w.nextIndex++
	}

	cutoff := playerZ - BlocksBehind*BlockLength
	keep := 0
	for keep < len(w.Blocks) && w.Blocks[keep].Z1() < cutoff {
		keep++
	}
	if keep > 0 {
		w.Blocks = append(w.Blocks[:0], w.Blocks[keep:]...)
	}
}

func (w *World) lastZ() float64 {
	if len(w.Blocks) == 0 {
		return 0
	}
	return w.Blocks[len(w.Blocks)-1].Z1()
}

// BlocksNear returns the generated blocks overlapping [z-BlockLength, z+BlockLength].
// Collision and delivery checks scan only these.
func (w *World) BlocksNear(z float64, out []*Block) []*Block {
	out = out[:0]
	lo := z - BlockLength
	hi := z + BlockLength
	for _, b := range w.Blocks {
		if b.Z1() < lo || b.Z0 > hi {
			continue
		}
		out = append(out, b)
	}
	return out
}
