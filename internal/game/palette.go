package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Road      RGB
	Stripe    RGB
	Sidewalk  RGB
	Grass     RGB
	ParkGrass RGB
	Sky       RGB
	HouseA    RGB
	HouseB    RGB
	HouseC    RGB
	Roof      RGB
	Porch     RGB
	Mailbox   RGB
	Post      RGB
	Player    RGB
	Bike      RGB
	Paper     RGB
	Hill      RGB
	Car       RGB
	TreeTrunk RGB
	TreeTop   RGB
	Sign      RGB
	Bench     RGB
	Pond      RGB
	Drain     RGB
	HUD       RGB
	HUDWarn   RGB
	HUDGood   RGB
}{
	Road:      RGB{R: 60, G: 66, B: 79},
	Stripe:    RGB{R: 208, G: 196, B: 120},
	Sidewalk:  RGB{R: 178, G: 168, B: 146},
	Grass:     RGB{R: 110, G: 148, B: 76},
	ParkGrass: RGB{R: 92, G: 158, B: 82},
	Sky:       RGB{R: 132, G: 186, B: 232},
	HouseA:    RGB{R: 198, G: 166, B: 130},
	HouseB:    RGB{R: 166, G: 178, B: 192},
	HouseC:    RGB{R: 186, G: 142, B: 142},
	Roof:      RGB{R: 104, G: 74, B: 62},
	Porch:     RGB{R: 146, G: 118, B: 92},
	Mailbox:   RGB{R: 64, G: 90, B: 160},
	Post:      RGB{R: 96, G: 82, B: 66},
	Player:    RGB{R: 222, G: 80, B: 64},
	Bike:      RGB{R: 52, G: 54, B: 60},
	Paper:     RGB{R: 238, G: 234, B: 218},
	Hill:      RGB{R: 150, G: 132, B: 100},
	Car:       RGB{R: 88, G: 112, B: 150},
	TreeTrunk: RGB{R: 92, G: 70, B: 48},
	TreeTop:   RGB{R: 58, G: 112, B: 52},
	Sign:      RGB{R: 204, G: 178, B: 64},
	Bench:     RGB{R: 132, G: 100, B: 70},
	Pond:      RGB{R: 70, G: 120, B: 168},
	Drain:     RGB{R: 110, G: 114, B: 120},
	HUD:       RGB{R: 240, G: 240, B: 235},
	HUDWarn:   RGB{R: 226, G: 84, B: 64},
	HUDGood:   RGB{R: 96, G: 214, B: 96},
}
