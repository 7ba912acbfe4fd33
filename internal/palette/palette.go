// Package palette defines the 8-bit indexed colours the renderer draws with
// and their RGBA expansion.
package palette

import "image/color"

// Named entries.
const (
	Black     uint8 = 0
	White     uint8 = 1
	Red       uint8 = 2
	Green     uint8 = 3
	Yellow    uint8 = 4
	Cyan      uint8 = 5
	Magenta   uint8 = 6
	DarkGrey  uint8 = 7
	Sky       uint8 = 8
	Floor     uint8 = 9
	CornerA   uint8 = 10
	CornerB   uint8 = 11
	MapWall   uint8 = 12
	MapPortal uint8 = 13
)

// WallBase is the first entry of the wall ramp; the ramp spans
// WallBase .. WallBase+2*WallShades.
const (
	WallBase   uint8 = 32
	WallShades       = 8
)

// RGBA holds the expansion of every index. Entries not named above form a
// grey ramp.
var RGBA = build()

func build() [256]color.RGBA {
	var p [256]color.RGBA
	for i := range p {
		v := uint8(i)
		p[i] = color.RGBA{v, v, v, 255}
	}
	p[Black] = color.RGBA{0, 0, 0, 255}
	p[White] = color.RGBA{255, 255, 255, 255}
	p[Red] = color.RGBA{224, 32, 32, 255}
	p[Green] = color.RGBA{32, 200, 64, 255}
	p[Yellow] = color.RGBA{240, 220, 40, 255}
	p[Cyan] = color.RGBA{0, 200, 230, 255}
	p[Magenta] = color.RGBA{200, 40, 200, 255}
	p[DarkGrey] = color.RGBA{40, 40, 48, 255}
	p[Sky] = color.RGBA{18, 22, 40, 255}
	p[Floor] = color.RGBA{28, 24, 20, 255}
	p[CornerA] = color.RGBA{255, 64, 0, 255}
	p[CornerB] = color.RGBA{64, 255, 0, 255}
	p[MapWall] = color.RGBA{200, 200, 200, 255}
	p[MapPortal] = color.RGBA{255, 40, 40, 255}
	for i := 0; i <= 2*WallShades; i++ {
		t := 80 + i*150/(2*WallShades)
		p[int(WallBase)+i] = color.RGBA{uint8(t * 3 / 4), uint8(t * 5 / 6), uint8(t), 255}
	}
	return p
}

// Color returns the RGBA value of index i.
func Color(i uint8) color.RGBA { return RGBA[i] }
