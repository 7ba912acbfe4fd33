package framebuffer

// Offset is a pixel position relative to a disc centre.
type Offset struct {
	DX, DY int
}

// Footprint lists the offsets covered by a filled disc of the given radius.
func Footprint(radius int) []Offset {
	if radius < 0 {
		return nil
	}
	footprint := make([]Offset, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= r2 {
				footprint = append(footprint, Offset{DX: x, DY: y})
			}
		}
	}
	return footprint
}

// FillDisc stamps footprint at cx, cy in colour c.
func (f *Framebuffer) FillDisc(cx, cy int, footprint []Offset, c uint8) {
	for _, o := range footprint {
		f.Set(cx+o.DX, cy+o.DY, c)
	}
}
