// Package render draws a sector/portal map from a first-person camera.
//
// Each frame walks the walls of the camera's sector, transforms them into
// camera space, clips them against the visible screen-column range and draws
// the survivors as trapezoids mirrored about the horizon. Portal walls are not
// drawn; the walk recurses into the neighbouring sector with the column range
// narrowed to the portal's own projected extent, which is what keeps farther
// sectors behind nearer walls without a depth buffer.
package render

// Config fixes the screen geometry and projection constants.
type Config struct {
	Width, Height int

	// PerspectiveScale is the distance of the projection plane in pixels; it
	// sets the field of view.
	PerspectiveScale int

	// WallHeight is the world height of every wall.
	WallHeight int

	// MaxDepth bounds portal recursion. Convex, consistently wound maps never
	// reach it; malformed maps would otherwise recurse without end.
	MaxDepth int
}

// DefaultConfig matches a 320x240 display.
func DefaultConfig() Config {
	return Config{
		Width:            320,
		Height:           240,
		PerspectiveScale: 200,
		WallHeight:       100,
		MaxDepth:         32,
	}
}

func (c *Config) halfWidth() int  { return c.Width / 2 }
func (c *Config) halfHeight() int { return c.Height / 2 }
