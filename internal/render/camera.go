package render

import (
	"portalview/internal/geom"
	"portalview/internal/level"
)

// Camera is the viewpoint. Movement and collision mutate it between frames;
// the renderer only reads it.
type Camera struct {
	Position  geom.Vec2i
	Rotation  int
	Direction geom.Vec2f
	Sector    level.SectorID
}

// NewCamera places a camera at a map's spawn point.
func NewCamera(trig *geom.Trig, spawn level.Spawn) Camera {
	c := Camera{Position: spawn.Position, Sector: spawn.Sector}
	c.SetRotation(trig, spawn.Rotation)
	return c
}

// SetRotation wraps deg onto [0, 360) and refreshes Direction.
func (c *Camera) SetRotation(trig *geom.Trig, deg int) {
	c.Rotation = geom.WrapDegrees(deg)
	c.Direction = trig.Direction(c.Rotation)
}

// Turn rotates the camera by delta degrees.
func (c *Camera) Turn(trig *geom.Trig, delta int) {
	c.SetRotation(trig, c.Rotation+delta)
}

// Relative returns p in camera space: Y is depth along the view direction and
// X the lateral offset, positive to the right. Results are truncated to
// integers.
func Relative(origin geom.Vec2i, dir geom.Vec2f, p geom.Vec2i) geom.Vec2i {
	d := p.Sub(origin)
	dx, dy := float64(d.X), float64(d.Y)
	return geom.Vec2i{
		X: int(dx*dir.Y - dy*dir.X),
		Y: int(dy*dir.Y + dx*dir.X),
	}
}

// Relative transforms p into this camera's space.
func (c *Camera) Relative(p geom.Vec2i) geom.Vec2i {
	return Relative(c.Position, c.Direction, p)
}
