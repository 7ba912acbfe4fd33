// Package player moves a render.Camera through a level in response to
// frontend input.
package player

import (
	"portalview/internal/geom"
	"portalview/internal/level"
	"portalview/internal/render"
)

// Input is the set of controls held during one tick.
type Input struct {
	Forward, Back           bool
	StrafeLeft, StrafeRight bool
	TurnLeft, TurnRight     bool
}

// Idle reports whether no control is held.
func (in Input) Idle() bool { return in == Input{} }

// Player owns the camera and applies movement and collision to it.
type Player struct {
	Camera render.Camera

	// MoveSpeed is in world units per tick, LookSpeed in degrees per tick.
	MoveSpeed int
	LookSpeed int
	// Radius is how close the player may get to an opaque wall.
	Radius int

	trig  *geom.Trig
	world *level.Map
}

// New places a player at the map's spawn point.
func New(trig *geom.Trig, world *level.Map, moveSpeed, lookSpeed, radius int) *Player {
	return &Player{
		Camera:    render.NewCamera(trig, world.Spawn),
		MoveSpeed: moveSpeed,
		LookSpeed: lookSpeed,
		Radius:    radius,
		trig:      trig,
		world:     world,
	}
}

// Step turns, moves and collides the player once. It reports whether the
// position changed.
func (p *Player) Step(in Input) bool {
	cam := &p.Camera
	if in.TurnLeft {
		cam.Turn(p.trig, -p.LookSpeed)
	}
	if in.TurnRight {
		cam.Turn(p.trig, p.LookSpeed)
	}

	d := cam.Direction.Scale(float64(p.MoveSpeed))
	pos := cam.Position
	if in.Forward {
		pos = pos.Add(d)
	}
	if in.Back {
		pos = pos.Sub(d)
	}
	if in.StrafeLeft {
		pos = pos.Add(geom.V(-d.Y, d.X))
	}
	if in.StrafeRight {
		pos = pos.Add(geom.V(d.Y, -d.X))
	}

	before := cam.Position
	cam.Position, cam.Sector = p.world.Collide(pos, cam.Sector, p.Radius)
	return cam.Position != before
}
