package level

import (
	"errors"
	"fmt"

	"portalview/internal/geom"
)

// ErrUnknownMap is returned by Builtin for names it does not know.
var ErrUnknownMap = errors.New("unknown built-in map")

// Builtin returns a fresh copy of the named built-in map.
func Builtin(name string) (*Map, error) {
	switch name {
	case "default":
		return Default(), nil
	case "demo", "":
		return Demo(), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownMap)
}

// Default is the two-room map: a pentagon with a portal in its top edge
// opening onto a small square room.
func Default() *Map {
	m := &Map{Name: "default"}
	room := mustSector(m,
		geom.V(-400, 400), geom.V(0, 400), geom.V(400, 400), geom.V(400, -400), geom.V(-400, -400))
	annex := mustSector(m,
		geom.V(0, 400), geom.V(0, 600), geom.V(400, 600), geom.V(400, 400))
	must(m.Link(room, 1, annex, 3))
	m.Spawn = Spawn{Sector: room}
	return m
}

// Demo extends Default with a hexagonal hall beyond the annex and a tapered
// room below the pentagon.
func Demo() *Map {
	m := Default()
	m.Name = "demo"
	hall := mustSector(m,
		geom.V(0, 600), geom.V(-300, 800), geom.V(-300, 1100),
		geom.V(700, 1100), geom.V(700, 800), geom.V(400, 600))
	must(m.Link(1, 1, hall, 5))
	cellar := mustSector(m,
		geom.V(-400, -400), geom.V(400, -400), geom.V(200, -900), geom.V(-200, -900))
	must(m.Link(0, 3, cellar, 0))
	return m
}

func mustSector(m *Map, corners ...geom.Vec2i) SectorID {
	id, err := m.NewSector(corners...)
	must(err)
	return id
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
