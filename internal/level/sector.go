package level

import (
	"errors"
	"fmt"

	"portalview/internal/geom"
)

// MaxWalls bounds the wall count of a single sector.
const MaxWalls = 8

var (
	ErrTooFewWalls    = errors.New("sector needs at least 3 walls")
	ErrTooManyWalls   = fmt.Errorf("sector exceeds %d walls", MaxWalls)
	ErrDegenerateWall = errors.New("wall has zero length")
	ErrOpenPolygon    = errors.New("walls do not form a closed polygon")
)

// Sector is a convex room bounded by a closed chain of walls.
type Sector struct {
	walls [MaxWalls]Wall
	n     int
}

// Edge is a pair of corners passed to BuildSectorEdges.
type Edge [2]geom.Vec2i

// BuildSector closes the polygon through corners: wall i runs from corner i
// to corner i+1 and the last wall returns to corner 0.
func BuildSector(corners []geom.Vec2i) (Sector, error) {
	edges := make([]Edge, len(corners))
	for i, c := range corners {
		edges[i] = Edge{c, corners[(i+1)%len(corners)]}
	}
	return BuildSectorEdges(edges)
}

// BuildSectorEdges builds a sector from an ordered list of edges. Each edge
// must start where the previous one ended, wrapping around.
func BuildSectorEdges(edges []Edge) (Sector, error) {
	var s Sector
	switch {
	case len(edges) < 3:
		return s, ErrTooFewWalls
	case len(edges) > MaxWalls:
		return s, fmt.Errorf("%w: got %d", ErrTooManyWalls, len(edges))
	}
	for i, e := range edges {
		if e[0] == e[1] {
			return s, fmt.Errorf("wall %d at %v: %w", i, e[0], ErrDegenerateWall)
		}
		next := edges[(i+1)%len(edges)]
		if e[1] != next[0] {
			return s, fmt.Errorf("wall %d ends at %v, wall %d starts at %v: %w",
				i, e[1], (i+1)%len(edges), next[0], ErrOpenPolygon)
		}
		s.walls[i] = newWall(e[0], e[1])
	}
	s.n = len(edges)
	return s, nil
}

// Len reports the number of active walls.
func (s *Sector) Len() int { return s.n }

// Wall returns wall i.
func (s *Sector) Wall(i int) *Wall { return &s.walls[i] }

// Walls returns the active walls. Callers must not modify them.
func (s *Sector) Walls() []Wall { return s.walls[:s.n] }

// Corners returns the polygon's corners in wall order.
func (s *Sector) Corners() []geom.Vec2i {
	out := make([]geom.Vec2i, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = s.walls[i].A
	}
	return out
}

// SignedArea2 returns twice the signed area of the polygon. Sectors the
// renderer accepts have a negative value.
func (s *Sector) SignedArea2() int {
	sum := 0
	for i := 0; i < s.n; i++ {
		sum += s.walls[i].A.Cross(s.walls[i].B)
	}
	return sum
}

// Contains reports whether p lies inside or on the boundary of the sector.
func (s *Sector) Contains(p geom.Vec2i) bool {
	for i := 0; i < s.n; i++ {
		w := &s.walls[i]
		if w.A.Sub(p).Cross(w.B.Sub(p)) > 0 {
			return false
		}
	}
	return s.n > 0
}
