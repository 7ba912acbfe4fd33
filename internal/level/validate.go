package level

import (
	"errors"
	"fmt"
)

var (
	ErrWinding     = errors.New("sector is not wound with corner A on the viewer's left")
	ErrConcave     = errors.New("sector is not convex")
	ErrSharedEdge  = errors.New("portal edge does not match its target edge")
	ErrUnreachable = errors.New("sector is unreachable from the spawn sector")
	ErrSpawn       = errors.New("spawn position is outside its sector")
)

// Validate checks the invariants the renderer relies on but never tests at
// runtime: closed chains, winding, convexity, coincident portal edges and
// reachability from the spawn sector. All problems found are joined.
func Validate(m *Map) error {
	var errs []error
	for id := SectorID(0); int(id) < m.Len(); id++ {
		errs = append(errs, validateSector(m, id)...)
	}
	if !m.Valid(m.Spawn.Sector) {
		errs = append(errs, fmt.Errorf("spawn sector %d: %w", m.Spawn.Sector, ErrBadSector))
		return errors.Join(errs...)
	}
	if !m.Sector(m.Spawn.Sector).Contains(m.Spawn.Position) {
		errs = append(errs, fmt.Errorf("%v in sector %d: %w", m.Spawn.Position, m.Spawn.Sector, ErrSpawn))
	}
	seen := reachable(m, m.Spawn.Sector)
	for id := 0; id < m.Len(); id++ {
		if !seen[id] {
			errs = append(errs, fmt.Errorf("sector %d: %w", id, ErrUnreachable))
		}
	}
	return errors.Join(errs...)
}

func validateSector(m *Map, id SectorID) []error {
	var errs []error
	s := m.Sector(id)
	walls := s.Walls()
	if len(walls) < 3 {
		return []error{fmt.Errorf("sector %d: %w", id, ErrTooFewWalls)}
	}
	for i := range walls {
		next := &walls[(i+1)%len(walls)]
		if walls[i].B != next.A {
			errs = append(errs, fmt.Errorf("sector %d wall %d: %w", id, i, ErrOpenPolygon))
		}
		if walls[i].Edge().Cross(next.Edge()) > 0 {
			errs = append(errs, fmt.Errorf("sector %d corner %v: %w", id, walls[i].B, ErrConcave))
		}
	}
	if s.SignedArea2() >= 0 {
		errs = append(errs, fmt.Errorf("sector %d: %w", id, ErrWinding))
	}
	for i := range walls {
		w := &walls[i]
		if !w.Portal {
			continue
		}
		if !m.Valid(w.Target) || w.TargetWall < 0 || w.TargetWall >= m.Sector(w.Target).Len() {
			errs = append(errs, fmt.Errorf("sector %d wall %d -> %d/%d: %w", id, i, w.Target, w.TargetWall, ErrBadWall))
			continue
		}
		t := m.Sector(w.Target).Wall(w.TargetWall)
		if t.A != w.B || t.B != w.A {
			errs = append(errs, fmt.Errorf("sector %d wall %d %v-%v vs sector %d wall %d %v-%v: %w",
				id, i, w.A, w.B, w.Target, w.TargetWall, t.A, t.B, ErrSharedEdge))
		}
	}
	return errs
}

// reachable walks portals breadth first from start.
func reachable(m *Map, start SectorID) []bool {
	seen := make([]bool, m.Len())
	queue := []SectorID{start}
	seen[start] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, w := range m.Sector(id).Walls() {
			if !w.Portal || !m.Valid(w.Target) || seen[w.Target] {
				continue
			}
			seen[w.Target] = true
			queue = append(queue, w.Target)
		}
	}
	return seen
}
