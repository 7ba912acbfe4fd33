package level

import (
	"errors"
	"fmt"

	"portalview/internal/geom"
)

// MaxSectors bounds the sector table.
const MaxSectors = 64

var (
	ErrTooManySectors = fmt.Errorf("map exceeds %d sectors", MaxSectors)
	ErrBadSector      = errors.New("sector id out of range")
	ErrBadWall        = errors.New("wall index out of range")
	ErrPortalTaken    = errors.New("wall is already a portal")
)

// Spawn is where a camera starts on a map.
type Spawn struct {
	Sector   SectorID
	Position geom.Vec2i
	Rotation int
}

// Map is the fixed sector table. It is built once and read-only afterwards;
// portals refer to sectors by SectorID.
type Map struct {
	Name  string
	Spawn Spawn

	sectors [MaxSectors]Sector
	n       int
}

// AddSector appends s and returns its id.
func (m *Map) AddSector(s Sector) (SectorID, error) {
	if m.n == MaxSectors {
		return NoSector, ErrTooManySectors
	}
	m.sectors[m.n] = s
	m.n++
	return SectorID(m.n - 1), nil
}

// NewSector builds a sector from corners and appends it.
func (m *Map) NewSector(corners ...geom.Vec2i) (SectorID, error) {
	s, err := BuildSector(corners)
	if err != nil {
		return NoSector, fmt.Errorf("sector %d: %w", m.n, err)
	}
	return m.AddSector(s)
}

// Len reports the number of sectors.
func (m *Map) Len() int { return m.n }

// Valid reports whether id names a sector of m.
func (m *Map) Valid(id SectorID) bool { return id >= 0 && int(id) < m.n }

// Sector returns the sector with the given id. id must be valid.
func (m *Map) Sector(id SectorID) *Sector { return &m.sectors[id] }

// LinkPortal turns wall of sector from into a one-way portal onto edge
// toWall of sector to. The caller keeps the two edges coincident; Validate
// reports when they are not.
func (m *Map) LinkPortal(from SectorID, wall int, to SectorID, toWall int) error {
	if !m.Valid(from) {
		return fmt.Errorf("portal source %d: %w", from, ErrBadSector)
	}
	if !m.Valid(to) {
		return fmt.Errorf("portal target %d: %w", to, ErrBadSector)
	}
	src := m.Sector(from)
	if wall < 0 || wall >= src.Len() {
		return fmt.Errorf("sector %d wall %d: %w", from, wall, ErrBadWall)
	}
	if toWall < 0 || toWall >= m.Sector(to).Len() {
		return fmt.Errorf("sector %d wall %d: %w", to, toWall, ErrBadWall)
	}
	w := src.Wall(wall)
	if w.Portal {
		return fmt.Errorf("sector %d wall %d: %w", from, wall, ErrPortalTaken)
	}
	w.Portal = true
	w.Target = to
	w.TargetWall = toWall
	return nil
}

// Link joins two sectors through a shared edge in both directions.
func (m *Map) Link(a SectorID, aWall int, b SectorID, bWall int) error {
	if err := m.LinkPortal(a, aWall, b, bWall); err != nil {
		return err
	}
	return m.LinkPortal(b, bWall, a, aWall)
}

// Locate returns the first sector containing p, or NoSector.
func (m *Map) Locate(p geom.Vec2i) SectorID {
	for i := 0; i < m.n; i++ {
		if m.sectors[i].Contains(p) {
			return SectorID(i)
		}
	}
	return NoSector
}
