package level

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"portalview/internal/geom"
)

// PortalDefinition links one wall of the enclosing sector to an edge of
// another sector.
type PortalDefinition struct {
	Wall       int `json:"wall"`
	Sector     int `json:"sector"`
	TargetWall int `json:"targetWall"`
}

// SectorDefinition lists a sector's corners in wall order.
type SectorDefinition struct {
	Corners [][2]int           `json:"corners"`
	Portals []PortalDefinition `json:"portals"`
}

// MapDefinition is the on-disk map layout.
type MapDefinition struct {
	Name  string `json:"name"`
	Spawn struct {
		Sector   int `json:"sector"`
		X        int `json:"x"`
		Y        int `json:"y"`
		Rotation int `json:"rotation"`
	} `json:"spawn"`
	Sectors []SectorDefinition `json:"sectors"`
}

// LoadFile reads and validates a JSON map.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer f.Close()
	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Load decodes a JSON map from r, builds it and validates it.
func Load(r io.Reader) (*Map, error) {
	var def MapDefinition
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse map JSON: %w", err)
	}
	m, err := Build(&def)
	if err != nil {
		return nil, err
	}
	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("invalid map %q: %w", m.Name, err)
	}
	return m, nil
}

// Build turns a definition into a Map without validating it.
func Build(def *MapDefinition) (*Map, error) {
	m := &Map{Name: def.Name}
	for i, sd := range def.Sectors {
		corners := make([]geom.Vec2i, len(sd.Corners))
		for j, c := range sd.Corners {
			corners[j] = geom.V(c[0], c[1])
		}
		if _, err := m.NewSector(corners...); err != nil {
			return nil, fmt.Errorf("sector %d: %w", i, err)
		}
	}
	for i, sd := range def.Sectors {
		for _, p := range sd.Portals {
			if err := m.LinkPortal(SectorID(i), p.Wall, SectorID(p.Sector), p.TargetWall); err != nil {
				return nil, err
			}
		}
	}
	m.Spawn = Spawn{
		Sector:   SectorID(def.Spawn.Sector),
		Position: geom.V(def.Spawn.X, def.Spawn.Y),
		Rotation: geom.WrapDegrees(def.Spawn.Rotation),
	}
	return m, nil
}
