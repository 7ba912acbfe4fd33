package main

import (
	"fmt"
	"log"

	"portalview/internal/level"
)

// loadWorld returns the map named by -map, or the built-in one named by
// -builtin.
func loadWorld(path, builtin string) (*level.Map, error) {
	var (
		m   *level.Map
		err error
	)
	if path != "" {
		m, err = level.LoadFile(path)
	} else {
		m, err = level.Builtin(builtin)
	}
	if err != nil {
		return nil, err
	}
	if err := level.Validate(m); err != nil {
		return nil, fmt.Errorf("map %q: %w", m.Name, err)
	}
	log.Printf("Loaded map %q: %d sectors, spawn in sector %d at %v",
		m.Name, m.Len(), m.Spawn.Sector, m.Spawn.Position)
	return m, nil
}
