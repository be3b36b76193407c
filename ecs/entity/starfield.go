package entity

import (
	"fmt"

	"github.com/milk9111/hyperspace/ecs"
)

const (
	StarfieldPrefab = "starfield_entity.yaml"
	PlayerPrefab    = "player.yaml"
)

func NewStarfield(w *ecs.World, opts Options) (ecs.Entity, error) {
	ent, err := BuildEntity(w, StarfieldPrefab, opts)
	if err != nil {
		return 0, fmt.Errorf("starfield: %w", err)
	}
	return ent, nil
}

func NewPlayer(w *ecs.World, opts Options) (ecs.Entity, error) {
	ent, err := BuildEntity(w, PlayerPrefab, opts)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return ent, nil
}
