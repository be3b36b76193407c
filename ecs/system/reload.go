package system

import (
	"log"
	"path/filepath"

	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
	"github.com/milk9111/hyperspace/prefabs"
	"github.com/milk9111/hyperspace/starfield"
)

// ChangeSource reports changed prefab files since the last call.
type ChangeSource interface {
	Drain() ([]string, []error)
}

// ReloadSystem rebuilds a starfield when the tuning file its prefab names
// changes on disk.
type ReloadSystem struct {
	changes ChangeSource
	load    func(prefabs.StarfieldComponentSpec) (starfield.Spec, error)
	// Stars overrides the star count of reloaded specs when positive.
	Stars int
}

func NewReloadSystem(changes ChangeSource) *ReloadSystem {
	return &ReloadSystem{changes: changes, load: prefabs.StarfieldComponentSpec.Load}
}

func (r *ReloadSystem) Update(w *ecs.World) {
	if w == nil || r.changes == nil {
		return
	}
	names, errs := r.changes.Drain()
	for _, err := range errs {
		log.Printf("prefabs: watch: %v", err)
	}
	if len(names) == 0 {
		return
	}
	changed := make(map[string]bool, len(names))
	for _, name := range names {
		changed[name] = true
	}

	ecs.ForEach(w, component.StarfieldComponent.Kind(), func(_ ecs.Entity, sf *component.Starfield) {
		name := filepath.Base(sf.Source.File())
		if !changed[name] {
			return
		}
		spec, err := r.load(sf.Source)
		if err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		if r.Stars > 0 {
			spec.Count = r.Stars
		}
		log.Printf("prefabs: reloaded %s (%d stars)", name, spec.Count)
		RequestStarfieldRebuild(w, spec)
	})
}
