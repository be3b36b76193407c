package entity

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
	"github.com/milk9111/hyperspace/player"
	"github.com/milk9111/hyperspace/prefabs"
	"github.com/milk9111/hyperspace/starfield"
)

// Options carries the runtime dependencies a prefab cannot describe.
type Options struct {
	Width  int
	Height int
	Rand   *rand.Rand
	// Stars overrides the star count of the tuning file when positive.
	Stars int

	Media player.Media
	Store player.Store
	// Playlist replaces the prefab's playlist when not empty.
	Playlist player.Playlist
}

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
	Options
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"surface":     addSurface,
	"starfield":   addStarfield,
	"player":         addPlayer,
	"player_startup": addPlayerStartup,
	"player_view":    addPlayerView,
}

var componentBuildOrder = []string{
	"surface",
	"starfield",
	"player",
	"player_startup",
	"player_view",
}

func BuildEntity(w *ecs.World, prefabPath string, opts Options) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, prefabPath, spec, opts)
}

func buildFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec, opts Options) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Options: opts}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	order := append([]string(nil), componentBuildOrder...)
	extra := make([]string, 0)
	for name := range remaining {
		if !contains(componentBuildOrder, name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	for _, name := range order {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func addSurface(w *ecs.World, e ecs.Entity, _ any, ctx *buildContext) error {
	return ecs.Add(w, e, component.SurfaceComponent.Kind(), &component.Surface{Width: ctx.Width, Height: ctx.Height})
}

type starfieldSpec = prefabs.StarfieldComponentSpec

func addStarfield(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[starfieldSpec](raw)
	if err != nil {
		return fmt.Errorf("decode starfield spec: %w", err)
	}
	fieldSpec, err := spec.Load()
	if err != nil {
		return err
	}
	if ctx.Stars > 0 {
		fieldSpec.Count = ctx.Stars
	}
	field := starfield.NewField(fieldSpec, float64(ctx.Width), float64(ctx.Height), ctx.Rand)
	return ecs.Add(w, e, component.StarfieldComponent.Kind(), &component.Starfield{Field: field, Source: spec})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	playlist := ctx.Playlist
	if len(playlist) == 0 {
		name := spec.Playlist
		if name == "" {
			name = prefabs.PlaylistFile
		}
		playlist, err = prefabs.LoadPlaylistPrefab(name)
		if err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Playlist: playlist,
		State:    player.NewState(),
		Media:    ctx.Media,
		Store:    ctx.Store,
	})
}

func addPlayerStartup(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerStartupComponent.Kind(), &component.PlayerStartup{})
}

func addPlayerView(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerViewComponent.Kind(), &component.PlayerView{})
}
