package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/hyperspace/assets"
	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/entity"
	"github.com/milk9111/hyperspace/ecs/system"
	"github.com/milk9111/hyperspace/media"
	"github.com/milk9111/hyperspace/player"
	"github.com/milk9111/hyperspace/prefabs"
	"github.com/milk9111/hyperspace/settings"
	"github.com/milk9111/hyperspace/ui"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	world *ecs.World

	width  int
	height int

	element *media.Element
	watcher *prefabs.Watcher
}

func NewGame(cfg Config) (*Game, error) {
	playlist, err := prefabs.LoadPlaylist(cfg.Playlist)
	if err != nil {
		return nil, err
	}

	var store player.Store
	if st, err := openSettings(cfg.Settings); err != nil {
		log.Printf("settings: %v; volume will not be remembered", err)
	} else {
		store = st
	}

	library := assets.NewDirLibrary(cfg.MediaDir)
	element := media.NewElement(audio.NewContext(media.DefaultSampleRate), library.LoadAudio)

	g := &Game{
		world:   ecs.NewWorld(),
		width:   baseWidth,
		height:  baseHeight,
		element: element,
	}
	if w, h := ebiten.WindowSize(); w > 0 && h > 0 {
		g.width, g.height = w, h
	}

	opts := entity.Options{
		Width:    g.width,
		Height:   g.height,
		Stars:    cfg.Stars,
		Media:    element,
		Store:    store,
		Playlist: playlist,
	}
	if _, err := entity.NewStarfield(g.world, opts); err != nil {
		return nil, err
	}
	if _, err := entity.NewPlayer(g.world, opts); err != nil {
		return nil, err
	}

	face, err := ui.NewFace(14)
	if err != nil {
		return nil, err
	}
	panel := ui.NewPlayerPanel(playlist, face, library.Image, func(ev player.Event) {
		system.RequestPlayerEvent(g.world, ev)
	})

	g.world.AddSystem(system.NewSurfaceSystem(g.surfaceSize))
	if cfg.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = watcher
			reload := system.NewReloadSystem(watcher)
			reload.Stars = cfg.Stars
			g.world.AddSystem(reload)
		}
	}
	g.world.AddSystem(system.NewStarfieldSystem(nil))
	g.world.AddSystem(system.NewInputSystem())
	g.world.AddSystem(system.NewUISystem(panel))
	g.world.AddSystem(system.NewPlayerSystem())
	g.world.AddSystem(system.NewClipboardSystem(system.NewSystemClipboard()))
	if cfg.Debug {
		g.world.AddSystem(system.NewDebugSystem())
	}

	return g, nil
}

func openSettings(path string) (*settings.Store, error) {
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return settings.Open(path)
}

func (g *Game) surfaceSize() (int, int) {
	return g.width, g.height
}

func (g *Game) Update() error {
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
}

// Layout makes the surface follow the window one to one.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("prefabs: close watcher: %w", err))
		}
	}
	if g.element != nil {
		if err := g.element.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
