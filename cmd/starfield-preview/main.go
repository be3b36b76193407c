package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hyperspace/prefabs"
	"github.com/milk9111/hyperspace/starfield"
	"github.com/spf13/pflag"
)

type previewGame struct {
	spec   starfield.Spec
	seed   uint64
	field  *starfield.Field
	canvas *ebiten.Image
	size   int
	paused bool
	ticks  int
}

func newPreviewGame(spec starfield.Spec, size int, seed uint64) *previewGame {
	g := &previewGame{spec: spec, seed: seed, size: size}
	g.reset()
	return g
}

func (g *previewGame) rng() *rand.Rand {
	if g.seed == 0 {
		return starfield.NewRand()
	}
	return rand.New(rand.NewPCG(g.seed, g.seed))
}

func (g *previewGame) reset() {
	g.field = starfield.NewField(g.spec, float64(g.size), float64(g.size), g.rng())
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.size, g.size)
	}
	g.canvas.Clear()
	g.ticks = 0
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	step := g.paused && inpututil.IsKeyJustPressed(ebiten.KeyPeriod)
	if g.paused && !step {
		return nil
	}
	starfield.Paint(g.canvas, g.field.Step(1))
	g.ticks++
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)
	status := "running"
	if g.paused {
		status = "paused (. steps)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Stars: %d  Tick: %d  %s\nspace: pause  r: reset", len(g.field.Stars), g.ticks, status))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}

func main() {
	size := pflag.Int("size", 512, "preview surface size in pixels")
	stars := pflag.Int("stars", 0, "override the number of stars")
	seed := pflag.Uint64("seed", 0, "random seed (0 for unseeded)")
	pflag.Parse()

	spec, err := prefabs.LoadStarfieldSpec()
	if err != nil {
		log.Printf("prefabs: %v; using defaults", err)
	}
	if *stars > 0 {
		spec.Count = *stars
	}

	g := newPreviewGame(spec, *size, *seed)
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetWindowTitle("Starfield Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
