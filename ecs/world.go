package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hyperspace/ecs/component"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// Drawer is implemented by systems that also paint to the screen.
type Drawer interface {
	Draw(w *World, screen *ebiten.Image)
}

// World owns entities, component stores and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// AddSystem appends s to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Systems returns a copy of the update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return append([]System(nil), w.systems...)
}

// Update runs every system once, in insertion order.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Draw calls every system that implements Drawer, in insertion order.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range w.systems {
		if d, ok := s.(Drawer); ok {
			d.Draw(w, screen)
		}
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
