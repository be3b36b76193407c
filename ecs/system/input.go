package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
	"github.com/milk9111/hyperspace/player"
)

const (
	seekStepSeconds = 5
	volumeStep      = 5
)

// shortcuts is the set of keyboard actions triggered this tick.
type shortcuts struct {
	Toggle      bool
	SeekBack    bool
	SeekForward bool
	VolumeUp    bool
	VolumeDown  bool
	Next        bool
	Copy        bool
}

func (s shortcuts) any() bool {
	return s != shortcuts{}
}

func readShortcuts() shortcuts {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	return shortcuts{
		Toggle:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		SeekBack:    inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		SeekForward: inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		VolumeUp:    inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		VolumeDown:  inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Next:        inpututil.IsKeyJustPressed(ebiten.KeyN),
		Copy:        ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
}

// InputSystem turns keyboard shortcuts into player and clipboard requests.
// They go through the same events as the on-screen controls.
type InputSystem struct {
	read func() shortcuts
}

func NewInputSystem() *InputSystem {
	return &InputSystem{read: readShortcuts}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	keys := i.read()
	if !keys.any() {
		return
	}

	ent, pl, ok := ecs.Single(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	for _, ev := range shortcutEvents(keys, pl.State, pl.Playlist) {
		RequestPlayerEvent(w, ev)
	}
	if keys.Copy {
		if view, ok := ecs.Get(w, ent, component.PlayerViewComponent.Kind()); ok {
			RequestClipboard(w, view.Display.NowPlaying())
		}
	}
}

func shortcutEvents(keys shortcuts, s player.State, pl player.Playlist) []player.Event {
	var evs []player.Event
	if keys.Toggle {
		evs = append(evs, player.TogglePlayPause{})
	}
	if (keys.SeekBack || keys.SeekForward) && s.Duration > 0 {
		delta := float64(seekStepSeconds) / s.Duration * 100
		if keys.SeekBack {
			delta = -delta
		}
		evs = append(evs, player.Seek{Value: s.Progress + delta})
	}
	if keys.VolumeUp || keys.VolumeDown {
		step := float64(volumeStep)
		if keys.VolumeDown {
			step = -step
		}
		evs = append(evs, player.VolumeChange{Value: s.Volume*100 + step})
	}
	if keys.Next && pl.Len() > 0 {
		evs = append(evs, player.SelectTrack{Index: pl.Next(s.Index)})
	}
	return evs
}
