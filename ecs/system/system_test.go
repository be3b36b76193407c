package system

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
	"github.com/milk9111/hyperspace/player"
	"github.com/milk9111/hyperspace/prefabs"
	"github.com/milk9111/hyperspace/starfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMedia struct {
	src     string
	playing bool
	volume  float64
	seekTo  float64
	pending []player.Event
}

func (m *fakeMedia) SetSource(src string)       { m.src = src; m.playing = false }
func (m *fakeMedia) Play()                      { m.playing = true }
func (m *fakeMedia) Pause()                     { m.playing = false }
func (m *fakeMedia) SetCurrentTime(s float64)   { m.seekTo = s }
func (m *fakeMedia) SetVolume(fraction float64) { m.volume = fraction }
func (m *fakeMedia) Poll() []player.Event {
	evs := m.pending
	m.pending = nil
	return evs
}

type memStore map[string]string

func (s memStore) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

func (s memStore) Set(key, value string) error {
	s[key] = value
	return nil
}

var testPlaylist = player.Playlist{
	{Title: "One", Artist: "A", Src: "one.mp3"},
	{Title: "Two", Artist: "B", Src: "two.mp3"},
	{Title: "Three", Artist: "C", Src: "three.mp3"},
}

func newPlayerWorld(t *testing.T, m *fakeMedia, st memStore) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Playlist: testPlaylist,
		State:    player.NewState(),
		Media:    m,
		Store:    st,
	}))
	require.NoError(t, ecs.Add(w, e, component.PlayerStartupComponent.Kind(), &component.PlayerStartup{}))
	require.NoError(t, ecs.Add(w, e, component.PlayerViewComponent.Kind(), &component.PlayerView{}))
	return w, e
}

func viewOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.PlayerView {
	t.Helper()
	view, ok := ecs.Get(w, e, component.PlayerViewComponent.Kind())
	require.True(t, ok)
	return view
}

func TestPlayerSystemStartup(t *testing.T) {
	m := &fakeMedia{}
	w, e := newPlayerWorld(t, m, memStore{player.VolumeKey: "0.5"})

	NewPlayerSystem().Update(w)

	assert.Equal(t, "one.mp3", m.src)
	assert.Equal(t, 0.5, m.volume)
	assert.False(t, m.playing)

	view := viewOf(t, w, e)
	assert.Equal(t, uint64(1), view.Revision)
	assert.Equal(t, 50, view.Display.Volume)
	assert.Equal(t, player.GlyphPlay, view.Display.Glyph)
	assert.Equal(t, "One", view.Display.Title)
	assert.Equal(t, 0, view.Display.Active)

	assert.False(t, ecs.Has(w, e, component.PlayerStartupComponent.Kind()))
	m.src = ""
	NewPlayerSystem().Update(w)
	assert.Empty(t, m.src, "startup runs once per marker")
}

func TestPlayerSystemAppliesRequests(t *testing.T) {
	m := &fakeMedia{}
	st := memStore{}
	w, e := newPlayerWorld(t, m, st)
	sys := NewPlayerSystem()
	sys.Update(w)

	RequestPlayerEvent(w, player.TogglePlayPause{})
	RequestPlayerEvent(w, player.VolumeChange{Value: 50})
	sys.Update(w)

	assert.True(t, m.playing)
	assert.Equal(t, 0.5, m.volume)
	assert.Equal(t, "0.5", st[player.VolumeKey])
	assert.Equal(t, player.GlyphPause, viewOf(t, w, e).Display.Glyph)
	assert.Equal(t, uint64(2), viewOf(t, w, e).Revision)

	_, pending := ecs.First(w, component.PlayerEventComponent.Kind())
	assert.False(t, pending, "requests are consumed")
	assert.Len(t, ecs.Entities(w), 1)

	sys.Update(w)
	assert.Equal(t, uint64(2), viewOf(t, w, e).Revision, "unchanged display keeps its revision")
}

func TestPlayerSystemMediaNotifications(t *testing.T) {
	m := &fakeMedia{}
	w, e := newPlayerWorld(t, m, memStore{})
	sys := NewPlayerSystem()
	sys.Update(w)

	RequestPlayerEvent(w, player.SelectTrack{Index: 2})
	RequestPlayerEvent(w, player.TogglePlayPause{})
	sys.Update(w)
	require.Equal(t, "three.mp3", m.src)

	m.pending = []player.Event{player.MetadataLoaded{Duration: 65}, player.TimeUpdate{Current: 13, Duration: 65}}
	sys.Update(w)
	view := viewOf(t, w, e)
	assert.Equal(t, "1:05", view.Display.Total)
	assert.Equal(t, "0:13", view.Display.Elapsed)
	assert.InDelta(t, 20, view.Display.Progress, 1e-9)

	m.pending = []player.Event{player.Ended{}}
	sys.Update(w)
	assert.Equal(t, "one.mp3", m.src, "last track wraps to the first")
	assert.True(t, m.playing)
	assert.Equal(t, 0, viewOf(t, w, e).Display.Active)
}

func TestPlayerSystemSelectionWinsOverStaleNotifications(t *testing.T) {
	m := &fakeMedia{}
	w, e := newPlayerWorld(t, m, memStore{})
	sys := NewPlayerSystem()
	sys.Update(w)
	RequestPlayerEvent(w, player.TogglePlayPause{})
	sys.Update(w)

	m.pending = []player.Event{player.Ended{}}
	RequestPlayerEvent(w, player.SelectTrack{Index: 2})
	sys.Update(w)
	assert.Equal(t, "three.mp3", m.src)
	assert.True(t, m.playing)
	assert.Equal(t, 2, viewOf(t, w, e).Display.Active)

	m.pending = []player.Event{player.TimeUpdate{Current: 30, Duration: 60}}
	RequestPlayerEvent(w, player.SelectTrack{Index: 1})
	sys.Update(w)
	view := viewOf(t, w, e)
	assert.Equal(t, "two.mp3", m.src)
	assert.Equal(t, "0:00", view.Display.Elapsed)
	assert.Zero(t, view.Display.Progress)

	_, pl, ok := ecs.Single(w, component.PlayerComponent.Kind())
	require.True(t, ok)
	assert.True(t, math.IsNaN(pl.State.Duration), "old track's duration does not leak into the new one")
}

func TestPlayerSystemWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	RequestPlayerEvent(w, player.TogglePlayPause{})
	NewPlayerSystem().Update(w)
	assert.Empty(t, ecs.Entities(w))
}

func TestShortcutEvents(t *testing.T) {
	s := player.NewState()
	s.Index = 2
	s.Volume = 0.5

	assert.Empty(t, shortcutEvents(shortcuts{SeekForward: true}, s, testPlaylist), "no seeking without a duration")

	s.Duration = 100
	s.Progress = 50
	tests := []struct {
		name string
		keys shortcuts
		want []player.Event
	}{
		{"toggle", shortcuts{Toggle: true}, []player.Event{player.TogglePlayPause{}}},
		{"seek_forward", shortcuts{SeekForward: true}, []player.Event{player.Seek{Value: 55}}},
		{"seek_back", shortcuts{SeekBack: true}, []player.Event{player.Seek{Value: 45}}},
		{"volume_up", shortcuts{VolumeUp: true}, []player.Event{player.VolumeChange{Value: 55}}},
		{"volume_down", shortcuts{VolumeDown: true}, []player.Event{player.VolumeChange{Value: 45}}},
		{"next_wraps", shortcuts{Next: true}, []player.Event{player.SelectTrack{Index: 0}}},
		{"copy_only", shortcuts{Copy: true}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shortcutEvents(tt.keys, s, testPlaylist))
		})
	}
}

func TestInputSystemQueuesRequests(t *testing.T) {
	m := &fakeMedia{}
	w, _ := newPlayerWorld(t, m, memStore{})
	NewPlayerSystem().Update(w)

	in := &InputSystem{read: func() shortcuts { return shortcuts{Toggle: true, Copy: true} }}
	in.Update(w)

	_, ev, ok := ecs.Single(w, component.PlayerEventComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, player.TogglePlayPause{}, ev.Event)

	_, clip, ok := ecs.Single(w, component.ClipboardRequestComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "A – One", clip.Text)

	idle := &InputSystem{read: func() shortcuts { return shortcuts{} }}
	before := len(ecs.Entities(w))
	idle.Update(w)
	assert.Len(t, ecs.Entities(w), before)
}

type fakeClipboard struct {
	writes []string
	err    error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

func TestClipboardSystem(t *testing.T) {
	w := ecs.NewWorld()
	cb := &fakeClipboard{}
	sys := NewClipboardSystem(cb)

	RequestClipboard(w, "first")
	RequestClipboard(w, "second")
	RequestClipboard(w, "")
	sys.Update(w)
	assert.Equal(t, []string{"second"}, cb.writes)
	assert.Empty(t, ecs.Entities(w))

	cb.err = errors.New("no display")
	RequestClipboard(w, "third")
	sys.Update(w)
	cb.err = nil
	RequestClipboard(w, "fourth")
	sys.Update(w)
	assert.Equal(t, []string{"second"}, cb.writes, "disabled after the first failure")
	assert.Empty(t, ecs.Entities(w))
}

func newStarfieldWorld(t *testing.T, width, height int) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	field := starfield.NewField(starfield.DefaultSpec(), float64(width), float64(height), rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, ecs.Add(w, e, component.SurfaceComponent.Kind(), &component.Surface{Width: width, Height: height}))
	require.NoError(t, ecs.Add(w, e, component.StarfieldComponent.Kind(), &component.Starfield{Field: field}))
	return w, e
}

func TestStarfieldSystemStepsAndRebuilds(t *testing.T) {
	w, e := newStarfieldWorld(t, 800, 600)
	sys := NewStarfieldSystem(rand.New(rand.NewPCG(3, 4)))

	sys.Update(w)
	sys.Update(w)
	sf, ok := ecs.Get(w, e, component.StarfieldComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 2, sf.Frames)
	assert.Len(t, sf.Field.Stars, 150)

	spec := starfield.DefaultSpec()
	spec.Count = 20
	RequestStarfieldRebuild(w, spec)
	sys.Update(w)
	assert.Len(t, sf.Field.Stars, 20)
	assert.Equal(t, 1, sf.Frames)
	assert.Equal(t, 800.0, sf.Field.Width)
	assert.Equal(t, 600.0, sf.Field.Height)
	assert.Len(t, ecs.Entities(w), 1)
}

func TestSurfaceSystemResizes(t *testing.T) {
	w, e := newStarfieldWorld(t, 800, 600)
	width, height := 800, 600
	canvases := 0
	sys := &SurfaceSystem{
		size: func() (int, int) { return width, height },
		newCanvas: func(int, int) *ebiten.Image {
			canvases++
			return nil
		},
	}

	sf, _ := ecs.Get(w, e, component.StarfieldComponent.Kind())
	before := sf.Field.Stars[0].Pos

	width, height = 1024, 768
	sys.Update(w)

	surface, _ := ecs.Get(w, e, component.SurfaceComponent.Kind())
	assert.Equal(t, component.Surface{Width: 1024, Height: 768}, *surface)
	assert.Equal(t, 1024.0, sf.Field.Width)
	assert.Equal(t, 768.0, sf.Field.Height)
	assert.Equal(t, before, sf.Field.Stars[0].Pos, "positions are not rescaled")
	assert.Equal(t, 1, canvases)

	width, height = 0, 0
	sys.Update(w)
	assert.Equal(t, component.Surface{Width: 1024, Height: 768}, *surface, "minimized windows are ignored")
}

type fakeChanges struct {
	names []string
	errs  []error
}

func (c *fakeChanges) Drain() ([]string, []error) {
	names, errs := c.names, c.errs
	c.names, c.errs = nil, nil
	return names, errs
}

func TestReloadSystem(t *testing.T) {
	w, e := newStarfieldWorld(t, 320, 200)
	sf, _ := ecs.Get(w, e, component.StarfieldComponent.Kind())
	sf.Source = prefabs.StarfieldComponentSpec{Spec: "prefabs/calm.yaml", Count: 30}

	changes := &fakeChanges{names: []string{"player.yaml", "starfield.yaml"}, errs: []error{errors.New("overflow")}}
	var loaded []prefabs.StarfieldComponentSpec
	sys := &ReloadSystem{
		changes: changes,
		load: func(c prefabs.StarfieldComponentSpec) (starfield.Spec, error) {
			loaded = append(loaded, c)
			spec := starfield.DefaultSpec()
			if c.Count > 0 {
				spec.Count = c.Count
			}
			return spec, nil
		},
	}

	sys.Update(w)
	assert.Empty(t, loaded, "only the tuning file the prefab names triggers a rebuild")
	assert.Len(t, ecs.Entities(w), 1)

	changes.names = []string{"calm.yaml"}
	sys.Update(w)
	require.Len(t, loaded, 1)
	assert.Equal(t, sf.Source, loaded[0])
	_, req, ok := ecs.Single(w, component.StarfieldRebuildRequestComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 30, req.Spec.Count, "the prefab's count survives a reload")
	consumeRequests(w, component.StarfieldRebuildRequestComponent.Kind())

	sys.Stars = 42
	changes.names = []string{"calm.yaml"}
	sys.Update(w)
	_, req, ok = ecs.Single(w, component.StarfieldRebuildRequestComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 42, req.Spec.Count)
	consumeRequests(w, component.StarfieldRebuildRequestComponent.Kind())

	sys.load = func(prefabs.StarfieldComponentSpec) (starfield.Spec, error) {
		return starfield.Spec{}, errors.New("bad yaml")
	}
	changes.names = []string{"calm.yaml"}
	sys.Update(w)
	assert.Len(t, ecs.Entities(w), 1, "a failed reload requests nothing")
}

type fakePanel struct {
	synced  []player.Display
	updates int
}

func (p *fakePanel) Sync(d player.Display) { p.synced = append(p.synced, d) }
func (p *fakePanel) Update()               { p.updates++ }
func (p *fakePanel) Draw(*ebiten.Image)    {}

func TestUISystemSyncsOnRevision(t *testing.T) {
	m := &fakeMedia{}
	w, _ := newPlayerWorld(t, m, memStore{})
	players := NewPlayerSystem()
	panel := &fakePanel{}
	ui := NewUISystem(panel)

	players.Update(w)
	ui.Update(w)
	ui.Update(w)
	require.Len(t, panel.synced, 1)
	assert.Equal(t, 2, panel.updates)

	RequestPlayerEvent(w, player.TogglePlayPause{})
	players.Update(w)
	ui.Update(w)
	require.Len(t, panel.synced, 2)
	assert.True(t, panel.synced[1].Playing)
}

func TestDebugText(t *testing.T) {
	w, _ := newStarfieldWorld(t, 320, 200)
	text := debugText(w, 60, 60)
	assert.Contains(t, text, "FPS: 60.00")
	assert.Contains(t, text, "Stars: 150")
	assert.NotContains(t, text, "Track:")

	pw, pe := newPlayerWorld(t, &fakeMedia{}, memStore{})
	assert.Contains(t, debugText(pw, 30, 60), "Track: 1/3 stopped")

	pl, _ := ecs.Get(pw, pe, component.PlayerComponent.Kind())
	pl.State.Playing = true
	pl.State.Index = 2
	assert.Contains(t, debugText(pw, 30, 60), "Track: 3/3 playing")
}
