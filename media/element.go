package media

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/hyperspace/player"
)

// DefaultSampleRate is the rate the shared audio context runs at.
const DefaultSampleRate = 44100

// endEpsilon tolerates the mixer stopping a few samples before Length.
const endEpsilon = 0.05

// Loader fetches the raw bytes of an audio source.
type Loader func(src string) ([]byte, error)

// Element is a single-source media element on top of an ebiten audio context,
// in the spirit of an HTML audio element: one source at a time, play/pause,
// seekable position, and notifications drained through Poll.
type Element struct {
	ctx  *audio.Context
	load Loader

	src      string
	player   *audio.Player
	duration float64
	volume   float64

	// wantPlay is true between Play and Pause/end. It tells a natural end of
	// the stream apart from a pause.
	wantPlay     bool
	metaPending  bool
	lastReported float64
}

var _ player.Media = (*Element)(nil)

func NewElement(ctx *audio.Context, load Loader) *Element {
	return &Element{
		ctx:          ctx,
		load:         load,
		duration:     math.NaN(),
		volume:       1,
		lastReported: -1,
	}
}

// SetSource drops the current source and prepares src. Playback state is not
// carried over; call Play to start the new source. Load failures are logged
// and leave the element without a source.
func (e *Element) SetSource(src string) {
	e.closePlayer()
	e.src = src
	e.duration = math.NaN()
	e.metaPending = false
	e.wantPlay = false
	e.lastReported = -1

	data, err := e.load(src)
	if err != nil {
		log.Printf("media: load %q: %v", src, err)
		return
	}
	s, err := decode(src, data, e.ctx.SampleRate())
	if err != nil {
		log.Printf("media: %v", err)
		return
	}
	p, err := e.ctx.NewPlayer(s)
	if err != nil {
		log.Printf("media: new player %q: %v", src, err)
		return
	}
	p.SetVolume(e.volume)
	e.player = p
	e.duration = lengthSeconds(s.Length(), e.ctx.SampleRate())
	e.metaPending = true
}

func (e *Element) Play() {
	if e.player == nil {
		return
	}
	if e.ended() {
		e.seek(0)
	}
	e.player.Play()
	e.wantPlay = true
}

func (e *Element) Pause() {
	e.wantPlay = false
	if e.player != nil {
		e.player.Pause()
	}
}

// CurrentTime is the playback position in seconds.
func (e *Element) CurrentTime() float64 {
	if e.player == nil {
		return 0
	}
	return e.player.Position().Seconds()
}

func (e *Element) SetCurrentTime(seconds float64) {
	if e.player == nil || math.IsNaN(seconds) {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	if seconds > e.duration {
		seconds = e.duration
	}
	e.seek(seconds)
}

// Duration is NaN while no source is decoded.
func (e *Element) Duration() float64 { return e.duration }

func (e *Element) SetVolume(fraction float64) {
	e.volume = math.Max(0, math.Min(1, fraction))
	if e.player != nil {
		e.player.SetVolume(e.volume)
	}
}

// Poll reports what happened since the previous call, in the order an HTML
// media element would: metadata first, then time updates, then the end.
func (e *Element) Poll() []player.Event {
	if e.player == nil {
		return nil
	}
	var evs []player.Event
	if e.metaPending {
		e.metaPending = false
		evs = append(evs, player.MetadataLoaded{Duration: e.duration})
	}

	now := e.CurrentTime()
	if now != e.lastReported {
		e.lastReported = now
		evs = append(evs, player.TimeUpdate{Current: now, Duration: e.duration})
	}

	if e.wantPlay && !e.player.IsPlaying() && e.ended() {
		e.wantPlay = false
		evs = append(evs, player.Ended{})
	}
	return evs
}

// Close releases the current source.
func (e *Element) Close() error {
	return e.closePlayer()
}

func (e *Element) ended() bool {
	return e.player != nil && !math.IsNaN(e.duration) && e.CurrentTime() >= e.duration-endEpsilon
}

func (e *Element) seek(seconds float64) {
	if err := e.player.SetPosition(time.Duration(seconds * float64(time.Second))); err != nil {
		log.Printf("media: seek %q to %.2fs: %v", e.src, seconds, err)
	}
}

func (e *Element) closePlayer() error {
	if e.player == nil {
		return nil
	}
	p := e.player
	e.player = nil
	p.Pause()
	return p.Close()
}
