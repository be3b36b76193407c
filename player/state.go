package player

import "math"

// Status is the playback state of the current track.
type Status int

const (
	Stopped Status = iota
	Playing
)

func (s Status) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Affordance glyphs on the play/pause control: it offers the action that a
// click would perform. Both are in the goregular character set.
const (
	GlyphPlay  = "►"
	GlyphPause = "||"
)

// State is everything the player remembers between events. It is a plain
// value; Apply returns a new one.
type State struct {
	Index   int
	Playing bool
	Volume  float64

	// Duration is NaN until the media element reports it.
	Duration float64
	Progress float64
	Elapsed  string
	Total    string
}

// NewState returns the state before any track is loaded.
func NewState() State {
	return State{
		Volume:   1,
		Duration: math.NaN(),
		Elapsed:  FormatTime(0),
		Total:    FormatTime(0),
	}
}

func (s State) Status() Status {
	if s.Playing {
		return Playing
	}
	return Stopped
}

// Apply is the player's transition function. It never touches the media
// element or the store itself; the returned commands describe what to do.
func Apply(s State, pl Playlist, ev Event) (State, []Command) {
	switch ev := ev.(type) {
	case LoadTrack:
		return load(s, pl, ev.Index)
	case SelectTrack:
		return load(s, pl, ev.Index)
	case Ended:
		return load(s, pl, pl.Next(s.Index))
	case TogglePlayPause:
		s.Playing = !s.Playing
		if s.Playing {
			return s, []Command{Play{}}
		}
		return s, []Command{Pause{}}
	case MetadataLoaded:
		s.Duration = ev.Duration
		s.Total = FormatTime(ev.Duration)
		return s, nil
	case TimeUpdate:
		if !knownDuration(ev.Duration) {
			return s, nil
		}
		s.Duration = ev.Duration
		s.Progress = clamp(ev.Current/ev.Duration*100, 0, 100)
		s.Elapsed = FormatTime(ev.Current)
		s.Total = FormatTime(ev.Duration)
		return s, nil
	case Seek:
		if !knownDuration(s.Duration) {
			return s, nil
		}
		value := clamp(ev.Value, 0, 100)
		at := value / 100 * s.Duration
		s.Progress = value
		s.Elapsed = FormatTime(at)
		return s, []Command{SeekTo{Seconds: at}}
	case VolumeChange:
		s.Volume = clamp(ev.Value/100, 0, 1)
		return s, []Command{SetVolume{Fraction: s.Volume}, SaveVolume{Fraction: s.Volume}}
	case VolumeRestored:
		s.Volume = clamp(ev.Fraction, 0, 1)
		return s, []Command{SetVolume{Fraction: s.Volume}}
	}
	return s, nil
}

func load(s State, pl Playlist, index int) (State, []Command) {
	if !pl.Valid(index) {
		return s, nil
	}
	s.Index = index
	s.Duration = math.NaN()
	s.Progress = 0
	s.Elapsed = FormatTime(0)

	cmds := []Command{SetSource{Src: pl[index].Src}}
	if s.Playing {
		cmds = append(cmds, Play{})
	}
	return s, cmds
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
