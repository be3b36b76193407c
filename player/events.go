package player

// Event is a message dispatched to Apply. Control input and media
// notifications are both events.
type Event interface {
	event()
}

// LoadTrack switches the source to the track at Index.
type LoadTrack struct{ Index int }

// SelectTrack is a click on a playlist entry.
type SelectTrack struct{ Index int }

// TogglePlayPause flips between Stopped and Playing.
type TogglePlayPause struct{}

// Seek is a move of the progress control, Value in [0, 100].
type Seek struct{ Value float64 }

// VolumeChange is a move of the volume control, Value in [0, 100].
type VolumeChange struct{ Value float64 }

// VolumeRestored carries a previously persisted volume fraction.
type VolumeRestored struct{ Fraction float64 }

// MetadataLoaded is sent by the media element once the duration is known.
type MetadataLoaded struct{ Duration float64 }

// TimeUpdate is sent by the media element while playback advances.
type TimeUpdate struct{ Current, Duration float64 }

// Ended is sent by the media element when the source finished playing.
type Ended struct{}

func (LoadTrack) event()       {}
func (SelectTrack) event()     {}
func (TogglePlayPause) event() {}
func (Seek) event()            {}
func (VolumeChange) event()    {}
func (VolumeRestored) event()  {}
func (MetadataLoaded) event()  {}
func (TimeUpdate) event()      {}
func (Ended) event()           {}

// Command is a side effect requested by Apply.
type Command interface {
	command()
}

type SetSource struct{ Src string }

type Play struct{}

type Pause struct{}

type SeekTo struct{ Seconds float64 }

type SetVolume struct{ Fraction float64 }

// SaveVolume persists the fraction under VolumeKey.
type SaveVolume struct{ Fraction float64 }

func (SetSource) command()  {}
func (Play) command()       {}
func (Pause) command()      {}
func (SeekTo) command()     {}
func (SetVolume) command()  {}
func (SaveVolume) command() {}
