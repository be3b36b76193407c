package player

import (
	"errors"
	"fmt"
	"strconv"
)

// VolumeKey is the storage key of the persisted volume fraction.
const VolumeKey = "audioVolume"

// Media is the playback element commands are applied to. Poll drains the
// notifications (MetadataLoaded, TimeUpdate, Ended) raised since the last call.
type Media interface {
	SetSource(src string)
	Play()
	Pause()
	SetCurrentTime(seconds float64)
	SetVolume(fraction float64)
	Poll() []Event
}

// Store is a durable string key-value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Execute applies cmds in order. Media commands cannot fail; store failures
// are collected and returned after every command ran.
func Execute(cmds []Command, m Media, st Store) error {
	var errs []error
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case SetSource:
			if m != nil {
				m.SetSource(c.Src)
			}
		case Play:
			if m != nil {
				m.Play()
			}
		case Pause:
			if m != nil {
				m.Pause()
			}
		case SeekTo:
			if m != nil {
				m.SetCurrentTime(c.Seconds)
			}
		case SetVolume:
			if m != nil {
				m.SetVolume(c.Fraction)
			}
		case SaveVolume:
			if st == nil {
				continue
			}
			if err := st.Set(VolumeKey, FormatVolume(c.Fraction)); err != nil {
				errs = append(errs, fmt.Errorf("player: save volume: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

func FormatVolume(fraction float64) string {
	return strconv.FormatFloat(fraction, 'f', -1, 64)
}

// RestoreVolume reads the persisted fraction. It reports false when nothing
// usable is stored.
func RestoreVolume(st Store) (float64, bool) {
	if st == nil {
		return 0, false
	}
	raw, ok := st.Get(VolumeKey)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return clamp(v, 0, 1), true
}

// Startup returns the events that bring a fresh player to its initial state:
// the restored volume, if any, then track 0 loaded and stopped.
func Startup(st Store) []Event {
	var evs []Event
	if v, ok := RestoreVolume(st); ok {
		evs = append(evs, VolumeRestored{Fraction: v})
	}
	return append(evs, LoadTrack{Index: 0})
}
