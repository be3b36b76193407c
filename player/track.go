package player

import "errors"

var ErrEmptyPlaylist = errors.New("player: playlist is empty")

// Track is one playable item. Cover and Src are opaque asset paths.
type Track struct {
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
	Cover  string `yaml:"cover"`
	Src    string `yaml:"src"`
}

// Playlist is the fixed, ordered list of tracks known at startup.
type Playlist []Track

func (p Playlist) Len() int { return len(p) }

// Valid reports whether i indexes a track.
func (p Playlist) Valid(i int) bool { return i >= 0 && i < len(p) }

// Next returns the index after i, wrapping to 0 after the last track.
func (p Playlist) Next(i int) int {
	if len(p) == 0 {
		return 0
	}
	return (i + 1) % len(p)
}
