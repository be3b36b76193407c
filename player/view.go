package player

import "math"

// Display is what the widget shows for a State.
type Display struct {
	Title   string
	Artist  string
	Cover   string
	Glyph   string
	Playing bool

	Progress float64
	Elapsed  string
	Total    string

	// Active is the one highlighted playlist entry.
	Active int
	// Volume is the volume control position in [0, 100].
	Volume int
}

func View(s State, pl Playlist) Display {
	d := Display{
		Glyph:    GlyphPlay,
		Playing:  s.Playing,
		Progress: s.Progress,
		Elapsed:  s.Elapsed,
		Total:    s.Total,
		Active:   s.Index,
		Volume:   int(math.Round(s.Volume * 100)),
	}
	if s.Playing {
		d.Glyph = GlyphPause
	}
	if pl.Valid(s.Index) {
		t := pl[s.Index]
		d.Title, d.Artist, d.Cover = t.Title, t.Artist, t.Cover
	}
	return d
}

// NowPlaying is the "Artist – Title" line used for the clipboard.
func (d Display) NowPlaying() string {
	switch {
	case d.Artist == "":
		return d.Title
	case d.Title == "":
		return d.Artist
	}
	return d.Artist + " – " + d.Title
}
