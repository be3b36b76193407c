package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/hyperspace/player"
	"github.com/milk9111/hyperspace/starfield"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec[T](filename, data)
}

func decodeSpec[T any](name string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

// StarfieldSpec is the YAML form of starfield.Spec. Zero fields keep the
// built-in defaults.
type StarfieldSpec struct {
	Count           int       `yaml:"count"`
	Speed           RangeSpec `yaml:"speed"`
	Size            RangeSpec `yaml:"size"`
	Trail           IntRange  `yaml:"trail"`
	SpeedMultiplier float64   `yaml:"speed_multiplier"`
	Background      string    `yaml:"background"`
	TrailAlpha      float64   `yaml:"trail_alpha"`
	TrailScale      float64   `yaml:"trail_scale"`
	Glow            GlowSpec  `yaml:"glow"`
}

type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type GlowSpec struct {
	Threshold float64 `yaml:"threshold"`
	Scale     float64 `yaml:"scale"`
	Alpha     float64 `yaml:"alpha"`
}

// Starfield converts the YAML spec into renderer tuning.
func (s StarfieldSpec) Starfield() (starfield.Spec, error) {
	out := starfield.DefaultSpec()
	if s.Count > 0 {
		out.Count = s.Count
	}
	if s.Speed.Max > 0 {
		out.MinSpeed, out.MaxSpeed = s.Speed.Min, s.Speed.Max
	}
	if s.Size.Max > 0 {
		out.MinSize, out.MaxSize = s.Size.Min, s.Size.Max
	}
	if s.Trail.Max > 0 {
		out.MinTrail, out.MaxTrail = s.Trail.Min, s.Trail.Max
	}
	if s.SpeedMultiplier > 0 {
		out.SpeedMultiplier = s.SpeedMultiplier
	}
	if s.Background != "" {
		c, err := ParseColor(s.Background)
		if err != nil {
			return out, fmt.Errorf("prefabs: starfield background: %w", err)
		}
		out.Background = c
	}
	if s.TrailAlpha > 0 {
		out.TrailAlpha = s.TrailAlpha
	}
	if s.TrailScale > 0 {
		out.TrailScale = s.TrailScale
	}
	if s.Glow.Threshold > 0 {
		out.GlowThreshold = s.Glow.Threshold
	}
	if s.Glow.Scale > 0 {
		out.GlowScale = s.Glow.Scale
	}
	if s.Glow.Alpha > 0 {
		out.GlowAlpha = s.Glow.Alpha
	}
	return out, nil
}

const StarfieldFile = "starfield.yaml"

func LoadStarfieldSpec() (starfield.Spec, error) {
	spec, err := LoadSpec[StarfieldSpec](StarfieldFile)
	if err != nil {
		return starfield.DefaultSpec(), err
	}
	return spec.Starfield()
}

// PlaylistSpec is the on-disk playlist.
type PlaylistSpec struct {
	Tracks []player.Track `yaml:"tracks"`
}

const PlaylistFile = "playlist.yaml"

// LoadPlaylist reads the playlist at path, or the embedded default when path
// is empty. An empty playlist is an error.
func LoadPlaylist(path string) (player.Playlist, error) {
	if path == "" {
		return LoadPlaylistPrefab(PlaylistFile)
	}
	data, err := LoadFile(path, PlaylistFile)
	if err != nil {
		return nil, err
	}
	return decodePlaylist(path, data)
}

// LoadPlaylistPrefab reads a playlist shipped with the prefabs.
func LoadPlaylistPrefab(name string) (player.Playlist, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	return decodePlaylist(name, data)
}

func decodePlaylist(name string, data []byte) (player.Playlist, error) {
	spec, err := decodeSpec[PlaylistSpec](name, data)
	if err != nil {
		return nil, err
	}
	if len(spec.Tracks) == 0 {
		return nil, fmt.Errorf("prefabs: %s: %w", name, player.ErrEmptyPlaylist)
	}
	return player.Playlist(spec.Tracks), nil
}

// ParseColor accepts "#rrggbb", "#rrggbbaa", "r,g,b,a" (alpha 0-1) or a CSS
// color name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		hex := strings.TrimPrefix(s, "#")
		if len(hex) != 6 && len(hex) != 8 {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	if parts := strings.Split(s, ","); len(parts) == 4 {
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			ch[i] = uint8(n)
		}
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q", s)
		}
		return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: uint8(a*255 + 0.5)}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}
