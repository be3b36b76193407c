package media

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// bytesPerFrame is the size of one decoded sample frame: 16-bit stereo.
const bytesPerFrame = 4

// stream is what every ebiten decoder returns.
type stream interface {
	io.ReadSeeker
	Length() int64
}

type decodeFunc func(sampleRate int, r io.ReadSeeker) (stream, error)

var decoders = map[string]decodeFunc{
	".mp3": func(sr int, r io.ReadSeeker) (stream, error) { return mp3.DecodeWithSampleRate(sr, r) },
	".ogg": func(sr int, r io.ReadSeeker) (stream, error) { return vorbis.DecodeWithSampleRate(sr, r) },
	".wav": func(sr int, r io.ReadSeeker) (stream, error) { return wav.DecodeWithSampleRate(sr, r) },
}

func decoderFor(src string) (decodeFunc, error) {
	ext := strings.ToLower(path.Ext(src))
	if dec, ok := decoders[ext]; ok {
		return dec, nil
	}
	return nil, fmt.Errorf("unsupported audio format %q", ext)
}

func decode(src string, data []byte, sampleRate int) (stream, error) {
	dec, err := decoderFor(src)
	if err != nil {
		return nil, err
	}
	s, err := dec(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", src, err)
	}
	return s, nil
}

// lengthSeconds converts a decoded stream length in bytes to seconds.
func lengthSeconds(length int64, sampleRate int) float64 {
	if length <= 0 || sampleRate <= 0 {
		return 0
	}
	return float64(length) / float64(bytesPerFrame*sampleRate)
}
