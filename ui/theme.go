package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	panelColor      = color.NRGBA{R: 0x14, G: 0x14, B: 0x1e, A: 0xd0}
	textColor       = color.NRGBA{R: 0xee, G: 0xee, B: 0xf4, A: 0xff}
	mutedTextColor  = color.NRGBA{R: 0x9a, G: 0x9a, B: 0xb0, A: 0xff}
	activeTextColor = color.NRGBA{R: 0x8c, G: 0xc8, B: 0xff, A: 0xff}
)

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// NewFace loads the Go regular font at size.
func NewFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ui: load font: %w", err)
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}

func newTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.NRGBA{R: 0x2a, G: 0x2a, B: 0x3a, A: 0xff}),
				Hover:   solidNineSlice(color.NRGBA{R: 0x3a, G: 0x3a, B: 0x52, A: 0xff}),
				Pressed: solidNineSlice(color.NRGBA{R: 0x4a, G: 0x5a, B: 0x80, A: 0xff}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:    textColor,
				Hover:   textColor,
				Pressed: activeTextColor,
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  solidNineSlice(color.NRGBA{R: 0x3a, G: 0x3a, B: 0x4a, A: 0xff}),
				Hover: solidNineSlice(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x5e, A: 0xff}),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    solidNineSlice(color.NRGBA{R: 0xc8, G: 0xc8, B: 0xdc, A: 0xff}),
				Hover:   solidNineSlice(color.NRGBA{R: 0xe6, G: 0xe6, B: 0xf5, A: 0xff}),
				Pressed: solidNineSlice(color.NRGBA{R: 0x8c, G: 0xc8, B: 0xff, A: 0xff}),
			},
		},
	}
}
