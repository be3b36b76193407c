package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/hyperspace/player"
)

const (
	artworkSize  = 160
	panelWidth   = 360
	sliderLength = 220
)

// PlayerPanel is the playlist widget: artwork, title and artist, the
// play/pause control, seek and volume sliders, time labels and one entry per
// track. It never changes player state itself; every user action is handed
// to dispatch.
type PlayerPanel struct {
	ui       *ebitenui.UI
	dispatch func(player.Event)
	images   func(path string) *ebiten.Image

	artwork  *widget.Graphic
	title    *widget.Text
	artist   *widget.Text
	toggle   *widget.Button
	progress *widget.Slider
	elapsed  *widget.Text
	total    *widget.Text
	volume   *widget.Slider
	entries  []*widget.Button
	group    *widget.RadioGroup

	cover  string
	synced sliderState
	active int
}

// sliderState remembers the slider positions last written by Sync, so that
// the changed handlers can tell them apart from user input.
type sliderState struct {
	progress int
	volume   int
}

// NewPlayerPanel builds the widget for playlist. images resolves artwork
// paths and may return nil.
func NewPlayerPanel(playlist player.Playlist, face text.Face, images func(string) *ebiten.Image, dispatch func(player.Event)) *PlayerPanel {
	p := &PlayerPanel{
		ui:       &ebitenui.UI{},
		dispatch: dispatch,
		images:   images,
		active:   -1,
		synced:   sliderState{progress: -1, volume: -1},
	}
	p.ui.PrimaryTheme = newTheme(&face)
	theme := p.ui.PrimaryTheme

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	p.artwork = widget.NewGraphic(
		widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.MinSize(artworkSize, artworkSize), centered),
	)
	p.title = widget.NewText(
		widget.TextOpts.Text("", &face, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)
	p.artist = widget.NewText(
		widget.TextOpts.Text("", &face, mutedTextColor),
		widget.TextOpts.WidgetOpts(centered),
	)
	p.toggle = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(player.GlyphPlay, &face, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 32), centered),
		widget.ButtonOpts.DisableDefaultKeys(),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			p.send(player.TogglePlayPause{})
		}),
	)

	p.elapsed = widget.NewText(widget.TextOpts.Text(player.FormatTime(0), &face, mutedTextColor))
	p.total = widget.NewText(widget.TextOpts.Text(player.FormatTime(0), &face, mutedTextColor))
	p.progress = newSlider(theme, func(v int) {
		if v == p.synced.progress {
			return
		}
		p.synced.progress = v
		p.send(player.Seek{Value: float64(v)})
	})
	timeRow := row(8)
	timeRow.AddChild(p.elapsed)
	timeRow.AddChild(p.progress)
	timeRow.AddChild(p.total)

	p.volume = newSlider(theme, func(v int) {
		if v == p.synced.volume {
			return
		}
		p.synced.volume = v
		p.send(player.VolumeChange{Value: float64(v)})
	})
	volumeRow := row(8)
	volumeRow.AddChild(widget.NewText(widget.TextOpts.Text("Vol", &face, mutedTextColor)))
	volumeRow.AddChild(p.volume)

	panel.AddChild(p.artwork)
	panel.AddChild(p.title)
	panel.AddChild(p.artist)
	panel.AddChild(p.toggle)
	panel.AddChild(timeRow)
	panel.AddChild(volumeRow)

	list := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	elements := make([]widget.RadioGroupElement, 0, playlist.Len())
	for i, t := range playlist {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(EntryLabel(i, t), &face, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.DisableDefaultKeys(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(panelWidth-40, 28)),
		)
		p.entries = append(p.entries, btn)
		elements = append(elements, btn)
		list.AddChild(btn)
	}
	p.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range p.entries {
				if args.Active == b && idx != p.active {
					p.active = idx
					p.send(player.SelectTrack{Index: idx})
					return
				}
			}
		}),
	)
	panel.AddChild(list)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	p.ui.Container = root
	return p
}

func newSlider(theme *widget.Theme, changed func(v int)) *widget.Slider {
	return widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, 100),
		widget.SliderOpts.DisableDefaultKeys(true),
		widget.SliderOpts.Images(theme.SliderTheme.TrackImage, theme.SliderTheme.HandleImage),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(sliderLength, 16)),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			changed(args.Current)
		}),
	)
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
}

// EntryLabel is the text of playlist entry i.
func EntryLabel(i int, t player.Track) string {
	if t.Artist == "" {
		return fmt.Sprintf("%d. %s", i+1, t.Title)
	}
	return fmt.Sprintf("%d. %s – %s", i+1, t.Title, t.Artist)
}

func (p *PlayerPanel) send(ev player.Event) {
	if p.dispatch != nil {
		p.dispatch(ev)
	}
}

// Sync mirrors d into the widgets.
func (p *PlayerPanel) Sync(d player.Display) {
	p.title.Label = d.Title
	p.artist.Label = d.Artist
	if label := p.toggle.Text(); label != nil {
		label.Label = d.Glyph
	}
	p.elapsed.Label = d.Elapsed
	p.total.Label = d.Total

	if pos := sliderPosition(d.Progress); pos != p.progress.Current {
		p.synced.progress = pos
		p.progress.Current = pos
	}
	if d.Volume != p.volume.Current {
		p.synced.volume = d.Volume
		p.volume.Current = d.Volume
	}

	if d.Cover != p.cover {
		p.cover = d.Cover
		if p.images != nil {
			p.artwork.Image = fitArtwork(p.images(d.Cover), artworkSize)
		}
	}

	if d.Active != p.active && d.Active >= 0 && d.Active < len(p.entries) {
		p.active = d.Active
		p.group.SetActive(p.entries[d.Active])
	}
}

// fitArtwork scales src into a size x size square, keeping its aspect ratio.
func fitArtwork(src *ebiten.Image, size int) *ebiten.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	scale := float64(size) / float64(max(b.Dx(), b.Dy()))
	dst := ebiten.NewImage(size, size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(size)-float64(b.Dx())*scale)/2, (float64(size)-float64(b.Dy())*scale)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

func sliderPosition(progress float64) int {
	switch {
	case progress <= 0 || progress != progress:
		return 0
	case progress >= 100:
		return 100
	}
	return int(progress + 0.5)
}

func (p *PlayerPanel) Update() {
	p.ui.Update()
}

func (p *PlayerPanel) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}
