package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/hyperspace/player"
	"github.com/milk9111/hyperspace/starfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStarfieldSpecMatchesDefaults(t *testing.T) {
	spec, err := LoadStarfieldSpec()
	require.NoError(t, err)
	assert.Equal(t, starfield.DefaultSpec(), spec)
}

func TestStarfieldSpecOverrides(t *testing.T) {
	spec, err := StarfieldSpec{
		Count:      40,
		Trail:      IntRange{Min: 2, Max: 3},
		Background: "#000000ff",
		Glow:       GlowSpec{Alpha: 0.5},
	}.Starfield()
	require.NoError(t, err)
	assert.Equal(t, 40, spec.Count)
	assert.Equal(t, 2, spec.MinTrail)
	assert.Equal(t, 3, spec.MaxTrail)
	assert.Equal(t, color.NRGBA{A: 255}, spec.Background)
	assert.Equal(t, 0.5, spec.GlowAlpha)
	assert.Equal(t, starfield.DefaultSpec().MaxSpeed, spec.MaxSpeed)

	_, err = StarfieldSpec{Background: "not-a-color"}.Starfield()
	assert.Error(t, err)
}

func TestStarfieldComponentSpecLoad(t *testing.T) {
	assert.Equal(t, StarfieldFile, StarfieldComponentSpec{}.File())
	assert.Equal(t, "calm.yaml", StarfieldComponentSpec{Spec: "calm.yaml"}.File())

	spec, err := StarfieldComponentSpec{}.Load()
	require.NoError(t, err)
	assert.Equal(t, starfield.DefaultSpec(), spec)

	spec, err = StarfieldComponentSpec{Spec: "prefabs/" + StarfieldFile, Count: 12}.Load()
	require.NoError(t, err)
	assert.Equal(t, 12, spec.Count)
	assert.Equal(t, starfield.DefaultSpec().MaxTrail, spec.MaxTrail)

	_, err = StarfieldComponentSpec{Spec: "missing.yaml"}.Load()
	assert.Error(t, err)
}

func TestLoadPlaylistEmbedded(t *testing.T) {
	pl, err := LoadPlaylist("")
	require.NoError(t, err)
	require.Len(t, pl, 5)
	assert.Equal(t, player.Track{Title: "Nuke Powder", Artist: "Maeloux", Cover: "files/cover1.jpg", Src: "files/track1.mp3"}, pl[0])
	assert.Equal(t, "Weezer", pl[4].Artist)
}

func TestLoadPlaylistFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tracks:\n  - title: Solo\n    src: solo.ogg\n"), 0o644))
	pl, err := LoadPlaylist(path)
	require.NoError(t, err)
	assert.Equal(t, player.Playlist{{Title: "Solo", Src: "solo.ogg"}}, pl)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("tracks: []\n"), 0o644))
	_, err = LoadPlaylist(empty)
	assert.ErrorIs(t, err, player.ErrEmptyPlaylist)

	_, err = LoadPlaylist(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#0a0a0f", want: color.NRGBA{R: 10, G: 10, B: 15, A: 255}},
		{in: "#0a0a0fcc", want: color.NRGBA{R: 10, G: 10, B: 15, A: 204}},
		{in: "10,10,15,0.8", want: color.NRGBA{R: 10, G: 10, B: 15, A: 204}},
		{in: " 255, 0, 0, 1 ", want: color.NRGBA{R: 255, A: 255}},
		{in: "Black", want: color.NRGBA{A: 255}},
		{in: "", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "1,2,3,2", wantErr: true},
		{in: "300,0,0,1", wantErr: true},
		{in: "chartreuse-ish", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := DecodeComponentSpec[StarfieldComponentSpec](map[string]any{"spec": "fast.yaml", "count": 12})
	require.NoError(t, err)
	assert.Equal(t, StarfieldComponentSpec{Spec: "fast.yaml", Count: 12}, spec)

	empty, err := DecodeComponentSpec[PlayerComponentSpec](nil)
	require.NoError(t, err)
	assert.Equal(t, PlayerComponentSpec{}, empty)
}

func TestEntityPrefabs(t *testing.T) {
	for _, name := range []string{"starfield_entity.yaml", "player.yaml"} {
		spec, err := LoadEntityBuildSpec(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, spec.Components, name)
	}
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "starfield.yaml", cleanPrefabPath("prefabs/starfield.yaml"))
	assert.Equal(t, "starfield.yaml", cleanPrefabPath("starfield.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StarfieldFile), []byte("count: 10\n"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		names, _ := w.Drain()
		got = append(got, names...)
		return len(got) > 0
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{StarfieldFile}, got)
}
