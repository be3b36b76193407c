package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "HYPERSPACE"

type configVar[T any] struct {
	envKey       string
	flagKey      string
	shorthand    string
	defaultValue T
	usage        string
}

var (
	playlistPath = configVar[string]{
		envKey:  "HYPERSPACE_PLAYLIST",
		flagKey: "playlist",
		usage:   "playlist YAML file (default: built-in playlist)",
	}
	mediaDir = configVar[string]{
		envKey:       "HYPERSPACE_MEDIA_DIR",
		flagKey:      "media-dir",
		defaultValue: ".",
		usage:        "directory relative playlist cover and src paths are resolved against",
	}
	settingsPath = configVar[string]{
		envKey:  "HYPERSPACE_SETTINGS",
		flagKey: "settings",
		usage:   "settings file (default: settings.yaml in the user config dir)",
	}
	stars = configVar[int]{
		envKey:  "HYPERSPACE_STARS",
		flagKey: "stars",
		usage:   "override the number of stars",
	}
	debug = configVar[bool]{
		envKey:  "HYPERSPACE_DEBUG",
		flagKey: "debug",
		usage:   "show the FPS overlay",
	}
	watch = configVar[bool]{
		envKey:  "HYPERSPACE_WATCH",
		flagKey: "watch",
		usage:   "reload prefabs/starfield.yaml when it changes",
	}
	baseMonitor = configVar[bool]{
		envKey:    "HYPERSPACE_BASE_MONITOR",
		flagKey:   "base-monitor",
		shorthand: "m",
		usage:     "use base monitor instead of primary (for multi-monitor setups)",
	}
	fullscreen = configVar[bool]{
		envKey:  "HYPERSPACE_FULLSCREEN",
		flagKey: "fullscreen",
		usage:   "start in fullscreen",
	}
)

type Config struct {
	Playlist    string
	MediaDir    string
	Settings    string
	Stars       int
	Debug       bool
	Watch       bool
	BaseMonitor bool
	Fullscreen  bool
}

// loadConfig resolves flags, then HYPERSPACE_* environment variables, then
// defaults.
func loadConfig(args []string) (Config, error) {
	flags := pflag.NewFlagSet("hyperspace", pflag.ContinueOnError)
	flags.String(playlistPath.flagKey, playlistPath.defaultValue, playlistPath.usage)
	flags.String(mediaDir.flagKey, mediaDir.defaultValue, mediaDir.usage)
	flags.String(settingsPath.flagKey, settingsPath.defaultValue, settingsPath.usage)
	flags.Int(stars.flagKey, stars.defaultValue, stars.usage)
	flags.Bool(debug.flagKey, debug.defaultValue, debug.usage)
	flags.Bool(watch.flagKey, watch.defaultValue, watch.usage)
	flags.BoolP(baseMonitor.flagKey, baseMonitor.shorthand, baseMonitor.defaultValue, baseMonitor.usage)
	flags.Bool(fullscreen.flagKey, fullscreen.defaultValue, fullscreen.usage)
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", err)
	}
	for _, key := range [][2]string{
		{playlistPath.flagKey, playlistPath.envKey},
		{mediaDir.flagKey, mediaDir.envKey},
		{settingsPath.flagKey, settingsPath.envKey},
		{stars.flagKey, stars.envKey},
		{debug.flagKey, debug.envKey},
		{watch.flagKey, watch.envKey},
		{baseMonitor.flagKey, baseMonitor.envKey},
		{fullscreen.flagKey, fullscreen.envKey},
	} {
		if err := v.BindEnv(key[0], key[1]); err != nil {
			return Config{}, fmt.Errorf("config: bind env %s: %w", key[1], err)
		}
	}

	cfg := Config{
		Playlist:    v.GetString(playlistPath.flagKey),
		MediaDir:    v.GetString(mediaDir.flagKey),
		Settings:    v.GetString(settingsPath.flagKey),
		Stars:       v.GetInt(stars.flagKey),
		Debug:       v.GetBool(debug.flagKey),
		Watch:       v.GetBool(watch.flagKey),
		BaseMonitor: v.GetBool(baseMonitor.flagKey),
		Fullscreen:  v.GetBool(fullscreen.flagKey),
	}
	if cfg.Stars < 0 {
		return Config{}, fmt.Errorf("config: --stars must not be negative, got %d", cfg.Stars)
	}
	return cfg, nil
}
