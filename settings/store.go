// Package settings is the durable key-value store behind the player's
// persisted preferences. Values are strings; every Set writes through to disk.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const fileName = "settings.yaml"

type Store struct {
	v    *viper.Viper
	path string
}

// DefaultPath is settings.yaml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: config dir: %w", err)
	}
	return filepath.Join(dir, "hyperspace", fileName), nil
}

// Open loads the store at path. A missing file is an empty store; it is
// created on the first Set.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("settings: empty path")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("settings: read %s: %w", path, err)
		}
	}
	return &Store{v: v, path: path}, nil
}

func (s *Store) Get(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

func (s *Store) Set(key, value string) error {
	s.v.Set(key, value)
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("settings: write %s: %w", s.path, err)
	}
	return nil
}
