package prefabs

import (
	"gopkg.in/yaml.v3"

	"github.com/milk9111/hyperspace/starfield"
)

// EntityBuildSpec is a prefab made of named component specs.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// StarfieldComponentSpec names the tuning file of a starfield entity.
type StarfieldComponentSpec struct {
	Spec string `yaml:"spec"`
	// Count overrides the tuning file's star count when positive.
	Count int `yaml:"count"`
}

// File is the tuning file the component reads.
func (c StarfieldComponentSpec) File() string {
	if c.Spec == "" {
		return StarfieldFile
	}
	return c.Spec
}

// Load reads the tuning file and applies the count override. The entity
// builder and hot reload both go through it.
func (c StarfieldComponentSpec) Load() (starfield.Spec, error) {
	tuning, err := LoadSpec[StarfieldSpec](c.File())
	if err != nil {
		return starfield.Spec{}, err
	}
	spec, err := tuning.Starfield()
	if err != nil {
		return starfield.Spec{}, err
	}
	if c.Count > 0 {
		spec.Count = c.Count
	}
	return spec, nil
}

// PlayerComponentSpec names the default playlist of a player entity.
type PlayerComponentSpec struct {
	Playlist string `yaml:"playlist"`
}
