package config

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultPreset is used when no preset is selected
const DefaultPreset = "default"

// ErrUnknownPreset is returned for preset names that are not built in
var ErrUnknownPreset = errors.New("unknown preset")

//go:embed presets/*.yaml
var presetFS embed.FS

// PresetInfo describes a built-in preset
type PresetInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Config      `yaml:",inline"`
}

// builtinPresets maps preset names to their definitions
var builtinPresets = map[string]*PresetInfo{}

func init() {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		panic(fmt.Sprintf("config: reading embedded presets: %v", err))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := presetFS.ReadFile(path.Join("presets", entry.Name()))
		if err != nil {
			panic(fmt.Sprintf("config: reading preset %s: %v", entry.Name(), err))
		}

		var p PresetInfo
		if err := yaml.Unmarshal(data, &p); err != nil {
			panic(fmt.Sprintf("config: parsing preset %s: %v", entry.Name(), err))
		}

		builtinPresets[p.Name] = &p
	}
}

// Preset returns the configuration of a built-in preset
func Preset(name string) (Config, error) {
	if p, ok := builtinPresets[name]; ok {
		return p.Config, nil
	}
	return Config{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
}

// Presets returns all built-in presets sorted by name
func Presets() []PresetInfo {
	out := make([]PresetInfo, 0, len(builtinPresets))
	for _, p := range builtinPresets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
