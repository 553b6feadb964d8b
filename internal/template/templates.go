// Package template provides the idea preset catalog: the starter ideas
// offered before a session begins, extendable from a YAML file.
package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is one starter idea.
type Preset struct {
	Name string `yaml:"name"`
	Idea string `yaml:"idea"`
}

// builtin mirrors the original landing-page template chips.
var builtin = []Preset{
	{Name: "recipes", Idea: "A recipe sharing app where users upload recipes and get AI-suggested wine pairings"},
	{Name: "habits", Idea: "A habit tracker with streaks, reminders, and a social accountability feed"},
	{Name: "invoices", Idea: "An invoicing tool for freelancers with client portals and payment reminders"},
	{Name: "bookclub", Idea: "A book club app with reading schedules, discussion threads, and progress tracking"},
	{Name: "plants", Idea: "A plant care companion that identifies plants and schedules watering reminders"},
}

// Builtin returns the built-in presets.
func Builtin() []Preset {
	return builtin
}

// Load returns the built-in presets plus any user presets from path, when it
// exists. User presets with a name matching a built-in replace it.
func Load(path string) ([]Preset, error) {
	if path == "" {
		return builtin, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // user-provided preset file
	if err != nil {
		if os.IsNotExist(err) {
			return builtin, nil
		}
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var user []Preset
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse templates file: %w", err)
	}

	merged := make([]Preset, 0, len(builtin)+len(user))
	replaced := map[string]bool{}
	for _, p := range user {
		replaced[p.Name] = true
	}
	for _, p := range builtin {
		if !replaced[p.Name] {
			merged = append(merged, p)
		}
	}
	merged = append(merged, user...)
	return merged, nil
}

// Find looks a preset up by name.
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
