package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keyGrid    = "grid"
	keyLogging = "logging"
)

// ErrUnknownConfigKey is returned for top-level YAML keys with no Config section.
var ErrUnknownConfigKey = errors.New("unknown config key")

// MergeYAML loads a YAML file and merges each top-level section onto target.
// Fields absent from a section keep their current value, so a file may set only
// the settings it cares about. Unknown top-level keys are rejected.
func MergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var sections map[string]yaml.Node
	if err = yaml.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(sections) == 0 {
		return nil
	}

	keys := make([]string, 0, len(sections))
	for key := range sections {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		node := sections[key]
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q from %s: %w", key, path, err)
		}
	}
	return nil
}

// decodeSection decodes node onto the matching field of target.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyGrid:
		return node.Decode(&target.Grid)
	case keyLogging:
		return node.Decode(&target.Logging)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}
}
