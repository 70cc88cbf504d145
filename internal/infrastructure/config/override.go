package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadOverride decodes a TOML file over already loaded settings.
// Only keys present in the file are changed. Unknown keys are an error.
func LoadOverride(path string, cfg *Settings) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse override %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys in override %s: %s", path, strings.Join(keys, ", "))
	}

	return nil
}
