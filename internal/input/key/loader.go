package key

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// keymapFile is the on-disk YAML representation of a keymap.
type keymapFile struct {
	Name     string `yaml:"name"`
	Mappings []struct {
		Code    uint8  `yaml:"code"`
		Base    string `yaml:"base"`
		Shifted string `yaml:"shifted"`
	} `yaml:"mappings"`
}

// LoadKeymap reads a keymap overlay from a YAML file. The overlay
// starts from the QWERTY layout and replaces the listed codes, so a
// file only needs to describe the keys that differ.
func LoadKeymap(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}
	return ParseKeymap(data)
}

// ParseKeymap parses YAML keymap data. See LoadKeymap.
func ParseKeymap(data []byte) (*Keymap, error) {
	var file keymapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing keymap: %w", err)
	}
	if file.Name == "" {
		return nil, ErrKeymapUnnamed
	}

	km := QWERTY()
	km.name = file.Name
	for i, m := range file.Mappings {
		if Code(m.Code).IsModifier() || int(m.Code) >= len(km.entries) {
			return nil, fmt.Errorf("%w: mapping %d code 0x%02x", ErrKeymapBadCode, i, m.Code)
		}
		var base, shifted byte
		if len(m.Base) > 0 {
			base = m.Base[0]
		}
		if len(m.Shifted) > 0 {
			shifted = m.Shifted[0]
		}
		km.entries[m.Code] = mapEntry{base: base, shifted: shifted}
	}
	return km, nil
}
