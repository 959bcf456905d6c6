package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Override files are the interchange format between the variant
// administration tooling and this registry:
//
//	[[variant]]
//	type = "asymmetric-pole"
//	width = 25.5
//	left_eave = 6.9
//	right_eave = 4.0
//	ridge_height = 8.9
//	ridge_offset = 6.55

type overrideFile struct {
	Variants []overrideEntry `toml:"variant"`
}

type overrideEntry struct {
	Type        string  `toml:"type"`
	Width       float64 `toml:"width"`
	LeftEave    float64 `toml:"left_eave"`
	RightEave   float64 `toml:"right_eave"`
	RidgeHeight float64 `toml:"ridge_height"`
	RidgeOffset float64 `toml:"ridge_offset"`
	PoleOffset  float64 `toml:"pole_offset"`
	ZoneLeft    float64 `toml:"zone_left"`
	ZoneRight   float64 `toml:"zone_right"`
}

// LoadOverrides reads a TOML override file into a table suitable for
// Registry.ReplaceOverrides.
func LoadOverrides(path string) (map[Key]Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading override file: %w", err)
	}
	return ParseOverrides(data)
}

// ParseOverrides decodes TOML override data.
func ParseOverrides(data []byte) (map[Key]Variant, error) {
	var file overrideFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing override file: %w", err)
	}

	set := make(map[Key]Variant, len(file.Variants))
	for i, e := range file.Variants {
		t, err := ParseType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("variant %d: %w", i+1, err)
		}
		if e.Width <= 0 {
			return nil, fmt.Errorf("variant %d (%s): width must be positive", i+1, e.Type)
		}
		set[Key{t, e.Width}] = Variant{
			Type:        t,
			Width:       e.Width,
			LeftEave:    e.LeftEave,
			RightEave:   e.RightEave,
			RidgeHeight: e.RidgeHeight,
			RidgeOffset: e.RidgeOffset,
			PoleOffset:  e.PoleOffset,
			ZoneLeft:    e.ZoneLeft,
			ZoneRight:   e.ZoneRight,
		}
	}
	return set, nil
}
