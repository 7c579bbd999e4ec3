package ca

// Preset names a canonical rule worth demonstrating.
type Preset struct {
	Rule        int
	Description string
}

var presets = map[string]Preset{}

// RegisterPreset adds a named rule to the registry.
func RegisterPreset(name string, p Preset) {
	if name == "" || p.Rule < 0 || p.Rule > MaxRule {
		return
	}
	presets[name] = p
}

// Presets exposes the registry of named canonical rules.
func Presets() map[string]Preset {
	return presets
}

func init() {
	RegisterPreset("chaos", Preset{Rule: 30, Description: "Rule 30 - chaos / pseudo-randomness"})
	RegisterPreset("sierpinski", Preset{Rule: 90, Description: "Rule 90 - self-similarity (Sierpinski)"})
	RegisterPreset("turing", Preset{Rule: 110, Description: "Rule 110 - localized structures (Turing-complete)"})
	RegisterPreset("periodic", Preset{Rule: 250, Description: "Rule 250 - periodic repetition"})
}
