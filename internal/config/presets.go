package config

// Presets are named fire characters. Cooling controls how far flames
// reach before dying; spark chance controls how dense the base burns.
var Presets = map[string]FireConfig{
	"classic": {CoolingMax: 3, SparkChance: 60},
	"inferno": {CoolingMax: 1, SparkChance: 90},
	"embers":  {CoolingMax: 6, SparkChance: 25},
	"torch":   {CoolingMax: 4, SparkChance: 80},
	"dying":   {CoolingMax: 8, SparkChance: 10},
}

func GetPreset(name string) *FireConfig {
	fc, ok := Presets[name]
	if !ok {
		return nil
	}
	return &fc
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
