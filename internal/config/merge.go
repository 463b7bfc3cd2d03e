package config

// Overrides carries command-line values that may replace file settings.
type Overrides struct {
	Width  int
	Height int
	Budget int
	TPS    int
	Atlas  string
}

// Merge applies o to cfg, but only for the flag names present in explicit.
// Values from the config file survive for every flag left at its default.
func Merge(cfg *Config, o Overrides, explicit map[string]bool) {
	if explicit["w"] {
		cfg.World.Width = o.Width
	}
	if explicit["h"] {
		cfg.World.Height = o.Height
	}
	if explicit["budget"] {
		cfg.World.Budget = o.Budget
	}
	if explicit["tps"] {
		cfg.Display.TPS = o.TPS
	}
	if explicit["atlas"] {
		cfg.Tiles.Atlas = o.Atlas
	}
}
