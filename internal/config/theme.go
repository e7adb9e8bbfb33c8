package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Board colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	CarriedBorder  string `yaml:"carried_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "default",
		Accent:         "#874BFD",
		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		CarriedBorder:  "#FFD700",
		Title:          "#D75FD7",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		InfoFg:         "#00AFFF",
		InfoBg:         "#00005F",
		WarningFg:      "#FFD700",
		WarningBg:      "#875F00",
		ErrorFg:        "#FF0000",
		ErrorBg:        "#5F0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		ColumnBorder:   "#FFFFFF",
		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		CarriedBorder:  "#D0D0D0",
		Title:          "#FFFFFF",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		InfoFg:         "#FFFFFF",
		InfoBg:         "#1C1C1C",
		WarningFg:      "#FFFFFF",
		WarningBg:      "#3A3A3A",
		ErrorFg:        "#FFFFFF",
		ErrorBg:        "#585858",
	}
}

// presetScheme returns a preset color scheme by name
func presetScheme(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing color values from the preset
func (c *ColorScheme) ApplyDefaults() {
	preset := presetScheme(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.CarriedBorder, preset.CarriedBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}
