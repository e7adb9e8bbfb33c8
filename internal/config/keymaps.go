package config

// KeyMappings defines all configurable key bindings of the board
type KeyMappings struct {
	// Moving cards
	PickUp string `yaml:"pick_up"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PickUp: " ",
		Drop:   "enter",
		Cancel: "esc",

		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.PickUp == "" {
		k.PickUp = defaults.PickUp
	}
	if k.Drop == "" {
		k.Drop = defaults.Drop
	}
	if k.Cancel == "" {
		k.Cancel = defaults.Cancel
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.Reload == "" {
		k.Reload = defaults.Reload
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
