package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/shortlist/internal/config"
)

// keyMap holds the board's key bindings; it implements help.KeyMap
type keyMap struct {
	PickUp key.Binding
	Drop   key.Binding
	Cancel key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PickUp: key.NewBinding(key.WithKeys(keyAliases(km.PickUp)...), key.WithHelp(keyLabel(km.PickUp), "pick up / drop")),
		Drop:   key.NewBinding(key.WithKeys(keyAliases(km.Drop)...), key.WithHelp(keyLabel(km.Drop), "drop")),
		Cancel: key.NewBinding(key.WithKeys(km.Cancel), key.WithHelp(km.Cancel, "cancel move / dismiss")),
		Left:   key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp("←/"+km.PrevColumn, "prev column")),
		Right:  key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp("→/"+km.NextColumn, "next column")),
		Up:     key.NewBinding(key.WithKeys(km.PrevCard, "up"), key.WithHelp("↑/"+km.PrevCard, "up")),
		Down:   key.NewBinding(key.WithKeys(km.NextCard, "down"), key.WithHelp("↓/"+km.NextCard, "down")),
		Reload: key.NewBinding(key.WithKeys(km.Reload), key.WithHelp(km.Reload, "reload")),
		Help:   key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:   key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// keyAliases lets a configured " " match however the terminal reports space
func keyAliases(k string) []string {
	if k == " " || k == "space" {
		return []string{" ", "space"}
	}
	return []string{k}
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickUp, k.Cancel, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PickUp, k.Drop, k.Cancel},
		{k.Reload, k.Help, k.Quit},
	}
}
