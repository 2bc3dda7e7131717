package components

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings shared by every screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Back    key.Binding
	First   key.Binding
	Second  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Sound   key.Binding
}

// Keys is the application key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "選択"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "下へ"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "決定"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "戻る"),
	),
	First: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "上の答え"),
	),
	Second: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "下の答え"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("Y", "やめる"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("N", "続ける"),
	),
	Sound: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("S", "効果音"),
	),
}
