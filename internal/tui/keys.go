package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type pickerKeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Today     key.Binding
	Select    key.Binding
	Cancel    key.Binding
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup", "p"), key.WithHelp("[/p", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown", "n"), key.WithHelp("]/n", "next month")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "day-")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "day+")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "week-")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "week+")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+g"), key.WithHelp("esc", "cancel")),
	}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Select, k.Cancel}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevMonth, k.NextMonth, k.Today},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.Cancel},
	}
}

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Open   key.Binding
	Clear  key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick date")),
		Clear:  key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("del", "clear date")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Open, k.Submit, k.Quit}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Open, k.Clear}, {k.Submit, k.Quit}}
}
