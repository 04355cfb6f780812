package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-ports/internal/core"
)

// GameKeyMap defines the in-game key bindings. Player 1 steers with WASD,
// Player 2 with the up and down arrows (the right Pong paddle).
type GameKeyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P1Left  key.Binding
	P1Right key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	Jump    key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Fire, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down, k.P1Left, k.P1Right},
		{k.P2Up, k.P2Down},
		{k.Jump, k.Fire},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "p1 up"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "p1 down"),
		),
		P1Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "left"),
		),
		P1Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "right"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "p2 up"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "p2 down"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump/flap"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "x"),
			key.WithHelp("f/x", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Translate maps a key press to the player it belongs to and the action it
// triggers. Unbound keys return core.ActionNone.
func (k GameKeyMap) Translate(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Player1, core.ActionQuit
	case key.Matches(msg, k.P1Up):
		return core.Player1, core.ActionUp
	case key.Matches(msg, k.P1Down):
		return core.Player1, core.ActionDown
	case key.Matches(msg, k.P1Left):
		return core.Player1, core.ActionLeft
	case key.Matches(msg, k.P1Right):
		return core.Player1, core.ActionRight
	case key.Matches(msg, k.P2Up):
		return core.Player2, core.ActionUp
	case key.Matches(msg, k.P2Down):
		return core.Player2, core.ActionDown
	case key.Matches(msg, k.Jump):
		return core.Player1, core.ActionJump
	case key.Matches(msg, k.Fire):
		return core.Player1, core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.Player1, core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.Player1, core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.Player1, core.ActionBack
	}
	return core.Player1, core.ActionNone
}

// Apply records a key press in the frame.
// Returns true if the key was a quit request.
func (k GameKeyMap) Apply(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action := k.Translate(msg)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionNone:
		return false
	}
	frame.Set(player, action)
	return false
}

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
