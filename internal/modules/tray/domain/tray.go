package domain

import (
	"fmt"
	"strings"

	apperrors "focusdesk/internal/platform/errors"
)

const (
	MenuShow       = "show"
	MenuStartFocus = "start_focus"
	MenuStartBreak = "start_break"
	MenuQuit       = "quit"
)

// UI event names published toward the frontend.
const (
	EventStartFocus = "start-focus"
	EventStartBreak = "start-break"
)

type MenuItem struct {
	ID        string
	Label     string
	Separator bool
}

func Menu() []MenuItem {
	return []MenuItem{
		{ID: MenuShow, Label: "Show"},
		{Separator: true},
		{ID: MenuStartFocus, Label: "Start Focus"},
		{ID: MenuStartBreak, Label: "Start Break"},
		{Separator: true},
		{ID: MenuQuit, Label: "Quit"},
	}
}

type Kind string

const (
	KindClick          Kind = "click"
	KindMenu           Kind = "menu"
	KindCloseRequested Kind = "close_requested"
)

type Button string

const (
	ButtonLeft   Button = "left"
	ButtonRight  Button = "right"
	ButtonMiddle Button = "middle"
)

type ButtonState string

const (
	ButtonUp   ButtonState = "up"
	ButtonDown ButtonState = "down"
)

type Event struct {
	Kind   Kind
	Button Button
	State  ButtonState
	MenuID string
}

func Click(button Button, state ButtonState) Event {
	return Event{Kind: KindClick, Button: button, State: state}
}

func MenuSelected(id string) Event {
	return Event{Kind: KindMenu, MenuID: id}
}

func CloseRequested() Event {
	return Event{Kind: KindCloseRequested}
}

// ParseEvent reads the short names used on the command line and the bridge:
// "click", "close" or any menu id.
func ParseEvent(raw string) (Event, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "":
		return Event{}, fmt.Errorf("%w: tray event is required", apperrors.ErrInvalidInput)
	case "click":
		return Click(ButtonLeft, ButtonUp), nil
	case "close", string(KindCloseRequested):
		return CloseRequested(), nil
	case MenuShow, MenuStartFocus, MenuStartBreak, MenuQuit:
		return MenuSelected(name), nil
	default:
		return Event{}, fmt.Errorf("%w: unknown tray event %q", apperrors.ErrInvalidInput, raw)
	}
}

type Action struct {
	ShowWindow bool
	HideWindow bool
	Publish    string
	Quit       bool
}

func (a Action) None() bool {
	return a == Action{}
}

// Resolve maps a tray or window event onto what the shell must do. Events
// with no mapping resolve to the zero Action.
func Resolve(evt Event) Action {
	switch evt.Kind {
	case KindClick:
		if evt.Button == ButtonLeft && evt.State == ButtonUp {
			return Action{ShowWindow: true}
		}
	case KindMenu:
		switch evt.MenuID {
		case MenuShow:
			return Action{ShowWindow: true}
		case MenuStartFocus:
			return Action{ShowWindow: true, Publish: EventStartFocus}
		case MenuStartBreak:
			return Action{ShowWindow: true, Publish: EventStartBreak}
		case MenuQuit:
			return Action{Quit: true}
		}
	case KindCloseRequested:
		return Action{HideWindow: true}
	}
	return Action{}
}
