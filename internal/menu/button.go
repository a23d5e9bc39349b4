package menu

import "errors"

// ErrInvariant marks a broken menu tree, such as a selected tab or submenu
// that resolves to an empty cell. Dispatch panics with an error wrapping it.
var ErrInvariant = errors.New("menu: invariant violation")

// Button is one of the thirteen discrete input signals the menu understands.
type Button int

const (
	ButtonA Button = iota // confirm
	ButtonB               // cancel
	ButtonX
	ButtonY
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonStart
	ButtonL
	ButtonR
	ButtonZL
	ButtonZR
)

// Buttons lists every input signal in declaration order.
var Buttons = []Button{
	ButtonA, ButtonB, ButtonX, ButtonY,
	ButtonUp, ButtonDown, ButtonLeft, ButtonRight,
	ButtonStart, ButtonL, ButtonR, ButtonZL, ButtonZR,
}

var buttonNames = [...]string{
	ButtonA:     "A",
	ButtonB:     "B",
	ButtonX:     "X",
	ButtonY:     "Y",
	ButtonUp:    "Up",
	ButtonDown:  "Down",
	ButtonLeft:  "Left",
	ButtonRight: "Right",
	ButtonStart: "Start",
	ButtonL:     "L",
	ButtonR:     "R",
	ButtonZL:    "ZL",
	ButtonZR:    "ZR",
}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "Unknown"
	}
	return buttonNames[b]
}

// Directional reports whether b is one of the four direction buttons.
func (b Button) Directional() bool {
	switch b {
	case ButtonUp, ButtonDown, ButtonLeft, ButtonRight:
		return true
	}
	return false
}

// Handler consumes a single input signal.
type Handler interface {
	Handle(Button)
}
