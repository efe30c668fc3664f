package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/application/system"
	"github.com/younwookim/nagini/internal/domain/entity"
)

var arrowKeys = map[tcell.Key]entity.Heading{
	tcell.KeyUp:    entity.HeadingUp,
	tcell.KeyDown:  entity.HeadingDown,
	tcell.KeyLeft:  entity.HeadingLeft,
	tcell.KeyRight: entity.HeadingRight,
}

var runeKeys = map[rune]system.Intent{
	'1': system.CommandIntent{Command: state.CommandPlay},
	'2': system.CommandIntent{Command: state.CommandAbout},
	'3': system.CommandIntent{Command: state.CommandQuit},
	'4': system.CommandIntent{Command: state.CommandHome},
	'w': system.SteerIntent{Heading: entity.HeadingUp},
	's': system.SteerIntent{Heading: entity.HeadingDown},
	'a': system.SteerIntent{Heading: entity.HeadingLeft},
	'd': system.SteerIntent{Heading: entity.HeadingRight},
}

// IntentForKey translates a key event into an intent
func IntentForKey(ev *tcell.EventKey) (system.Intent, bool) {
	if h, ok := arrowKeys[ev.Key()]; ok {
		return system.SteerIntent{Heading: h}, true
	}
	if ev.Key() == tcell.KeyRune {
		in, ok := runeKeys[ev.Rune()]
		return in, ok
	}
	return nil, false
}

// IsExit reports whether ev closes the terminal frontend regardless of state
func IsExit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
