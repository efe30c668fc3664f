package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/domain/entity"
)

// InputSource yields the intents produced since the previous poll
type InputSource interface {
	Poll() []Intent
}

// keyBindings maps keyboard keys to intents.
// Number keys follow the on-screen prompts: 1 play, 2 about, 3 quit, 4 home.
var keyBindings = map[ebiten.Key]Intent{
	ebiten.KeyDigit1:  CommandIntent{Command: state.CommandPlay},
	ebiten.KeyDigit2:  CommandIntent{Command: state.CommandAbout},
	ebiten.KeyDigit3:  CommandIntent{Command: state.CommandQuit},
	ebiten.KeyDigit4:  CommandIntent{Command: state.CommandHome},
	ebiten.KeyNumpad1: CommandIntent{Command: state.CommandPlay},
	ebiten.KeyNumpad2: CommandIntent{Command: state.CommandAbout},
	ebiten.KeyNumpad3: CommandIntent{Command: state.CommandQuit},
	ebiten.KeyNumpad4: CommandIntent{Command: state.CommandHome},

	ebiten.KeyArrowUp:    SteerIntent{Heading: entity.HeadingUp},
	ebiten.KeyArrowDown:  SteerIntent{Heading: entity.HeadingDown},
	ebiten.KeyArrowLeft:  SteerIntent{Heading: entity.HeadingLeft},
	ebiten.KeyArrowRight: SteerIntent{Heading: entity.HeadingRight},
	ebiten.KeyW:          SteerIntent{Heading: entity.HeadingUp},
	ebiten.KeyS:          SteerIntent{Heading: entity.HeadingDown},
	ebiten.KeyA:          SteerIntent{Heading: entity.HeadingLeft},
	ebiten.KeyD:          SteerIntent{Heading: entity.HeadingRight},
}

// IntentForKey returns the intent bound to k
func IntentForKey(k ebiten.Key) (Intent, bool) {
	in, ok := keyBindings[k]
	return in, ok
}

// KeyboardInput reads just-pressed keys from ebiten
type KeyboardInput struct {
	keys []ebiten.Key
}

// NewKeyboardInput creates a keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{keys: make([]ebiten.Key, 0, 8)}
}

// Poll returns intents for keys pressed this frame, in press order.
// Unbound keys are dropped.
func (k *KeyboardInput) Poll() []Intent {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	if len(k.keys) == 0 {
		return nil
	}

	out := make([]Intent, 0, len(k.keys))
	for _, key := range k.keys {
		if in, ok := IntentForKey(key); ok {
			out = append(out, in)
		}
	}
	return out
}
