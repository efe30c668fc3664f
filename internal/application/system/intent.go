package system

import (
	"github.com/younwookim/nagini/internal/application/state"
	"github.com/younwookim/nagini/internal/domain/entity"
)

// Intent represents a discrete player input routed to the Controller
type Intent interface {
	isIntent()
}

// SteerIntent asks the snake to change heading
type SteerIntent struct {
	Heading entity.Heading
}

func (SteerIntent) isIntent() {}

// CommandIntent is a menu command (play, about, quit, home)
type CommandIntent struct {
	Command state.Command
}

func (CommandIntent) isIntent() {}
