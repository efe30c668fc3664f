package state

// GameState represents the current screen of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateAbout
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateAbout:
		return "About"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Command is a discrete menu input
type Command int

const (
	CommandNone Command = iota
	CommandPlay
	CommandAbout
	CommandQuit
	CommandHome
)

// String returns the string representation of the command
func (c Command) String() string {
	switch c {
	case CommandPlay:
		return "Play"
	case CommandAbout:
		return "About"
	case CommandQuit:
		return "Quit"
	case CommandHome:
		return "Home"
	default:
		return "None"
	}
}
