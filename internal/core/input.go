package core

// Action represents a semantic input, abstracted from physical key presses.
// The game itself consumes only ActionActivate; the rest drive the shell
// around it (quitting, switching screens).
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, W, mouse press - start, jump, retry
	ActionScores          // Tab, L - toggle leaderboard screen
	ActionBack            // B, Escape - leave the leaderboard screen
	ActionRename          // N - change the leaderboard name
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionScores:
		return "Scores"
	case ActionBack:
		return "Back"
	case ActionRename:
		return "Rename"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
