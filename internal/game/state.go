package game

// State is the screen the game is currently on.
type State int

const (
	StateMenu         State = iota // Title menu
	StateModeSelect                // Pick Classic / Time Trial / Obstacles
	StatePlaying                   // Active round
	StateSettings                  // Speed and mode preferences
	StateLeaderboard               // Top ten scores
	StateAchievements              // Unlock list
	StateGameOver                  // Round ended, play again prompt
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateModeSelect:
		return "mode-select"
	case StatePlaying:
		return "playing"
	case StateSettings:
		return "settings"
	case StateLeaderboard:
		return "leaderboard"
	case StateAchievements:
		return "achievements"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
