package models

// Role identifies a player's part in the game
type Role string

const (
	// RoleInterrogator asks the questions and makes the final guess
	RoleInterrogator Role = "INTERROGATOR"

	// RoleContestantA is the first respondent slot
	RoleContestantA Role = "CONTESTANT_A"

	// RoleContestantB is the second respondent slot
	RoleContestantB Role = "CONTESTANT_B"
)

// Label returns the public letter for a contestant role, empty for other roles
func (r Role) Label() string {
	switch r {
	case RoleContestantA:
		return "A"
	case RoleContestantB:
		return "B"
	default:
		return ""
	}
}

// Display returns the human-facing name for a role
func (r Role) Display() string {
	switch r {
	case RoleInterrogator:
		return "Interrogator"
	case RoleContestantA:
		return "Contestant A"
	case RoleContestantB:
		return "Contestant B"
	default:
		return string(r)
	}
}

// Player represents a participant in a session
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// Role is assigned at registration and never changes
	Role Role

	// IsSimulated marks the contestant whose answers are generated.
	// Unset until the game begins, then assigned exactly once.
	IsSimulated bool
}
