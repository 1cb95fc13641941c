package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoSession        GameError = "no session exists for this guild"
	ErrSessionActive    GameError = "a game is already active in this guild"
	ErrGameInProgress   GameError = "the game is already in progress"
	ErrAlreadyJoined    GameError = "player is already registered in this session"
	ErrSessionFull      GameError = "this session already has three players"
	ErrNotEnoughPlayers GameError = "need exactly three players before beginning"
	ErrGameNotActive    GameError = "the game is not active"
	ErrNotInterrogator  GameError = "only the interrogator can do that"
	ErrInvalidChoice    GameError = "guess must be A or B"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilResponder     GameError = "responder service cannot be nil"
	ErrNilMessenger     GameError = "messenger cannot be nil"
	ErrNilCoin          GameError = "coin flipper cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
