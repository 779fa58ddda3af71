package models

// GameStatus represents the current state of the server
type GameStatus string

const (
	// GameStatusLobby indicates the server is accepting players and
	// broadcasting discovery offers
	GameStatusLobby GameStatus = "lobby"

	// GameStatusInProgress indicates the roster is frozen and rounds are running
	GameStatusInProgress GameStatus = "in_progress"
)
