package models

import (
	"time"
)

// Player represents a participant admitted into the current game
type Player struct {
	// ID is the unique identifier assigned at admission
	ID string

	// Name is the display name received in the handshake
	Name string

	// Addr is the remote address of the player's connection
	Addr string

	// JoinedAt is when the player completed the handshake
	JoinedAt time.Time
}
