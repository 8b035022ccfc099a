package models

import (
	"time"
)

// Player represents a participant in a room
type Player struct {
	// ID is the unique identifier of the player
	ID string

	// RoomID is the room the player joined
	RoomID string

	// RealName is the identity questions are written about
	RealName string

	// Pseudo is the anonymous display name shown to the table
	Pseudo string

	// Points is the running score, never negative
	Points int

	// HasSubmittedQuestions is set once the player wrote their batch
	HasSubmittedQuestions bool

	// CreatedAt is when the player joined; defines turn order
	CreatedAt time.Time
}
