package models

import (
	"time"
)

// MaxQuestionLength is the longest question text accepted, in characters
const MaxQuestionLength = 200

// Question is an anonymous question one player wrote about another
type Question struct {
	// ID is the unique identifier of the question
	ID string

	// RoomID is the room the question belongs to
	RoomID string

	// AuthorID is the player who wrote the question
	AuthorID string

	// Text is the free-form question
	Text string

	// TargetName is the real name the question is about. It is a plain
	// string and does not follow the target player.
	TargetName string

	// Position is the index of the question within its author's batch
	Position int

	CreatedAt time.Time
}
