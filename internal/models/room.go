package models

import (
	"time"
)

// Phase represents the stage a room is in
type Phase string

const (
	// PhaseWaiting indicates the room is gathering players
	PhaseWaiting Phase = "waiting"

	// PhaseWritingQuestions indicates players are writing their questions.
	// No operation currently moves a room into this phase.
	PhaseWritingQuestions Phase = "writing-questions"

	// PhasePlaying indicates cards are being drawn
	PhasePlaying Phase = "playing"

	// PhaseFinished indicates the game is over and the ranking is final
	PhaseFinished Phase = "finished"
)

var phaseOrder = map[Phase]int{
	PhaseWaiting:          0,
	PhaseWritingQuestions: 1,
	PhasePlaying:          2,
	PhaseFinished:         3,
}

// IsValid reports whether p is one of the four known phases
func (p Phase) IsValid() bool {
	_, ok := phaseOrder[p]
	return ok
}

// IsWaiting returns true if the room is still gathering players
func (p Phase) IsWaiting() bool {
	return p == PhaseWaiting
}

// IsPlaying returns true if cards are being drawn
func (p Phase) IsPlaying() bool {
	return p == PhasePlaying
}

// IsFinished returns true if the game is over
func (p Phase) IsFinished() bool {
	return p == PhaseFinished
}

// Before reports whether p comes strictly before other in the phase order
func (p Phase) Before(other Phase) bool {
	return phaseOrder[p] < phaseOrder[other]
}

// Room is a single game session identified by a short code
type Room struct {
	// ID is the unique identifier for the room
	ID string

	// Code is the short uppercase join key shared with friends
	Code string

	// OwnerID is the ID of the player who created the room
	OwnerID string

	// OwnerName is the real name of the owner
	OwnerName string

	// OwnerPseudo is the public alias of the owner
	OwnerPseudo string

	// AvailableNames is the ordered pool of real names joiners may still claim
	AvailableNames []string

	// Players in join order
	Players []*Player

	// Questions in insertion order
	Questions []*Question

	// QuestionCursor counts the questions already drawn
	QuestionCursor int

	// DrawnQuestionIDs lists drawn questions in draw order
	DrawnQuestionIDs []string

	// CurrentQuestionID is the last card drawn, empty before the first draw
	CurrentQuestionID string

	// Phase is the current stage of the game
	Phase Phase

	// Timer is the per-turn countdown in seconds
	Timer int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindPlayer returns the player with the given ID, or nil
func (r *Room) FindPlayer(playerID string) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// OtherPlayers returns every player except playerID, keeping join order
func (r *Room) OtherPlayers(playerID string) []*Player {
	others := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.ID != playerID {
			others = append(others, p)
		}
	}
	return others
}

// RemainingQuestions returns the questions that have not been drawn yet
func (r *Room) RemainingQuestions() []*Question {
	drawn := make(map[string]struct{}, len(r.DrawnQuestionIDs))
	for _, id := range r.DrawnQuestionIDs {
		drawn[id] = struct{}{}
	}

	remaining := make([]*Question, 0, len(r.Questions))
	for _, q := range r.Questions {
		if _, ok := drawn[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}
	return remaining
}

// CurrentQuestion returns the last drawn question, or nil
func (r *Room) CurrentQuestion() *Question {
	if r.CurrentQuestionID == "" {
		return nil
	}
	for _, q := range r.Questions {
		if q.ID == r.CurrentQuestionID {
			return q
		}
	}
	return nil
}

// IsOwner returns true if playerID created the room
func (r *Room) IsOwner(playerID string) bool {
	return playerID != "" && r.OwnerID == playerID
}

// AllSubmitted returns true when every player has written their questions
func (r *Room) AllSubmitted() bool {
	if len(r.Players) == 0 {
		return false
	}
	for _, p := range r.Players {
		if !p.HasSubmittedQuestions {
			return false
		}
	}
	return true
}

// ReadyToStart returns true when the lobby has enough players and all of
// them have submitted their questions
func (r *Room) ReadyToStart(minPlayers int) bool {
	return r.Phase.IsWaiting() && len(r.Players) >= minPlayers && r.AllSubmitted()
}
