package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseOrder(t *testing.T) {
	assert.True(t, PhaseWaiting.Before(PhaseWritingQuestions))
	assert.True(t, PhaseWritingQuestions.Before(PhasePlaying))
	assert.True(t, PhasePlaying.Before(PhaseFinished))
	assert.False(t, PhaseFinished.Before(PhasePlaying))
	assert.False(t, PhasePlaying.Before(PhasePlaying))
	assert.False(t, Phase("paused").IsValid())
}

func TestRoomRemainingQuestions(t *testing.T) {
	room := &Room{
		Questions: []*Question{
			{ID: "q1"}, {ID: "q2"}, {ID: "q3"},
		},
		DrawnQuestionIDs:  []string{"q2"},
		CurrentQuestionID: "q2",
	}

	remaining := room.RemainingQuestions()
	assert.Len(t, remaining, 2)
	assert.Equal(t, "q1", remaining[0].ID)
	assert.Equal(t, "q3", remaining[1].ID)
	assert.Equal(t, "q2", room.CurrentQuestion().ID)
}

func TestRoomOtherPlayers(t *testing.T) {
	room := &Room{
		Players: []*Player{{ID: "a"}, {ID: "b"}, {ID: "c"}},
	}

	others := room.OtherPlayers("b")
	assert.Len(t, others, 2)
	assert.Equal(t, "a", others[0].ID)
	assert.Equal(t, "c", others[1].ID)
	assert.Nil(t, room.FindPlayer("z"))
}

func TestRoomReadyToStart(t *testing.T) {
	room := &Room{
		Phase: PhaseWaiting,
		Players: []*Player{
			{ID: "a", HasSubmittedQuestions: true},
			{ID: "b", HasSubmittedQuestions: true},
		},
	}
	assert.False(t, room.ReadyToStart(3))

	room.Players = append(room.Players, &Player{ID: "c"})
	assert.False(t, room.ReadyToStart(3))

	room.Players[2].HasSubmittedQuestions = true
	assert.True(t, room.ReadyToStart(3))

	room.Phase = PhasePlaying
	assert.False(t, room.ReadyToStart(3))
}

func TestRanking(t *testing.T) {
	players := []*Player{
		{ID: "a", Points: 10},
		{ID: "b", Points: 30},
		{ID: "c", Points: 10},
	}

	ranking := Ranking(players)
	assert.Len(t, ranking, 3)
	assert.Equal(t, 1, ranking[0].Rank)
	assert.Equal(t, "b", ranking[0].Player.ID)
	assert.Equal(t, "a", ranking[1].Player.ID)
	assert.Equal(t, "c", ranking[2].Player.ID)
	assert.Equal(t, 3, ranking[2].Rank)

	// input order is untouched
	assert.Equal(t, "a", players[0].ID)
}
