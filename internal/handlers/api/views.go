package api

import (
	"github.com/KirkDiggler/fitna/internal/models"
)

type playerView struct {
	ID                    string `json:"id"`
	Pseudo                string `json:"pseudo"`
	Points                int    `json:"points"`
	HasSubmittedQuestions bool   `json:"has_submitted_questions"`
	IsOwner               bool   `json:"is_owner"`
}

type meView struct {
	PlayerID              string `json:"player_id"`
	RealName              string `json:"real_name"`
	Pseudo                string `json:"pseudo"`
	Points                int    `json:"points"`
	HasSubmittedQuestions bool   `json:"has_submitted_questions"`
}

type questionView struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	TargetName string `json:"target_name"`
}

type roomView struct {
	ID                 string        `json:"id"`
	Code               string        `json:"code"`
	Phase              models.Phase  `json:"phase"`
	OwnerPseudo        string        `json:"owner_pseudo"`
	AvailableNames     []string      `json:"available_names"`
	Players            []playerView  `json:"players"`
	QuestionCount      int           `json:"question_count"`
	RemainingQuestions int           `json:"remaining_questions"`
	CurrentQuestion    *questionView `json:"current_question"`
	Timer              int           `json:"timer"`

	// QuestionTargets are the real names the caller writes about, in order
	QuestionTargets []string `json:"question_targets,omitempty"`
	Me              *meView  `json:"me,omitempty"`
}

type rankingView struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Pseudo   string `json:"pseudo"`
	Points   int    `json:"points"`
}

// newRoomView hides the real names behind pseudos except for the caller
func newRoomView(room *models.Room, playerID string) *roomView {
	if room == nil {
		return nil
	}

	view := &roomView{
		ID:                 room.ID,
		Code:               room.Code,
		Phase:              room.Phase,
		OwnerPseudo:        room.OwnerPseudo,
		AvailableNames:     append([]string{}, room.AvailableNames...),
		Players:            make([]playerView, 0, len(room.Players)),
		QuestionCount:      len(room.Questions),
		RemainingQuestions: len(room.RemainingQuestions()),
		CurrentQuestion:    newQuestionView(room.CurrentQuestion()),
		Timer:              room.Timer,
	}

	for _, p := range room.Players {
		view.Players = append(view.Players, playerView{
			ID:                    p.ID,
			Pseudo:                p.Pseudo,
			Points:                p.Points,
			HasSubmittedQuestions: p.HasSubmittedQuestions,
			IsOwner:               room.IsOwner(p.ID),
		})
	}

	if me := room.FindPlayer(playerID); me != nil {
		view.Me = &meView{
			PlayerID:              me.ID,
			RealName:              me.RealName,
			Pseudo:                me.Pseudo,
			Points:                me.Points,
			HasSubmittedQuestions: me.HasSubmittedQuestions,
		}
		if !me.HasSubmittedQuestions {
			for _, other := range room.OtherPlayers(me.ID) {
				view.QuestionTargets = append(view.QuestionTargets, other.RealName)
			}
		}
	}

	return view
}

func newQuestionView(q *models.Question) *questionView {
	if q == nil {
		return nil
	}
	return &questionView{
		ID:         q.ID,
		Text:       q.Text,
		TargetName: q.TargetName,
	}
}

func newRankingView(entries []models.RankingEntry) []rankingView {
	views := make([]rankingView, 0, len(entries))
	for _, e := range entries {
		views = append(views, rankingView{
			Rank:     e.Rank,
			PlayerID: e.Player.ID,
			Pseudo:   e.Player.Pseudo,
			Points:   e.Player.Points,
		})
	}
	return views
}
