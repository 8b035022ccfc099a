package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fitna/internal/draw"
	"github.com/KirkDiggler/fitna/internal/models"
)

type service struct {
	picker draw.Picker
}

// New builds the service around a line picker
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Picker == nil {
		return nil, errors.New("picker cannot be nil")
	}

	return &service{
		picker: cfg.Picker,
	}, nil
}

func (s *service) pick(lines []string) string {
	return lines[s.picker.Pick(len(lines))]
}

// GetJoinRoomMessage returns a welcome line for a new player
func (s *service) GetJoinRoomMessage(ctx context.Context, input *GetJoinRoomMessageInput) (*GetJoinRoomMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch tone {
	case ToneNeutral:
		messages = []string{
			fmt.Sprintf("%s a rejoint la partie.", input.Pseudo),
			fmt.Sprintf("Bienvenue, %s.", input.Pseudo),
		}
	case ToneSpicy:
		messages = []string{
			fmt.Sprintf("%s est là. Les secrets vont tomber.", input.Pseudo),
			fmt.Sprintf("Attention, %s vient d'entrer. Cachez vos dossiers.", input.Pseudo),
			fmt.Sprintf("%s arrive, et la fitna avec.", input.Pseudo),
		}
	default:
		messages = []string{
			fmt.Sprintf("Bienvenue %s ! Prépare tes questions les plus sournoises.", input.Pseudo),
			fmt.Sprintf("%s s'installe. Quelqu'un a prévu du thé ?", input.Pseudo),
			fmt.Sprintf("Tiens, %s ! On parlait justement de toi.", input.Pseudo),
			fmt.Sprintf("%s rejoint la table. Que la fitna commence !", input.Pseudo),
		}
	}

	return &GetJoinRoomMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetPhaseMessage returns a line announcing the room phase
func (s *service) GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch input.Phase {
	case models.PhaseWaiting:
		messages = []string{
			fmt.Sprintf("Salle d'attente : %d joueur(s). Écrivez vos questions !", input.PlayerCount),
			fmt.Sprintf("%d joueur(s) autour de la table. Il manque encore des questions ?", input.PlayerCount),
		}
	case models.PhaseWritingQuestions:
		messages = []string{
			"Chacun écrit ses questions. Pas de triche.",
		}
	case models.PhasePlaying:
		messages = []string{
			"La partie commence ! Piochez une carte.",
			"C'est parti. Que le plus honnête gagne.",
			"Les cartes sont mélangées. Plus de retour en arrière.",
		}
	case models.PhaseFinished:
		messages = []string{
			"Partie terminée ! Place au classement.",
			"Fin de la fitna. Les amitiés survivront peut-être.",
		}
	default:
		return &GetPhaseMessageOutput{
			Message: "Le jeu de la Fitna est en cours.",
		}, nil
	}

	return &GetPhaseMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetDrawMessage returns the title and teaser for a drawn card
func (s *service) GetDrawMessage(ctx context.Context, input *GetDrawMessageInput) (*GetDrawMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	titles := []string{
		"Carte piochée",
		"Nouvelle question",
		"Question anonyme",
	}

	messages := []string{
		fmt.Sprintf("Cette question concerne %s. Réponds ou fais-toi dénoncer.", input.TargetName),
		fmt.Sprintf("%s, tout le monde te regarde.", input.TargetName),
		fmt.Sprintf("Quelqu'un a une question pour %s...", input.TargetName),
	}

	message := s.pick(messages)
	switch input.Remaining {
	case 0:
		message += " C'était la dernière carte !"
	case 1:
		message += " Plus qu'une carte."
	}

	return &GetDrawMessageOutput{
		Title:   s.pick(titles),
		Message: message,
	}, nil
}

// GetDenounceMessage returns a line for a denunciation
func (s *service) GetDenounceMessage(ctx context.Context, input *GetDenounceMessageInput) (*GetDenounceMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		fmt.Sprintf("%s dénonce ! %d points au compteur.", input.Pseudo, input.Points),
		fmt.Sprintf("Balance ! %s passe à %d points.", input.Pseudo, input.Points),
		fmt.Sprintf("%s a parlé. %d points, et quelques ennemis de plus.", input.Pseudo, input.Points),
	}

	return &GetDenounceMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetRankingMessage returns a comment for a player's final rank
func (s *service) GetRankingMessage(ctx context.Context, input *GetRankingMessageInput) (*GetRankingMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch {
	case input.Rank == 1:
		messages = []string{
			fmt.Sprintf("%s remporte la fitna avec %d points !", input.Pseudo, input.Points),
			fmt.Sprintf("Champion de la balance : %s (%d points).", input.Pseudo, input.Points),
		}
	case input.Rank == input.TotalPlayers:
		messages = []string{
			fmt.Sprintf("%s ferme la marche avec %d points. Trop loyal ?", input.Pseudo, input.Points),
			fmt.Sprintf("%s n'a balancé personne. %d points, mais la conscience tranquille.", input.Pseudo, input.Points),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s termine %de avec %d points.", input.Pseudo, input.Rank, input.Points),
			fmt.Sprintf("%de place pour %s (%d points).", input.Rank, input.Pseudo, input.Points),
		}
	}

	return &GetRankingMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var title string
	var messages []string
	switch input.ErrorKind {
	case ErrorKindNotFound:
		title = "Introuvable"
		messages = []string{
			"Cette salle n'existe pas. Vérifie le code !",
			"Aucune trace de cette partie. Un code mal recopié ?",
		}
	case ErrorKindValidation:
		title = "Impossible"
		messages = []string{
			"Ce n'est pas possible pour le moment.",
			"Doucement ! Ce coup-là n'est pas autorisé.",
		}
	case ErrorKindNoSession:
		title = "Pas de partie"
		messages = []string{
			"Tu n'es dans aucune partie. Crée ou rejoins une salle d'abord.",
		}
	default:
		title = "Oups"
		messages = []string{
			"Quelque chose s'est mal passé. Réessaie dans un instant.",
			"Le serveur a perdu le fil. Réessaie.",
		}
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
