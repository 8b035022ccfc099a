package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/fitna/internal/logging"
	"github.com/KirkDiggler/fitna/internal/models"
	"github.com/KirkDiggler/fitna/internal/services/game"
	"github.com/KirkDiggler/fitna/internal/services/messaging"
)

// Component custom IDs
const (
	ButtonDraw     = "fitna_draw"
	ButtonDenounce = "fitna_denounce"
	ButtonNextTurn = "fitna_next"
	ModalQuestions = "fitna_questions"
)

// Subcommands
const (
	subCreate    = "create"
	subJoin      = "join"
	subQuestions = "questions"
	subStart     = "start"
	subDraw      = "draw"
	subDenounce  = "denounce"
	subAward     = "award"
	subNext      = "next"
	subEnd       = "end"
	subRanking   = "ranking"
	subRoom      = "room"
	subLeave     = "leave"
)

// invocation is one interaction reduced to what the game needs
type invocation struct {
	ChannelID string
	UserID    string
	Username  string
	Options   map[string]*discordgo.ApplicationCommandInteractionDataOption
	Texts     []string
}

func (inv *invocation) stringOption(name string) string {
	if opt, ok := inv.Options[name]; ok && opt.Type == discordgo.ApplicationCommandOptionString {
		return opt.StringValue()
	}
	return ""
}

func (inv *invocation) intOption(name string) int {
	if opt, ok := inv.Options[name]; ok && opt.Type == discordgo.ApplicationCommandOptionInteger {
		return int(opt.IntValue())
	}
	return 0
}

// FitnaCommand handles the /fitna command and its buttons and modal
type FitnaCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	sessions         *SessionStore
	logger           *zap.SugaredLogger
	timeout          time.Duration
}

// NewFitnaCommand creates a new fitna command handler
func NewFitnaCommand(gameService game.Service, messagingService messaging.Service, sessions *SessionStore, logger *zap.SugaredLogger, timeout time.Duration) *FitnaCommand {
	return &FitnaCommand{
		BaseCommand: BaseCommand{
			Name:        "fitna",
			Description: "Le jeu de la fitna : questions anonymes et dénonciations",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subCreate,
					Description: "Créer une salle",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("prenom", "Ton vrai prénom", true),
						stringOption("pseudo", "Ton pseudo pour la partie", true),
						stringOption("prenoms", "Les prénoms des autres joueurs, séparés par des virgules", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subJoin,
					Description: "Rejoindre une salle avec son code",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("code", "Le code de la salle", true),
						stringOption("prenom", "Ton vrai prénom", true),
						stringOption("pseudo", "Ton pseudo pour la partie", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subQuestions,
					Description: "Écrire une question sur chaque autre joueur",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subStart,
					Description: "Lancer la partie",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subDraw,
					Description: "Tirer une carte",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subDenounce,
					Description: "Dénoncer et gagner des points",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subAward,
					Description: "Donner des points à un joueur",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("pseudo", "Le pseudo du joueur", true),
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "points",
							Description: "Nombre de points",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subNext,
					Description: "Passer au tour suivant",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subEnd,
					Description: "Terminer la partie et afficher le classement",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subRanking,
					Description: "Afficher le classement",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subRoom,
					Description: "Afficher l'état de la salle",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subLeave,
					Description: "Quitter la salle",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
		sessions:         sessions,
		logger:           logger.Named("fitna"),
		timeout:          timeout,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// Handle processes a slash command interaction
func (c *FitnaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	// Only /fitna with a subcommand is ours
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	// Flatten the subcommand options
	sub := data.Options[0]
	inv := newInvocation(i)
	for _, opt := range sub.Options {
		inv.Options[opt.Name] = opt
	}

	return c.respond(s, i, sub.Name, inv)
}

// HandleComponent processes the buttons attached to game messages
func (c *FitnaCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	// Each button is a shortcut for a subcommand
	var name string
	switch id := i.MessageComponentData().CustomID; id {
	case ButtonDraw:
		name = subDraw
	case ButtonDenounce:
		name = subDenounce
	case ButtonNextTurn:
		name = subNext
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Bouton inconnu : %s", id))
	}

	return c.respond(s, i, name, newInvocation(i))
}

// HandleModal processes the submitted question form
func (c *FitnaCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	if data.CustomID != ModalQuestions {
		return nil
	}

	// Collect the answers in form order
	inv := newInvocation(i)
	inv.Texts = modalTexts(data)

	ctx, cancel := c.context(inv)
	defer cancel()

	return s.InteractionRespond(i.Interaction, c.submitQuestions(ctx, inv))
}

// respond runs the subcommand and answers the interaction
func (c *FitnaCommand) respond(s *discordgo.Session, i *discordgo.InteractionCreate, name string, inv *invocation) error {
	ctx, cancel := c.context(inv)
	defer cancel()

	return s.InteractionRespond(i.Interaction, c.run(ctx, name, inv))
}

// context carries a caller-scoped logger and the optional timeout
func (c *FitnaCommand) context(inv *invocation) (context.Context, context.CancelFunc) {
	ctx := logging.WithLogger(context.Background(), c.logger.With(
		"channel_id", inv.ChannelID,
		"user_id", inv.UserID,
	))
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

func newInvocation(i *discordgo.InteractionCreate) *invocation {
	inv := &invocation{
		ChannelID: i.ChannelID,
		Options:   make(map[string]*discordgo.ApplicationCommandInteractionDataOption),
	}

	// Guild interactions carry a member, DMs only a user
	switch {
	case i.Member != nil && i.Member.User != nil:
		inv.UserID = i.Member.User.ID
		inv.Username = i.Member.User.Username
		if i.Member.Nick != "" {
			inv.Username = i.Member.Nick
		}
	case i.User != nil:
		inv.UserID = i.User.ID
		inv.Username = i.User.Username
	}

	return inv
}

// modalTexts reads every text input of a submitted modal
func modalTexts(data discordgo.ModalSubmitInteractionData) []string {
	texts := make([]string, 0, len(data.Components))
	for _, row := range data.Components {
		actions, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actions.Components {
			if input, ok := component.(*discordgo.TextInput); ok {
				texts = append(texts, input.Value)
			}
		}
	}
	return texts
}

// run executes a subcommand and always produces a response
func (c *FitnaCommand) run(ctx context.Context, name string, inv *invocation) *discordgo.InteractionResponse {
	var handler func(context.Context, *invocation) (*discordgo.InteractionResponse, error)
	switch name {
	case subCreate:
		handler = c.create
	case subJoin:
		handler = c.join
	case subQuestions:
		handler = c.questions
	case subStart:
		handler = c.start
	case subDraw:
		handler = c.draw
	case subDenounce:
		handler = c.denounce
	case subAward:
		handler = c.award
	case subNext:
		handler = c.next
	case subEnd:
		handler = c.end
	case subRanking:
		handler = c.ranking
	case subRoom:
		handler = c.room
	case subLeave:
		handler = c.leave
	default:
		return messageResponse(fmt.Sprintf("Commande inconnue : %s", name), true)
	}

	// Execute the subcommand
	resp, err := handler(ctx, inv)
	if err != nil {
		return c.failure(ctx, name, err)
	}
	return resp
}

// failure turns a service error into a friendly ephemeral message
func (c *FitnaCommand) failure(ctx context.Context, name string, err error) *discordgo.InteractionResponse {
	logger := logging.FromContext(ctx)

	// Only caller mistakes are echoed back; storage errors stay in the logs
	kind := messaging.ErrorKindPersistence
	detail := ""
	switch {
	case errors.Is(err, game.ErrNoActiveSession):
		kind = messaging.ErrorKindNoSession
	case game.ResultOf(err) == game.ResultNotFound:
		kind = messaging.ErrorKindNotFound
		detail = err.Error()
	case game.ResultOf(err) == game.ResultValidationFailed:
		kind = messaging.ErrorKindValidation
		detail = err.Error()
	default:
		logger.Errorw("command failed", "command", name, "error", err)
	}

	// Get a friendly message for the category
	out, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorKind: kind,
	})
	if msgErr != nil {
		logger.Warnw("failed to get error message", "error", msgErr)
		return errorResponse("Oups", err.Error())
	}

	message := out.Message
	if detail != "" {
		message += "\n`" + detail + "`"
	}
	return errorResponse(out.Title, message)
}

// activeSession returns the caller's session or ErrNoActiveSession
func (c *FitnaCommand) activeSession(inv *invocation) (*game.Session, error) {
	session := c.sessions.Get(inv.ChannelID, inv.UserID)
	if !session.Active() {
		return nil, game.ErrNoActiveSession
	}
	return session, nil
}

// create opens a room with the caller as owner
func (c *FitnaCommand) create(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	out, err := c.gameService.CreateRoom(ctx, &game.CreateRoomInput{
		OwnerRealName:  inv.stringOption("prenom"),
		OwnerPseudo:    inv.stringOption("pseudo"),
		AvailableNames: strings.Split(inv.stringOption("prenoms"), ","),
	})
	if err != nil {
		return nil, err
	}

	// Remember the room for this user in this channel
	c.sessions.Set(inv.ChannelID, inv.UserID, out.Session)

	// Announce the lobby
	phase, err := c.messagingService.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
		Phase:       out.Room.Phase,
		PlayerCount: len(out.Room.Players),
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(renderCreatedRoom(out.Room, phase.Message), false), nil
}

// join enters a room by code
func (c *FitnaCommand) join(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	pseudo := inv.stringOption("pseudo")
	out, err := c.gameService.JoinRoom(ctx, &game.JoinRoomInput{
		Code:     inv.stringOption("code"),
		RealName: inv.stringOption("prenom"),
		Pseudo:   pseudo,
	})
	if err != nil {
		return nil, err
	}

	// Remember the room for this user in this channel
	c.sessions.Set(inv.ChannelID, inv.UserID, out.Session)

	// Get a welcome line
	welcome, err := c.messagingService.GetJoinRoomMessage(ctx, &messaging.GetJoinRoomMessageInput{
		Pseudo: strings.TrimSpace(pseudo),
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Salle %s", out.Room.Code),
		Description: welcome.Message,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Joueurs", Value: fmt.Sprintf("%d", len(out.Room.Players)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Écris tes questions avec /fitna questions"},
	}, false), nil
}

// questions opens the form with one field per other player
func (c *FitnaCommand) questions(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.LoadRoom(ctx, &game.LoadRoomInput{
		RoomID: session.RoomID,
		Fresh:  true,
	})
	if err != nil {
		return nil, err
	}

	// The session may be stale
	me := out.Room.FindPlayer(session.PlayerID)
	if me == nil {
		return nil, game.ErrNoActiveSession
	}
	if me.HasSubmittedQuestions {
		return messageResponse("Tu as déjà envoyé tes questions.", true), nil
	}
	if !out.Room.Phase.IsWaiting() {
		return messageResponse("La partie a déjà commencé.", true), nil
	}

	// A modal holds a limited number of inputs
	others := out.Room.OtherPlayers(me.ID)
	if len(others) == 0 {
		return messageResponse("Attends que d'autres joueurs rejoignent la salle.", true), nil
	}
	if len(others) > maxModalInputs {
		return messageResponse(fmt.Sprintf("Le formulaire accepte au plus %d joueurs en face.", maxModalInputs), true), nil
	}

	return questionsModal(others), nil
}

// submitQuestions saves the form answers
func (c *FitnaCommand) submitQuestions(ctx context.Context, inv *invocation) *discordgo.InteractionResponse {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return c.failure(ctx, subQuestions, err)
	}

	out, err := c.gameService.SubmitQuestions(ctx, &game.SubmitQuestionsInput{
		Session: session,
		Texts:   inv.Texts,
	})
	if err != nil {
		return c.failure(ctx, subQuestions, err)
	}

	return messageResponse(fmt.Sprintf("Questions envoyées ! %d/%d joueurs sont prêts.",
		submittedCount(out.Room), len(out.Room.Players)), true)
}

func (c *FitnaCommand) start(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.StartGame(ctx, &game.StartGameInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	phase, err := c.messagingService.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
		Phase:       out.Room.Phase,
		PlayerCount: len(out.Room.Players),
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Salle %s", out.Room.Code),
		Description: phase.Message,
		Color:       colorPlaying,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Cartes", Value: fmt.Sprintf("%d", len(out.Room.Questions)), Inline: true},
			{Name: "Chrono", Value: fmt.Sprintf("%ds", out.Room.Timer), Inline: true},
		},
	}, false, drawButton()), nil
}

func (c *FitnaCommand) draw(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.DrawCard(ctx, &game.DrawCardInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	// Empty deck
	if out.Question == nil {
		return embedResponse(&discordgo.MessageEmbed{
			Title:       "Plus de cartes",
			Description: "Toutes les questions sont passées. Terminez avec /fitna end.",
			Color:       colorInfo,
		}, false), nil
	}

	// Build the card announcement
	remaining := len(out.Room.RemainingQuestions())
	card, err := c.messagingService.GetDrawMessage(ctx, &messaging.GetDrawMessageInput{
		TargetName: out.Question.TargetName,
		Remaining:  remaining,
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(renderCard(out.Question, card.Title, card.Message, remaining), false,
		denounceButton(), nextTurnButton()), nil
}

func (c *FitnaCommand) denounce(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.Denounce(ctx, &game.DenounceInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	// Prefer the game pseudo over the Discord name
	pseudo := inv.Username
	if me := out.Room.FindPlayer(session.PlayerID); me != nil {
		pseudo = me.Pseudo
	}

	line, err := c.messagingService.GetDenounceMessage(ctx, &messaging.GetDenounceMessageInput{
		Pseudo: pseudo,
		Points: out.Points,
	})
	if err != nil {
		return nil, err
	}

	return messageResponse(line.Message, false), nil
}

// award gives points to the player with the given pseudo
func (c *FitnaCommand) award(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	loaded, err := c.gameService.LoadRoom(ctx, &game.LoadRoomInput{
		RoomID: session.RoomID,
		Fresh:  true,
	})
	if err != nil {
		return nil, err
	}

	// Resolve the pseudo to a player ID
	pseudo := strings.TrimSpace(inv.stringOption("pseudo"))
	target := findByPseudo(loaded.Room, pseudo)
	if target == nil {
		return nil, fmt.Errorf("%w: player %q", game.ErrNotFound, pseudo)
	}

	out, err := c.gameService.AddPoints(ctx, &game.AddPointsInput{
		Session:  session,
		PlayerID: target.ID,
		Points:   inv.intOption("points"),
	})
	if err != nil {
		return nil, err
	}

	return messageResponse(fmt.Sprintf("%s a maintenant %d points.", target.Pseudo, out.Points), false), nil
}

func (c *FitnaCommand) next(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.NextTurn(ctx, &game.NextTurnInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       "Tour suivant",
		Description: fmt.Sprintf("Chrono remis à %d secondes.", out.Room.Timer),
		Color:       colorPlaying,
	}, false, drawButton()), nil
}

func (c *FitnaCommand) end(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.EndGame(ctx, &game.EndGameInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	// Comment on the winner in the footer
	embed := renderRanking("Classement final", out.Ranking)
	if len(out.Ranking) > 0 {
		winner := out.Ranking[0]
		comment, err := c.messagingService.GetRankingMessage(ctx, &messaging.GetRankingMessageInput{
			Pseudo:       winner.Player.Pseudo,
			Rank:         winner.Rank,
			Points:       winner.Player.Points,
			TotalPlayers: len(out.Ranking),
		})
		if err != nil {
			return nil, err
		}
		embed.Footer = &discordgo.MessageEmbedFooter{Text: comment.Message}
	}

	return embedResponse(embed, false), nil
}

func (c *FitnaCommand) ranking(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.GetRanking(ctx, &game.GetRankingInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(renderRanking("Classement", out.Ranking), false), nil
}

// room shows the caller a private view of the room
func (c *FitnaCommand) room(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.LoadRoom(ctx, &game.LoadRoomInput{
		RoomID: session.RoomID,
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(renderRoom(out.Room, session.PlayerID), true), nil
}

func (c *FitnaCommand) leave(ctx context.Context, inv *invocation) (*discordgo.InteractionResponse, error) {
	// Get the caller's session
	session, err := c.activeSession(inv)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.LeaveRoom(ctx, &game.LeaveRoomInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	// Forget the session for this channel
	c.sessions.Delete(inv.ChannelID, inv.UserID)

	logging.FromContext(ctx).Debugw("left room", "room_id", out.RoomID)

	return messageResponse("Tu as quitté la salle.", true), nil
}

func findByPseudo(room *models.Room, pseudo string) *models.Player {
	for _, p := range room.Players {
		if strings.EqualFold(p.Pseudo, pseudo) {
			return p
		}
	}
	return nil
}

func submittedCount(room *models.Room) int {
	n := 0
	for _, p := range room.Players {
		if p.HasSubmittedQuestions {
			n++
		}
	}
	return n
}
