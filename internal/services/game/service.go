package game

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/fitna/internal/cache"
	"github.com/KirkDiggler/fitna/internal/common/clock"
	"github.com/KirkDiggler/fitna/internal/common/roomcode"
	"github.com/KirkDiggler/fitna/internal/common/uuid"
	"github.com/KirkDiggler/fitna/internal/draw"
	"github.com/KirkDiggler/fitna/internal/models"
	playerRepo "github.com/KirkDiggler/fitna/internal/repositories/player"
	questionRepo "github.com/KirkDiggler/fitna/internal/repositories/question"
	roomRepo "github.com/KirkDiggler/fitna/internal/repositories/room"
)

// service implements the Service interface on top of the three repositories
type service struct {
	maxPlayers      int
	minPlayers      int
	turnSeconds     int
	maxCodeAttempts int

	roomRepo     roomRepo.Repository
	playerRepo   playerRepo.Repository
	questionRepo questionRepo.Repository

	clock         clock.Clock
	uuidGenerator uuid.UUID
	codeGenerator roomcode.Generator
	picker        draw.Picker
	cache         cache.RoomCache
	logger        *zap.SugaredLogger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.QuestionRepo == nil {
		return nil, ErrNilQuestionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.Cache == nil {
		return nil, ErrNilCache
	}

	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	// Zero means the default, negative durations are rejected
	if cfg.TurnSeconds < 0 {
		return nil, ErrInvalidTurnLength
	}

	s := &service{
		maxPlayers:      cfg.MaxPlayers,
		minPlayers:      cfg.MinPlayers,
		turnSeconds:     cfg.TurnSeconds,
		maxCodeAttempts: cfg.MaxCodeAttempts,
		roomRepo:        cfg.RoomRepo,
		playerRepo:      cfg.PlayerRepo,
		questionRepo:    cfg.QuestionRepo,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		codeGenerator:   cfg.CodeGenerator,
		picker:          cfg.Picker,
		cache:           cfg.Cache,
		logger:          cfg.Logger.Named("game"),
	}

	// Fill in the defaults
	if s.maxPlayers <= 0 {
		s.maxPlayers = DefaultMaxPlayers
	}
	if s.minPlayers <= 0 {
		s.minPlayers = DefaultMinPlayers
	}
	if s.turnSeconds == 0 {
		s.turnSeconds = DefaultTurnSeconds
	}
	if s.maxCodeAttempts <= 0 {
		s.maxCodeAttempts = DefaultMaxCodeAttempts
	}

	return s, nil
}

// CreateRoom persists the room, then the owner, then links the two
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}

	// Validate the owner identity
	ownerName := strings.TrimSpace(input.OwnerRealName)
	ownerPseudo := strings.TrimSpace(input.OwnerPseudo)
	if ownerName == "" {
		return nil, invalid("owner real name is required")
	}
	if ownerPseudo == "" {
		return nil, invalid("owner pseudo is required")
	}

	// Build the room without an owner; the owner ID is back-filled below
	now := s.clock.Now()
	room := &models.Room{
		ID:             s.uuidGenerator.NewUUID(),
		OwnerName:      ownerName,
		OwnerPseudo:    ownerPseudo,
		AvailableNames: normalizeNames(input.AvailableNames, ownerName),
		Phase:          models.PhaseWaiting,
		Timer:          s.turnSeconds,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Save the room under an unused code
	if err := s.createWithFreshCode(ctx, room); err != nil {
		return nil, err
	}

	// Create the owner as the first player
	owner := &models.Player{
		ID:        s.uuidGenerator.NewUUID(),
		RoomID:    room.ID,
		RealName:  ownerName,
		Pseudo:    ownerPseudo,
		CreatedAt: now,
	}

	if err := s.playerRepo.CreatePlayer(ctx, &playerRepo.CreatePlayerInput{
		Player: owner,
	}); err != nil {
		s.logger.Errorw("failed to create owner", "room_id", room.ID, "error", err)
		return nil, persistence("create owner", err)
	}

	// Link the owner to the room
	if err := s.roomRepo.SetOwner(ctx, &roomRepo.SetOwnerInput{
		RoomID:  room.ID,
		OwnerID: owner.ID,
		Now:     now,
	}); err != nil {
		s.logger.Errorw("failed to set room owner", "room_id", room.ID, "error", err)
		return nil, persistence("set owner", err)
	}

	snapshot, err := s.loadRoom(ctx, room.ID, true)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("room created", "room_id", room.ID, "code", room.Code)

	return &CreateRoomOutput{
		Code: room.Code,
		Session: &Session{
			RoomID:   room.ID,
			PlayerID: owner.ID,
		},
		Room: snapshot,
	}, nil
}

func (s *service) createWithFreshCode(ctx context.Context, room *models.Room) error {
	for attempt := 1; attempt <= s.maxCodeAttempts; attempt++ {
		room.Code = s.codeGenerator.NewCode()

		// Reserving the code and saving the room happen together
		err := s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{
			Room: room,
		})
		if err == nil {
			return nil
		}

		// Only a collision is worth another attempt
		if !errors.Is(err, roomRepo.ErrCodeTaken) {
			s.logger.Errorw("failed to create room", "room_id", room.ID, "error", err)
			return persistence("create room", err)
		}

		s.logger.Debugw("room code taken", "code", room.Code, "attempt", attempt)
	}

	return persistence("create room", roomRepo.ErrCodeTaken)
}

// normalizeNames trims the pool, dropping blanks, duplicates and the owner
func normalizeNames(names []string, ownerName string) []string {
	seen := map[string]struct{}{ownerName: {}}
	pool := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		pool = append(pool, name)
	}
	return pool
}

// JoinRoom claims a real name from the pool and creates the player
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}

	// Codes are matched case-insensitively
	code := roomcode.Normalize(input.Code)
	realName := strings.TrimSpace(input.RealName)
	pseudo := strings.TrimSpace(input.Pseudo)
	if realName == "" {
		return nil, invalid("real name is required")
	}
	if pseudo == "" {
		return nil, invalid("pseudo is required")
	}
	// A malformed code cannot name any room
	if !roomcode.IsValid(code) {
		return nil, notFound("room %q", code)
	}

	// Get the room
	room, err := s.roomRepo.GetRoomByCode(ctx, &roomRepo.GetRoomByCodeInput{
		Code: code,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, notFound("room %q", code)
		}
		return nil, persistence("get room", err)
	}

	// Check if the room is still in the lobby
	if !room.Phase.IsWaiting() {
		return nil, invalid("room %s is no longer accepting players", code)
	}

	playersOutput, err := s.playerRepo.GetPlayersInRoom(ctx, &playerRepo.GetPlayersInRoomInput{
		RoomID: room.ID,
	})
	if err != nil {
		return nil, persistence("get players", err)
	}
	// Check if the room is full
	if len(playersOutput.Players) >= s.maxPlayers {
		return nil, invalid("room %s is full", code)
	}

	// Claim the real name; two joiners racing for it cannot both win
	claimOutput, err := s.roomRepo.ClaimName(ctx, &roomRepo.ClaimNameInput{
		RoomID:   room.ID,
		RealName: realName,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, notFound("room %q", code)
		}
		return nil, persistence("claim name", err)
	}
	if !claimOutput.Claimed {
		return nil, invalid("name %q is not available", realName)
	}

	// Create the player
	player := &models.Player{
		ID:        s.uuidGenerator.NewUUID(),
		RoomID:    room.ID,
		RealName:  realName,
		Pseudo:    pseudo,
		CreatedAt: s.clock.Now(),
	}

	if err := s.playerRepo.CreatePlayer(ctx, &playerRepo.CreatePlayerInput{
		Player: player,
	}); err != nil {
		s.logger.Errorw("failed to create player", "room_id", room.ID, "error", err)

		// Give the name back so someone else can take it
		if releaseErr := s.roomRepo.ReleaseName(ctx, &roomRepo.ReleaseNameInput{
			RoomID:   room.ID,
			RealName: realName,
		}); releaseErr != nil {
			s.logger.Errorw("failed to release name", "room_id", room.ID, "name", realName, "error", releaseErr)
		}
		return nil, persistence("create player", err)
	}

	// Invalidate and rebuild the snapshot
	s.cache.Delete(room.ID)
	snapshot, err := s.loadRoom(ctx, room.ID, true)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player joined", "room_id", room.ID, "player_id", player.ID)

	return &JoinRoomOutput{
		Session: &Session{
			RoomID:   room.ID,
			PlayerID: player.ID,
		},
		Room: snapshot,
	}, nil
}

// LoadRoom returns the cached snapshot unless Fresh is set
func (s *service) LoadRoom(ctx context.Context, input *LoadRoomInput) (*LoadRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, invalid("room ID is required")
	}

	room, err := s.loadRoom(ctx, input.RoomID, input.Fresh)
	if err != nil {
		return nil, err
	}

	return &LoadRoomOutput{
		Room: room,
	}, nil
}

// loadRoom assembles the room with its players and questions. The cache
// generation is read before the store so a snapshot that raced with a
// mutation is not cached over the mutation's own.
func (s *service) loadRoom(ctx context.Context, roomID string, fresh bool) (*models.Room, error) {
	// Serve from the cache when allowed
	if !fresh {
		if room, ok := s.cache.Get(roomID); ok {
			return room, nil
		}
	}

	generation := s.cache.Generation(roomID)

	var (
		room      *models.Room
		players   []*models.Player
		questions []*models.Question
	)

	// Read the three parts concurrently
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		room, err = s.roomRepo.GetRoom(gctx, &roomRepo.GetRoomInput{
			RoomID: roomID,
		})
		return err
	})
	g.Go(func() error {
		out, err := s.playerRepo.GetPlayersInRoom(gctx, &playerRepo.GetPlayersInRoomInput{
			RoomID: roomID,
		})
		if err != nil {
			return err
		}
		players = out.Players
		return nil
	})
	g.Go(func() error {
		out, err := s.questionRepo.GetQuestionsInRoom(gctx, &questionRepo.GetQuestionsInRoomInput{
			RoomID: roomID,
		})
		if err != nil {
			return err
		}
		questions = out.Questions
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, notFound("room %s", roomID)
		}
		return nil, persistence("load room", err)
	}

	room.Players = players
	room.Questions = questions

	if !s.cache.Add(roomID, generation, room) {
		s.logger.Debugw("skipped caching outdated snapshot", "room_id", roomID)
	}

	return room, nil
}

// sessionRoom loads a fresh snapshot of the session's room and checks that
// the session player belongs to it
func (s *service) sessionRoom(ctx context.Context, session *Session) (*models.Room, error) {
	if !session.Active() {
		return nil, ErrNoActiveSession
	}

	room, err := s.loadRoom(ctx, session.RoomID, true)
	if err != nil {
		return nil, err
	}

	// The session player must still be part of the room
	if room.FindPlayer(session.PlayerID) == nil {
		return nil, notFound("player %s in room %s", session.PlayerID, session.RoomID)
	}

	return room, nil
}

// SubmitQuestions pairs texts[i] with the i-th other player
func (s *service) SubmitQuestions(ctx context.Context, input *SubmitQuestionsInput) (*SubmitQuestionsOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}

	room, err := s.sessionRoom(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	// Questions are written in the lobby only
	if !room.Phase.IsWaiting() {
		return nil, invalid("questions can only be written in the lobby")
	}

	// Each player submits exactly once
	author := room.FindPlayer(input.Session.PlayerID)
	if author.HasSubmittedQuestions {
		return nil, invalid("questions already submitted")
	}

	// One question per other player, in join order
	others := room.OtherPlayers(author.ID)
	if len(input.Texts) != len(others) {
		return nil, invalid("expected %d questions, got %d", len(others), len(input.Texts))
	}

	// Build the questions, each aimed at the matching player's real name
	now := s.clock.Now()
	questions := make([]*models.Question, 0, len(others))
	for i, text := range input.Texts {
		if utf8.RuneCountInString(text) > models.MaxQuestionLength {
			return nil, invalid("question %d is longer than %d characters", i+1, models.MaxQuestionLength)
		}
		questions = append(questions, &models.Question{
			ID:         s.uuidGenerator.NewUUID(),
			RoomID:     room.ID,
			AuthorID:   author.ID,
			Text:       text,
			TargetName: others[i].RealName,
			Position:   i,
			CreatedAt:  now,
		})
	}

	// Save the questions as one batch
	if err := s.questionRepo.CreateQuestions(ctx, &questionRepo.CreateQuestionsInput{
		Questions: questions,
	}); err != nil {
		s.logger.Errorw("failed to save questions", "room_id", room.ID, "player_id", author.ID, "error", err)
		return nil, persistence("create questions", err)
	}

	// Flag the author for the readiness check
	if err := s.playerRepo.MarkSubmitted(ctx, &playerRepo.MarkSubmittedInput{
		PlayerID: author.ID,
	}); err != nil {
		s.logger.Errorw("failed to mark submitted", "room_id", room.ID, "player_id", author.ID, "error", err)
		return nil, persistence("mark submitted", err)
	}

	// Invalidate and rebuild the snapshot
	s.cache.Delete(room.ID)
	snapshot, err := s.loadRoom(ctx, room.ID, true)
	if err != nil {
		return nil, err
	}

	return &SubmitQuestionsOutput{
		Room: snapshot,
	}, nil
}

// StartGame requires a full lobby where everyone has submitted
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}

	room, err := s.sessionRoom(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	// Leaving the lobby needs enough players who have all written their questions
	if room.Phase.IsWaiting() && !room.ReadyToStart(s.minPlayers) {
		return nil, invalid("need %d players who all submitted their questions", s.minPlayers)
	}

	snapshot, err := s.movePhase(ctx, room, models.PhasePlaying)
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{
		Room: snapshot,
	}, nil
}

// EndGame finishes the room and returns the final ranking
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}

	room, err := s.sessionRoom(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.movePhase(ctx, room, models.PhaseFinished)
	if err != nil {
		return nil, err
	}

	return &EndGameOutput{
		Room:    snapshot,
		Ranking: models.Ranking(snapshot.Players),
	}, nil
}

func (s *service) movePhase(ctx context.Context, room *models.Room, phase models.Phase) (*models.Room, error) {
	// Phases only move forward
	if phase.Before(room.Phase) {
		return nil, invalid("room is already %s", room.Phase)
	}

	if err := s.roomRepo.UpdatePhase(ctx, &roomRepo.UpdatePhaseInput{
		RoomID: room.ID,
		Phase:  phase,
		Now:    s.clock.Now(),
	}); err != nil {
		s.logger.Errorw("failed to update phase", "room_id", room.ID, "phase", phase, "error", err)
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, notFound("room %s", room.ID)
		}
		return nil, persistence("update phase", err)
	}

	// Invalidate the snapshot
	s.cache.Delete(room.ID)
	s.logger.Infow("phase changed", "room_id", room.ID, "from", room.Phase, "to", phase)

	return s.loadRoom(ctx, room.ID, true)
}

// NextTurn resets the countdown of a playing room
func (s *service) NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}

	room, err := s.sessionRoom(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	// The countdown only runs while playing
	if !room.Phase.IsPlaying() {
		return nil, invalid("room is %s, not playing", room.Phase)
	}

	// Reset the timer

	if err := s.roomRepo.UpdateTimer(ctx, &roomRepo.UpdateTimerInput{
		RoomID:  room.ID,
		Seconds: s.turnSeconds,
		Now:     s.clock.Now(),
	}); err != nil {
		s.logger.Errorw("failed to reset timer", "room_id", room.ID, "error", err)
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, notFound("room %s", room.ID)
		}
		return nil, persistence("update timer", err)
	}

	// Invalidate and rebuild the snapshot
	s.cache.Delete(room.ID)
	snapshot, err := s.loadRoom(ctx, room.ID, true)
	if err != nil {
		return nil, err
	}

	return &NextTurnOutput{
		Room: snapshot,
	}, nil
}

// DrawCard picks uniformly among the questions not drawn yet
func (s *service) DrawCard(ctx context.Context, input *DrawCardInput) (*DrawCardOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}

	room, err := s.sessionRoom(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	// No draws once the game is over
	if room.Phase.IsFinished() {
		return nil, invalid("game is over")
	}

	// An empty deck is not an error
	remaining := room.RemainingQuestions()
	if len(remaining) == 0 {
		return &DrawCardOutput{
			Room: room,
		}, nil
	}

	// Pick a card
	question := remaining[s.picker.Pick(len(remaining))]

	// Record it only if nobody else drew since the snapshot

	if _, err := s.roomRepo.RecordDraw(ctx, &roomRepo.RecordDrawInput{
		RoomID:         room.ID,
		QuestionID:     question.ID,
		ExpectedCursor: room.QuestionCursor,
		Now:            s.clock.Now(),
	}); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrCursorMoved):
			s.cache.Delete(room.ID)
			return nil, invalid("another card was drawn at the same time")
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			return nil, notFound("room %s", room.ID)
		default:
			s.logger.Errorw("failed to record draw", "room_id", room.ID, "error", err)
			return nil, persistence("record draw", err)
		}
	}

	// Invalidate and rebuild the snapshot
	s.cache.Delete(room.ID)
	snapshot, err := s.loadRoom(ctx, room.ID, true)
	if err != nil {
		return nil, err
	}

	return &DrawCardOutput{
		Question: question,
		Room:     snapshot,
	}, nil
}

// Denounce awards DenouncePoints to the session player
func (s *service) Denounce(ctx context.Context, input *DenounceInput) (*DenounceOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}
	if !input.Session.Active() {
		return nil, ErrNoActiveSession
	}

	// A denunciation is a fixed award to the denouncer
	out, err := s.AddPoints(ctx, &AddPointsInput{
		Session:  input.Session,
		PlayerID: input.Session.PlayerID,
		Points:   DenouncePoints,
	})
	if err != nil {
		return nil, err
	}

	return &DenounceOutput{
		Points: out.Points,
		Room:   out.Room,
	}, nil
}

// AddPoints increments the player's total in a single store operation
func (s *service) AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}
	if !input.Session.Active() {
		return nil, ErrNoActiveSession
	}
	if input.PlayerID == "" {
		return nil, invalid("player ID is required")
	}
	if input.Points < 0 {
		return nil, invalid("points cannot be negative")
	}

	// Get the player
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, notFound("player %s", input.PlayerID)
		}
		return nil, persistence("get player", err)
	}
	// Points can only go to someone in the caller's room
	if player.RoomID != input.Session.RoomID {
		return nil, notFound("player %s in room %s", input.PlayerID, input.Session.RoomID)
	}

	// Increment in the store so concurrent awards are never lost
	out, err := s.playerRepo.AddPoints(ctx, &playerRepo.AddPointsInput{
		PlayerID: input.PlayerID,
		Points:   input.Points,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, notFound("player %s", input.PlayerID)
		}
		s.logger.Errorw("failed to add points", "player_id", input.PlayerID, "error", err)
		return nil, persistence("add points", err)
	}

	// Invalidate and rebuild the snapshot
	s.cache.Delete(input.Session.RoomID)
	snapshot, err := s.loadRoom(ctx, input.Session.RoomID, true)
	if err != nil {
		return nil, err
	}

	return &AddPointsOutput{
		Points: out.Points,
		Room:   snapshot,
	}, nil
}

// LeaveRoom forgets the session; the room and player rows remain stored
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	if input == nil || !input.Session.Active() {
		return nil, ErrNoActiveSession
	}

	// Drop the snapshot and forget the session
	roomID := input.Session.RoomID
	s.cache.Delete(roomID)
	input.Session.Clear()

	s.logger.Debugw("session cleared", "room_id", roomID)

	return &LeaveRoomOutput{
		RoomID: roomID,
	}, nil
}

// GetRanking ranks the players of the session room by points
func (s *service) GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error) {
	if input == nil {
		return nil, invalid("input cannot be nil")
	}

	room, err := s.sessionRoom(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	// Rank from the fresh snapshot
	return &GetRankingOutput{
		Ranking: models.Ranking(room.Players),
		Room:    room,
	}, nil
}
