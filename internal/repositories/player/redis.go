package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fitna/internal/models"
)

const (
	playerKeyPrefix      = "player:"
	roomPlayersKeyPrefix = "room_players:"
)

var markSubmitted = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], 'has_submitted_questions', '1')
return 1
`)

// addPoints returns false (nil reply) when the player does not exist
var addPoints = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return false
end
return redis.call('HINCRBY', KEYS[1], 'points', ARGV[1])
`)

// Config wires the Redis player store
type Config struct {
	RedisClient *redis.Client
}

// redisRepository implements Repository on Redis hashes and indexes
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

func roomPlayersKey(roomID string) string {
	return roomPlayersKeyPrefix + roomID
}

// CreatePlayer stores the player hash and indexes it by join time
func (r *redisRepository) CreatePlayer(ctx context.Context, input *CreatePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.ID == "" || player.RoomID == "" {
		return errors.New("player ID and room ID cannot be empty")
	}

	// Redis has no booleans
	submitted := "0"
	if player.HasSubmittedQuestions {
		submitted = "1"
	}

	// Write the hash and the join-order index together
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, playerKey(player.ID), map[string]interface{}{
		"id":                      player.ID,
		"room_id":                 player.RoomID,
		"real_name":               player.RealName,
		"pseudo":                  player.Pseudo,
		"points":                  player.Points,
		"has_submitted_questions": submitted,
		"created_at":              player.CreatedAt.UnixNano(),
	})
	pipe.ZAdd(ctx, roomPlayersKey(player.RoomID), redis.Z{
		Score:  float64(player.CreatedAt.UnixMicro()),
		Member: player.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	// Get the player hash
	fields, err := r.client.HGetAll(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return parsePlayer(fields)
}

// GetPlayersInRoom retrieves all players of a room ordered by join time
func (r *redisRepository) GetPlayersInRoom(ctx context.Context, input *GetPlayersInRoomInput) (*GetPlayersInRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	// Get the player IDs in join order
	playerIDs, err := r.client.ZRange(ctx, roomPlayersKey(input.RoomID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetPlayersInRoomOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Fetch every hash in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(playerIDs))
	for i, playerID := range playerIDs {
		cmds[i] = pipe.HGetAll(ctx, playerKey(playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// Indexed but hash is gone
			continue
		}

		player, err := parsePlayer(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to parse player %s: %w", playerIDs[i], err)
		}
		players = append(players, player)
	}

	return &GetPlayersInRoomOutput{
		Players: players,
	}, nil
}

// MarkSubmitted sets the submitted flag
func (r *redisRepository) MarkSubmitted(ctx context.Context, input *MarkSubmittedInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	updated, err := markSubmitted.Run(ctx, r.client, []string{playerKey(input.PlayerID)}).Int()
	if err != nil {
		return fmt.Errorf("failed to mark player submitted: %w", err)
	}
	if updated == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// AddPoints increments the points field with HINCRBY
func (r *redisRepository) AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	// The script checks existence and increments atomically
	points, err := addPoints.Run(ctx, r.client, []string{playerKey(input.PlayerID)}, input.Points).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to add points: %w", err)
	}

	return &AddPointsOutput{
		Points: points,
	}, nil
}

func parsePlayer(fields map[string]string) (*models.Player, error) {
	points, err := strconv.Atoi(fields["points"])
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}

	submitted, err := strconv.ParseBool(fields["has_submitted_questions"])
	if err != nil {
		return nil, fmt.Errorf("has_submitted_questions: %w", err)
	}

	nanos, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}

	return &models.Player{
		ID:                    fields["id"],
		RoomID:                fields["room_id"],
		RealName:              fields["real_name"],
		Pseudo:                fields["pseudo"],
		Points:                points,
		HasSubmittedQuestions: submitted,
		CreatedAt:             time.Unix(0, nanos).UTC(),
	}, nil
}
