package room

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
	roomKeyPrefix = "room:"
	codeKeyPrefix = "room_code:"
	namesSuffix   = ":names"
	drawnSuffix   = ":drawn"
)

// hsetIfExists writes the given field/value pairs only when the hash exists
var hsetIfExists = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], unpack(ARGV))
return 1
`)

// recordDraw appends a drawn question when the cursor matches ARGV[1].
// Returns -2 for a missing room, -1 for a moved cursor, else the new cursor.
var recordDraw = redis.NewScript(`
local cursor = redis.call('HGET', KEYS[1], 'question_cursor')
if not cursor then
	return -2
end
if tonumber(cursor) ~= tonumber(ARGV[1]) then
	return -1
end
redis.call('RPUSH', KEYS[2], ARGV[2])
redis.call('HSET', KEYS[1], 'current_question_id', ARGV[2], 'updated_at', ARGV[3])
return redis.call('HINCRBY', KEYS[1], 'question_cursor', 1)
`)

// Config wires the Redis room store
type Config struct {
	RedisClient *redis.Client
}

// redisRepository implements Repository on Redis hashes and indexes
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
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

func roomKey(roomID string) string {
	return roomKeyPrefix + roomID
}

func namesKey(roomID string) string {
	return roomKeyPrefix + roomID + namesSuffix
}

func drawnKey(roomID string) string {
	return roomKeyPrefix + roomID + drawnSuffix
}

func codeKey(code string) string {
	return codeKeyPrefix + code
}

// CreateRoom reserves the room code and stores the room hash and name pool
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	room := input.Room
	if room.ID == "" || room.Code == "" {
		return errors.New("room ID and code cannot be empty")
	}

	// Reserve the code first so two rooms never share it
	reserved, err := r.client.SetNX(ctx, codeKey(room.Code), room.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve room code: %w", err)
	}
	if !reserved {
		return ErrCodeTaken
	}

	// Save the room hash and its lists
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, roomKey(room.ID), map[string]interface{}{
		"id":                  room.ID,
		"code":                room.Code,
		"owner_id":            room.OwnerID,
		"owner_name":          room.OwnerName,
		"owner_pseudo":        room.OwnerPseudo,
		"phase":               string(room.Phase),
		"question_cursor":     room.QuestionCursor,
		"timer":               room.Timer,
		"current_question_id": room.CurrentQuestionID,
		"created_at":          room.CreatedAt.UnixNano(),
		"updated_at":          room.UpdatedAt.UnixNano(),
	})
	if len(room.AvailableNames) > 0 {
		pipe.RPush(ctx, namesKey(room.ID), toArgs(room.AvailableNames)...)
	}
	if len(room.DrawnQuestionIDs) > 0 {
		pipe.RPush(ctx, drawnKey(room.ID), toArgs(room.DrawnQuestionIDs)...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	// Read the hash and both lists in one round trip
	pipe := r.client.Pipeline()
	fieldsCmd := pipe.HGetAll(ctx, roomKey(input.RoomID))
	namesCmd := pipe.LRange(ctx, namesKey(input.RoomID), 0, -1)
	drawnCmd := pipe.LRange(ctx, drawnKey(input.RoomID), 0, -1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	fields := fieldsCmd.Val()
	if len(fields) == 0 {
		return nil, ErrRoomNotFound
	}

	room, err := parseRoom(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to parse room %s: %w", input.RoomID, err)
	}
	room.AvailableNames = namesCmd.Val()
	room.DrawnQuestionIDs = drawnCmd.Val()

	return room, nil
}

// GetRoomByCode retrieves a room through the code index
func (r *redisRepository) GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*models.Room, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	// Resolve the code to a room ID
	roomID, err := r.client.Get(ctx, codeKey(input.Code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room ID for code: %w", err)
	}

	return r.GetRoom(ctx, &GetRoomInput{
		RoomID: roomID,
	})
}

// SetOwner back-fills the owner ID
func (r *redisRepository) SetOwner(ctx context.Context, input *SetOwnerInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.updateFields(ctx, input.RoomID,
		"owner_id", input.OwnerID,
		"updated_at", input.Now.UnixNano(),
	)
}

// ClaimName removes the first occurrence of the name from the pool
func (r *redisRepository) ClaimName(ctx context.Context, input *ClaimNameInput) (*ClaimNameOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	// LREM is atomic, so only one claimant removes the name
	removed, err := r.client.LRem(ctx, namesKey(input.RoomID), 1, input.RealName).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim name: %w", err)
	}

	return &ClaimNameOutput{
		Claimed: removed == 1,
	}, nil
}

// ReleaseName appends the name back to the pool
func (r *redisRepository) ReleaseName(ctx context.Context, input *ReleaseNameInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	if err := r.client.RPush(ctx, namesKey(input.RoomID), input.RealName).Err(); err != nil {
		return fmt.Errorf("failed to release name: %w", err)
	}

	return nil
}

// UpdatePhase sets the phase field
func (r *redisRepository) UpdatePhase(ctx context.Context, input *UpdatePhaseInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.updateFields(ctx, input.RoomID,
		"phase", string(input.Phase),
		"updated_at", input.Now.UnixNano(),
	)
}

// UpdateTimer sets the timer field
func (r *redisRepository) UpdateTimer(ctx context.Context, input *UpdateTimerInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.updateFields(ctx, input.RoomID,
		"timer", input.Seconds,
		"updated_at", input.Now.UnixNano(),
	)
}

// RecordDraw runs the conditional draw script
func (r *redisRepository) RecordDraw(ctx context.Context, input *RecordDrawInput) (*RecordDrawOutput, error) {
	if input == nil || input.RoomID == "" || input.QuestionID == "" {
		return nil, errors.New("input, room ID and question ID cannot be empty")
	}

	// Compare the cursor and append the draw in one script
	cursor, err := recordDraw.Run(ctx, r.client,
		[]string{roomKey(input.RoomID), drawnKey(input.RoomID)},
		input.ExpectedCursor, input.QuestionID, input.Now.UnixNano(),
	).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to record draw: %w", err)
	}

	switch cursor {
	case -2:
		return nil, ErrRoomNotFound
	case -1:
		return nil, ErrCursorMoved
	}

	return &RecordDrawOutput{
		Cursor: cursor,
	}, nil
}

func (r *redisRepository) updateFields(ctx context.Context, roomID string, pairs ...interface{}) error {
	updated, err := hsetIfExists.Run(ctx, r.client, []string{roomKey(roomID)}, pairs...).Int()
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	if updated == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func parseRoom(fields map[string]string) (*models.Room, error) {
	cursor, err := strconv.Atoi(fields["question_cursor"])
	if err != nil {
		return nil, fmt.Errorf("question_cursor: %w", err)
	}

	timer, err := strconv.Atoi(fields["timer"])
	if err != nil {
		return nil, fmt.Errorf("timer: %w", err)
	}

	createdAt, err := parseNanos(fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}

	updatedAt, err := parseNanos(fields["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("updated_at: %w", err)
	}

	return &models.Room{
		ID:                fields["id"],
		Code:              fields["code"],
		OwnerID:           fields["owner_id"],
		OwnerName:         fields["owner_name"],
		OwnerPseudo:       fields["owner_pseudo"],
		Phase:             models.Phase(fields["phase"]),
		QuestionCursor:    cursor,
		Timer:             timer,
		CurrentQuestionID: fields["current_question_id"],
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

func parseNanos(v string) (time.Time, error) {
	nanos, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, nanos).UTC(), nil
}

func toArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
