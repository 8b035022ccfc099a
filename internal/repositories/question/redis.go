package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fitna/internal/models"
)

const (
	questionKeyPrefix = "question:"
	roomKeyPrefix     = "room:"
	questionsSuffix   = ":questions"
)

// Config wires the Redis question store
type Config struct {
	RedisClient *redis.Client
}

// redisRepository implements Repository on Redis hashes and indexes
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed question repository
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

func questionKey(questionID string) string {
	return questionKeyPrefix + questionID
}

func roomQuestionsKey(roomID string) string {
	return roomKeyPrefix + roomID + questionsSuffix
}

// CreateQuestions stores each question as JSON and appends it to the room list
func (r *redisRepository) CreateQuestions(ctx context.Context, input *CreateQuestionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	// Nothing to save
	if len(input.Questions) == 0 {
		return nil
	}

	// Save the whole batch in one transaction; the list keeps insertion order
	pipe := r.client.TxPipeline()
	for _, q := range input.Questions {
		if q == nil || q.ID == "" || q.RoomID == "" {
			return errors.New("question ID and room ID cannot be empty")
		}

		// Marshal the question
		questionJSON, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("failed to marshal question: %w", err)
		}

		pipe.Set(ctx, questionKey(q.ID), questionJSON, 0)
		pipe.RPush(ctx, roomQuestionsKey(q.RoomID), q.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save questions: %w", err)
	}

	return nil
}

// GetQuestionsInRoom retrieves all questions of a room in insertion order
func (r *redisRepository) GetQuestionsInRoom(ctx context.Context, input *GetQuestionsInRoomInput) (*GetQuestionsInRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	// Get the question IDs in insertion order
	questionIDs, err := r.client.LRange(ctx, roomQuestionsKey(input.RoomID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get question IDs: %w", err)
	}

	if len(questionIDs) == 0 {
		return &GetQuestionsInRoomOutput{
			Questions: []*models.Question{},
		}, nil
	}

	keys := make([]string, len(questionIDs))
	for i, id := range questionIDs {
		keys[i] = questionKey(id)
	}

	// Fetch every question in one call
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	questions := make([]*models.Question, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Listed but the key is gone
			continue
		}

		var q models.Question
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question %s: %w", questionIDs[i], err)
		}
		questions = append(questions, &q)
	}

	return &GetQuestionsInRoomOutput{
		Questions: questions,
	}, nil
}
