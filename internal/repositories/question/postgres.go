package question

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/KirkDiggler/fitna/internal/models"
)

// questionRecord is the questions table row
type questionRecord struct {
	ID         string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	RoomID     string    `gorm:"column:room_id;type:varchar(36);index;not null"`
	AuthorID   string    `gorm:"column:author_id;type:varchar(36);not null"`
	Text       string    `gorm:"column:text;type:varchar(200);not null"`
	TargetName string    `gorm:"column:target_name;not null"`
	Position   int       `gorm:"column:position;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;index"`

	// Seq is assigned by the database in insertion order
	Seq int64 `gorm:"column:seq;autoIncrement;not null"`
}

func (questionRecord) TableName() string {
	return "questions"
}

// PostgresConfig holds configuration for the PostgreSQL question repository
type PostgresConfig struct {
	DB *gorm.DB
}

// postgresRepository implements the Repository interface using gorm
type postgresRepository struct {
	db *gorm.DB
}

// NewPostgres creates a new PostgreSQL-backed question repository
func NewPostgres(cfg *PostgresConfig) (*postgresRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &postgresRepository{
		db: cfg.DB,
	}, nil
}

// AutoMigrate creates or updates the questions table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&questionRecord{})
}

// CreateQuestions inserts the batch in a single statement
func (r *postgresRepository) CreateQuestions(ctx context.Context, input *CreateQuestionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if len(input.Questions) == 0 {
		return nil
	}

	records := make([]questionRecord, 0, len(input.Questions))
	for _, q := range input.Questions {
		if q == nil || q.ID == "" || q.RoomID == "" {
			return errors.New("question ID and room ID cannot be empty")
		}
		records = append(records, questionRecord{
			ID:         q.ID,
			RoomID:     q.RoomID,
			AuthorID:   q.AuthorID,
			Text:       q.Text,
			TargetName: q.TargetName,
			Position:   q.Position,
			CreatedAt:  q.CreatedAt,
		})
	}

	if err := r.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to save questions: %w", err)
	}

	return nil
}

// GetQuestionsInRoom lists the room's questions in insertion order
func (r *postgresRepository) GetQuestionsInRoom(ctx context.Context, input *GetQuestionsInRoomInput) (*GetQuestionsInRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	var records []questionRecord
	if err := r.db.WithContext(ctx).
		Where("room_id = ?", input.RoomID).
		Order("seq ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	questions := make([]*models.Question, 0, len(records))
	for _, rec := range records {
		questions = append(questions, &models.Question{
			ID:         rec.ID,
			RoomID:     rec.RoomID,
			AuthorID:   rec.AuthorID,
			Text:       rec.Text,
			TargetName: rec.TargetName,
			Position:   rec.Position,
			CreatedAt:  rec.CreatedAt.UTC(),
		})
	}

	return &GetQuestionsInRoomOutput{
		Questions: questions,
	}, nil
}
