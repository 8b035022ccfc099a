package room

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/KirkDiggler/fitna/internal/models"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint failure
const uniqueViolation = "23505"

// roomRecord is the rooms table row
type roomRecord struct {
	ID                string         `gorm:"column:id;primaryKey;type:varchar(36)"`
	Code              string         `gorm:"column:code;type:varchar(6);uniqueIndex;not null"`
	OwnerID           string         `gorm:"column:owner_id;type:varchar(36)"`
	OwnerName         string         `gorm:"column:owner_name"`
	OwnerPseudo       string         `gorm:"column:owner_pseudo"`
	AvailableNames    pq.StringArray `gorm:"column:available_names;type:text[]"`
	Phase             string         `gorm:"column:phase;type:varchar(32);not null"`
	QuestionCursor    int            `gorm:"column:question_cursor;not null"`
	DrawnQuestionIDs  pq.StringArray `gorm:"column:drawn_question_ids;type:text[]"`
	CurrentQuestionID string         `gorm:"column:current_question_id;type:varchar(36)"`
	Timer             int            `gorm:"column:timer;not null"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
}

func (roomRecord) TableName() string {
	return "rooms"
}

// PostgresConfig holds configuration for the PostgreSQL room repository
type PostgresConfig struct {
	DB *gorm.DB
}

// postgresRepository implements the Repository interface using gorm
type postgresRepository struct {
	db *gorm.DB
}

// NewPostgres creates a new PostgreSQL-backed room repository
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

// AutoMigrate creates or updates the rooms table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&roomRecord{})
}

// CreateRoom inserts the room row; the unique index on code guards collisions
func (r *postgresRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	record := toRecord(input.Room)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrCodeTaken
		}
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID
func (r *postgresRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	return r.first(ctx, "id = ?", input.RoomID)
}

// GetRoomByCode retrieves a room by code
func (r *postgresRepository) GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*models.Room, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	return r.first(ctx, "code = ?", input.Code)
}

// SetOwner back-fills the owner ID
func (r *postgresRepository) SetOwner(ctx context.Context, input *SetOwnerInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.update(ctx, input.RoomID, map[string]interface{}{
		"owner_id":   input.OwnerID,
		"updated_at": input.Now,
	})
}

// ClaimName removes the name from the pool only if it is still there
func (r *postgresRepository) ClaimName(ctx context.Context, input *ClaimNameInput) (*ClaimNameOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	result := r.db.WithContext(ctx).
		Model(&roomRecord{}).
		Where("id = ? AND ? = ANY(available_names)", input.RoomID, input.RealName).
		UpdateColumn("available_names", gorm.Expr("array_remove(available_names, ?)", input.RealName))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to claim name: %w", result.Error)
	}

	return &ClaimNameOutput{
		Claimed: result.RowsAffected == 1,
	}, nil
}

// ReleaseName appends the name back to the pool
func (r *postgresRepository) ReleaseName(ctx context.Context, input *ReleaseNameInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	result := r.db.WithContext(ctx).
		Model(&roomRecord{}).
		Where("id = ?", input.RoomID).
		UpdateColumn("available_names", gorm.Expr("array_append(available_names, ?)", input.RealName))
	if result.Error != nil {
		return fmt.Errorf("failed to release name: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// UpdatePhase sets the phase column
func (r *postgresRepository) UpdatePhase(ctx context.Context, input *UpdatePhaseInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.update(ctx, input.RoomID, map[string]interface{}{
		"phase":      string(input.Phase),
		"updated_at": input.Now,
	})
}

// UpdateTimer sets the timer column
func (r *postgresRepository) UpdateTimer(ctx context.Context, input *UpdateTimerInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.update(ctx, input.RoomID, map[string]interface{}{
		"timer":      input.Seconds,
		"updated_at": input.Now,
	})
}

// RecordDraw advances the cursor with a compare-and-set on its current value
func (r *postgresRepository) RecordDraw(ctx context.Context, input *RecordDrawInput) (*RecordDrawOutput, error) {
	if input == nil || input.RoomID == "" || input.QuestionID == "" {
		return nil, errors.New("input, room ID and question ID cannot be empty")
	}

	result := r.db.WithContext(ctx).
		Model(&roomRecord{}).
		Where("id = ? AND question_cursor = ?", input.RoomID, input.ExpectedCursor).
		UpdateColumns(map[string]interface{}{
			"question_cursor":     gorm.Expr("question_cursor + 1"),
			"drawn_question_ids":  gorm.Expr("array_append(drawn_question_ids, ?)", input.QuestionID),
			"current_question_id": input.QuestionID,
			"updated_at":          input.Now,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to record draw: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&roomRecord{}).Where("id = ?", input.RoomID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check room: %w", err)
		}
		if count == 0 {
			return nil, ErrRoomNotFound
		}
		return nil, ErrCursorMoved
	}

	return &RecordDrawOutput{
		Cursor: input.ExpectedCursor + 1,
	}, nil
}

func (r *postgresRepository) first(ctx context.Context, query string, arg interface{}) (*models.Room, error) {
	var record roomRecord
	if err := r.db.WithContext(ctx).Where(query, arg).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return record.toModel(), nil
}

func (r *postgresRepository) update(ctx context.Context, roomID string, columns map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&roomRecord{}).
		Where("id = ?", roomID).
		UpdateColumns(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func toRecord(room *models.Room) *roomRecord {
	return &roomRecord{
		ID:                room.ID,
		Code:              room.Code,
		OwnerID:           room.OwnerID,
		OwnerName:         room.OwnerName,
		OwnerPseudo:       room.OwnerPseudo,
		AvailableNames:    pq.StringArray(nonNil(room.AvailableNames)),
		Phase:             string(room.Phase),
		QuestionCursor:    room.QuestionCursor,
		DrawnQuestionIDs:  pq.StringArray(nonNil(room.DrawnQuestionIDs)),
		CurrentQuestionID: room.CurrentQuestionID,
		Timer:             room.Timer,
		CreatedAt:         room.CreatedAt,
		UpdatedAt:         room.UpdatedAt,
	}
}

func (r *roomRecord) toModel() *models.Room {
	return &models.Room{
		ID:                r.ID,
		Code:              r.Code,
		OwnerID:           r.OwnerID,
		OwnerName:         r.OwnerName,
		OwnerPseudo:       r.OwnerPseudo,
		AvailableNames:    nonNil(r.AvailableNames),
		Phase:             models.Phase(r.Phase),
		QuestionCursor:    r.QuestionCursor,
		DrawnQuestionIDs:  nonNil(r.DrawnQuestionIDs),
		CurrentQuestionID: r.CurrentQuestionID,
		Timer:             r.Timer,
		CreatedAt:         r.CreatedAt.UTC(),
		UpdatedAt:         r.UpdatedAt.UTC(),
	}
}

// nonNil keeps empty arrays from being stored as NULL
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
