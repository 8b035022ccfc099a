package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KirkDiggler/fitna/internal/models"
)

// playerRecord is the players table row
type playerRecord struct {
	ID                    string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	RoomID                string    `gorm:"column:room_id;type:varchar(36);index;not null"`
	RealName              string    `gorm:"column:real_name;not null"`
	Pseudo                string    `gorm:"column:pseudo;not null"`
	Points                int       `gorm:"column:points;not null"`
	HasSubmittedQuestions bool      `gorm:"column:has_submitted_questions;not null"`
	CreatedAt             time.Time `gorm:"column:created_at;index"`
}

func (playerRecord) TableName() string {
	return "players"
}

// PostgresConfig holds configuration for the PostgreSQL player repository
type PostgresConfig struct {
	DB *gorm.DB
}

// postgresRepository implements the Repository interface using gorm
type postgresRepository struct {
	db *gorm.DB
}

// NewPostgres creates a new PostgreSQL-backed player repository
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

// AutoMigrate creates or updates the players table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&playerRecord{})
}

// CreatePlayer inserts the player row
func (r *postgresRepository) CreatePlayer(ctx context.Context, input *CreatePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	p := input.Player
	record := &playerRecord{
		ID:                    p.ID,
		RoomID:                p.RoomID,
		RealName:              p.RealName,
		Pseudo:                p.Pseudo,
		Points:                p.Points,
		HasSubmittedQuestions: p.HasSubmittedQuestions,
		CreatedAt:             p.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID
func (r *postgresRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	var record playerRecord
	if err := r.db.WithContext(ctx).Where("id = ?", input.PlayerID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return record.toModel(), nil
}

// GetPlayersInRoom lists the room's players by creation time
func (r *postgresRepository) GetPlayersInRoom(ctx context.Context, input *GetPlayersInRoomInput) (*GetPlayersInRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	var records []playerRecord
	if err := r.db.WithContext(ctx).
		Where("room_id = ?", input.RoomID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(records))
	for i := range records {
		players = append(players, records[i].toModel())
	}

	return &GetPlayersInRoomOutput{
		Players: players,
	}, nil
}

// MarkSubmitted sets the submitted flag
func (r *postgresRepository) MarkSubmitted(ctx context.Context, input *MarkSubmittedInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	result := r.db.WithContext(ctx).
		Model(&playerRecord{}).
		Where("id = ?", input.PlayerID).
		UpdateColumn("has_submitted_questions", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark player submitted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// AddPoints increments points in a single statement and returns the new total
func (r *postgresRepository) AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	var record playerRecord
	result := r.db.WithContext(ctx).
		Model(&record).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "points"}}}).
		Where("id = ?", input.PlayerID).
		UpdateColumn("points", gorm.Expr("points + ?", input.Points))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to add points: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrPlayerNotFound
	}

	return &AddPointsOutput{
		Points: record.Points,
	}, nil
}

func (r *playerRecord) toModel() *models.Player {
	return &models.Player{
		ID:                    r.ID,
		RoomID:                r.RoomID,
		RealName:              r.RealName,
		Pseudo:                r.Pseudo,
		Points:                r.Points,
		HasSubmittedQuestions: r.HasSubmittedQuestions,
		CreatedAt:             r.CreatedAt.UTC(),
	}
}
