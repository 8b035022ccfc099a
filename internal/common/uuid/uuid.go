package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/fitna/internal/common/uuid UUID

// UUID issues identifiers for rooms, players and questions
type UUID interface {
	NewUUID() string
}

type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a random v4 identifier in canonical form
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// IsValid reports whether id is a canonical identifier as issued by NewUUID
func IsValid(id string) bool {
	parsed, err := uuid.Parse(id)
	return err == nil && parsed.String() == id
}
