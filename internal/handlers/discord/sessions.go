package discord

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/KirkDiggler/fitna/internal/services/game"
)

// DefaultSessionCapacity bounds how many channel/user pairs are remembered
const DefaultSessionCapacity = 4096

// SessionStore remembers the game session of each user in each channel
type SessionStore struct {
	cache *lru.Cache
}

func NewSessionStore(size int) (*SessionStore, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("lru new instance of session cache: %w", err)
	}

	return &SessionStore{cache: c}, nil
}

func sessionKey(channelID, userID string) string {
	return channelID + ":" + userID
}

// Get returns the stored session, or an empty one
func (s *SessionStore) Get(channelID, userID string) *game.Session {
	if v, ok := s.cache.Get(sessionKey(channelID, userID)); ok {
		if session, ok := v.(*game.Session); ok {
			return session
		}
	}
	return &game.Session{}
}

func (s *SessionStore) Set(channelID, userID string, session *game.Session) {
	s.cache.Add(sessionKey(channelID, userID), session)
}

func (s *SessionStore) Delete(channelID, userID string) {
	s.cache.Remove(sessionKey(channelID, userID))
}
