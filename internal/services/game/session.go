package game

// Session identifies the room a client is in and who they are. It is owned by
// the presentation layer and passed into every room-scoped operation.
type Session struct {
	RoomID   string
	PlayerID string
}

// Active reports whether the session points at a room and a player
func (s *Session) Active() bool {
	return s != nil && s.RoomID != "" && s.PlayerID != ""
}

// Clear forgets the room and player
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.RoomID = ""
	s.PlayerID = ""
}
