package game

import (
	"errors"
	"fmt"
)

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Error categories. Every error returned by Service wraps exactly one of
// ErrNotFound, ErrValidation or ErrPersistence, or is ErrNoActiveSession.
const (
	ErrNotFound        GameError = "not found"
	ErrValidation      GameError = "validation failed"
	ErrPersistence     GameError = "persistence failed"
	ErrNoActiveSession GameError = "no active session"
)

// Construction errors
const (
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilRoomRepo       GameError = "room repository cannot be nil"
	ErrNilPlayerRepo     GameError = "player repository cannot be nil"
	ErrNilQuestionRepo   GameError = "question repository cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
	ErrNilCodeGenerator  GameError = "room code generator cannot be nil"
	ErrNilPicker         GameError = "picker cannot be nil"
	ErrNilCache          GameError = "room cache cannot be nil"
	ErrNilLogger         GameError = "logger cannot be nil"
	ErrInvalidTurnLength GameError = "turn seconds cannot be negative"
)

// Result is the outcome category of an operation
type Result string

const (
	ResultOK                Result = "ok"
	ResultNotFound          Result = "not_found"
	ResultValidationFailed  Result = "validation_failed"
	ResultPersistenceFailed Result = "persistence_failed"
)

// ResultOf maps an error returned by Service to its category. Unknown errors
// count as persistence failures.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrNotFound):
		return ResultNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNoActiveSession):
		return ResultValidationFailed
	default:
		return ResultPersistenceFailed
	}
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
