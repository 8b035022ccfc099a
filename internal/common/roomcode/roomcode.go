package roomcode

import (
	"strings"

	"github.com/valyala/fastrand"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/fitna/internal/common/roomcode Generator

const (
	// Alphabet holds the characters a room code is drawn from
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Length is the number of characters in a room code
	Length = 6
)

// Generator produces human-friendly room codes
type Generator interface {
	NewCode() string
}

// DefaultGenerator draws uppercase alphanumeric codes of fixed width
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewCode returns a random code of Length characters from Alphabet
func (g *DefaultGenerator) NewCode() string {
	code := make([]byte, Length)
	for i := range code {
		code[i] = Alphabet[fastrand.Uint32n(uint32(len(Alphabet)))]
	}
	return string(code)
}

// Normalize turns user input into the stored form of a code
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValid reports whether code has the stored shape
func IsValid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(Alphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
