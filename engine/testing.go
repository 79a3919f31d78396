package engine

import (
	"github.com/rs/zerolog"
)

// NewTestWorld creates a world with a discarding logger for tests
func NewTestWorld() *World {
	return NewWorld(zerolog.Nop())
}
