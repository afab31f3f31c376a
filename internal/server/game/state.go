package game

import (
	"time"

	"varchess/internal/varchess"
)

type GameState struct {
	ID        string
	Session   *varchess.Session
	Plies     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
