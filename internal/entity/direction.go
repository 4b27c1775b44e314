package entity

import (
	"fmt"

	"github.com/iamshelldy/runfromcats-backend/internal/apperror"
)

type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParseDirection - validates a direction token before any state is touched.
func ParseDirection(token string) (Direction, error) {
	switch dir := Direction(token); dir {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return dir, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, token)
	}
}

// Opposite - the world shifts opposite to the player's travel direction,
// since the player cell itself never moves.
func (that Direction) Opposite() Direction {
	switch that {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}

// Delta - returns the row/col step for the direction.
func (that Direction) Delta() (int, int) {
	switch that {
	case DirectionUp:
		return -1, 0
	case DirectionDown:
		return 1, 0
	case DirectionLeft:
		return 0, -1
	default:
		return 0, 1
	}
}
