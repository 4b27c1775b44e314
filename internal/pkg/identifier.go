package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	gameIDBytes    = 4
	sessionIDBytes = 16
)

// GenerateGameID - returns a short random identifier for a new game.
func GenerateGameID() string {
	return randomHex(gameIDBytes)
}

// GenerateNewSessionID - returns a random identifier for a new player session.
func GenerateNewSessionID() string {
	return randomHex(sessionIDBytes)
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Errorf("failed to read random bytes: %w", err))
	}

	return hex.EncodeToString(buf)
}
