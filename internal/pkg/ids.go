package pkg

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

const maxGameID = 99999999

// GenerateGameID - generates a short numeric identifier for a game room.
func GenerateGameID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(maxGameID))
	if err != nil {
		return uuid.NewString()
	}

	return n.String()
}

// GenerateNewSessionID - generates a new unique player session ID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
