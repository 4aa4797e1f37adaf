package util

import (
	"crypto/rand"
	"encoding/base64"
)

const challengeSize = 32

// GenerateChallenge returns 32 cryptographically random bytes encoded as
// standard base64.
func GenerateChallenge() (string, error) {
	bytes := make([]byte, challengeSize)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}
