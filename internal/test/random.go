package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	asciiLetters = lowerLetters + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random alphanumeric string of length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	return randomString(asciiLetters, minLen, maxLen)
}

// RandomRegistration returns a unique-enough account payload with a valid email.
func RandomRegistration() model.Registration {
	username := randomString(lowerLetters, 6, 12)
	return model.Registration{
		Username: username,
		Password: RandomASCIIString(12, 24),
		Name:     strings.ToUpper(username[:1]) + username[1:],
		Email:    username + "@example.com",
	}
}

func randomString(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}

	rngMu.Lock()
	defer rngMu.Unlock()

	length := minLen + rng.Intn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}
