package utils

import (
	"math/rand"
	"strconv"
)

// GenerateVerificationCode returns a 6-digit numeric code. The global rand
// source is safe for concurrent callers.
func GenerateVerificationCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
