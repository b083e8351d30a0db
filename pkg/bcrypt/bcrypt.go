package bcrypt

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 10

func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}
	return string(hashedBytes), nil
}

// ComparePassword returns an error when the plaintext does not match the hash.
func ComparePassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		return fmt.Errorf("password comparison failed: %v", err)
	}
	return nil
}
