package service

import (
	"errors"
	"fmt"
)

var (
	ErrTourNameExists     = errors.New("tour with one of these names already exists")
	ErrTourNotFound       = errors.New("tour not found")
	ErrTransferNotFound   = errors.New("transfer not found")
	ErrInvalidQuery       = errors.New("invalid query parameters")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// CooldownError rejects a code request while the previous code is still
// inside its 15-minute window.
type CooldownError struct {
	TimeRemaining int // minutes, ceiling
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("verification code already sent, retry in %d minutes", e.TimeRemaining)
}
