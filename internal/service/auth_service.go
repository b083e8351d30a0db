package service

import (
	"errors"
	"math"
	"time"

	"github.com/daudtravel/backend/internal/models"
	"github.com/daudtravel/backend/pkg/bcrypt"
	jwtPkg "github.com/daudtravel/backend/pkg/jwt"
	"github.com/daudtravel/backend/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A verification code is usable for 15 minutes from creation; a younger
// pending code blocks re-sending for the remainder of that window.
const CodeValidityWindow = 15 * time.Minute

type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	EmailExists(email string) (bool, error)
}

type CodeStore interface {
	GetByEmail(email string) (*models.EmailVerification, error)
	Store(email, code string) error
	Delete(email string) error
}

type CodeMailer interface {
	SendVerificationCode(email, code string) error
}

type AuthService struct {
	userStore UserStore
	codeStore CodeStore
	mailer    CodeMailer
	jwtSecret string
}

func NewAuthService(userStore UserStore, codeStore CodeStore, mailer CodeMailer, jwtSecret string) *AuthService {
	return &AuthService{
		userStore: userStore,
		codeStore: codeStore,
		mailer:    mailer,
		jwtSecret: jwtSecret,
	}
}

// SendCode starts the signup flow: generates a 6-digit code, stores it
// keyed by email and mails it. An existing account or a still-fresh pending
// code rejects the request. The code never appears in any response.
func (s *AuthService) SendCode(email string) error {
	exists, err := s.userStore.EmailExists(email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailExists
	}

	pending, err := s.codeStore.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if pending != nil {
		elapsed := time.Since(pending.CreatedAt)
		if elapsed < CodeValidityWindow {
			remaining := CodeValidityWindow.Minutes() - elapsed.Minutes()
			return &CooldownError{TimeRemaining: int(math.Ceil(remaining))}
		}
		if err := s.codeStore.Delete(email); err != nil {
			return err
		}
	}

	code := utils.GenerateVerificationCode()
	if err := s.codeStore.Store(email, code); err != nil {
		return err
	}

	return s.mailer.SendVerificationCode(email, code)
}

// Signup consumes a pending code and creates the verified account. A wrong
// code and an expired one are deliberately the same failure.
func (s *AuthService) Signup(req models.SignupRequest) (*models.User, error) {
	pending, err := s.codeStore.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}
	if pending.Code != req.Code || time.Since(pending.CreatedAt) >= CodeValidityWindow {
		return nil, ErrInvalidCode
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:         uuid.NewString(),
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		Email:      req.Email,
		Password:   hashedPassword,
		IsVerified: true,
	}

	if err := s.userStore.Create(user); err != nil {
		return nil, err
	}

	if err := s.codeStore.Delete(req.Email); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	return s.userStore.GetByID(id)
}

// Signin does not distinguish an unknown email from a wrong password.
func (s *AuthService) Signin(req models.SigninRequest) (*models.AuthResponse, error) {
	user, err := s.userStore.GetByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtPkg.GenerateToken(s.jwtSecret, user.ID, user.Email, user.Firstname, user.Lastname)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
