package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/daudtravel/backend/internal/models"
	"github.com/daudtravel/backend/pkg/bcrypt"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUserStore struct {
	createFn  func(user *models.User) error
	byEmailFn func(email string) (*models.User, error)
	byIDFn    func(id string) (*models.User, error)
	existsFn  func(email string) (bool, error)
}

var _ UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) Create(user *models.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(user)
}

func (m *mockUserStore) GetByEmail(email string) (*models.User, error) {
	return m.byEmailFn(email)
}

func (m *mockUserStore) GetByID(id string) (*models.User, error) {
	return m.byIDFn(id)
}

func (m *mockUserStore) EmailExists(email string) (bool, error) {
	if m.existsFn == nil {
		return false, nil
	}
	return m.existsFn(email)
}

type mockCodeStore struct {
	byEmailFn func(email string) (*models.EmailVerification, error)
	storeFn   func(email, code string) error
	deleted   []string
}

var _ CodeStore = (*mockCodeStore)(nil)

func (m *mockCodeStore) GetByEmail(email string) (*models.EmailVerification, error) {
	if m.byEmailFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.byEmailFn(email)
}

func (m *mockCodeStore) Store(email, code string) error {
	if m.storeFn == nil {
		return nil
	}
	return m.storeFn(email, code)
}

func (m *mockCodeStore) Delete(email string) error {
	m.deleted = append(m.deleted, email)
	return nil
}

type mockMailer struct {
	sent   []string
	sendFn func(email, code string) error
}

var _ CodeMailer = (*mockMailer)(nil)

func (m *mockMailer) SendVerificationCode(email, code string) error {
	m.sent = append(m.sent, code)
	if m.sendFn == nil {
		return nil
	}
	return m.sendFn(email, code)
}

func TestSendCode_ExistingAccountRejected(t *testing.T) {
	users := &mockUserStore{
		existsFn: func(email string) (bool, error) { return true, nil },
	}
	svc := NewAuthService(users, &mockCodeStore{}, &mockMailer{}, "test-secret")

	err := svc.SendCode("taken@example.com")
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestSendCode_CooldownCarriesRemainingMinutes(t *testing.T) {
	codes := &mockCodeStore{
		byEmailFn: func(email string) (*models.EmailVerification, error) {
			return &models.EmailVerification{
				Email:     email,
				Code:      "123456",
				CreatedAt: time.Now().Add(-5 * time.Minute),
			}, nil
		},
	}
	svc := NewAuthService(&mockUserStore{}, codes, &mockMailer{}, "test-secret")

	err := svc.SendCode("pending@example.com")
	var cooldown *CooldownError
	require.ErrorAs(t, err, &cooldown)
	require.Greater(t, cooldown.TimeRemaining, 1)
	require.LessOrEqual(t, cooldown.TimeRemaining, 15)
	require.Equal(t, 10, cooldown.TimeRemaining)
}

func TestSendCode_ExpiredPendingCodeReplaced(t *testing.T) {
	codes := &mockCodeStore{
		byEmailFn: func(email string) (*models.EmailVerification, error) {
			return &models.EmailVerification{
				Email:     email,
				Code:      "123456",
				CreatedAt: time.Now().Add(-16 * time.Minute),
			}, nil
		},
	}
	var storedCode string
	codes.storeFn = func(email, code string) error {
		storedCode = code
		return nil
	}
	mailer := &mockMailer{}
	svc := NewAuthService(&mockUserStore{}, codes, mailer, "test-secret")

	require.NoError(t, svc.SendCode("stale@example.com"))
	require.Equal(t, []string{"stale@example.com"}, codes.deleted)
	require.Regexp(t, regexp.MustCompile(`^\d{6}$`), storedCode)
	require.Equal(t, []string{storedCode}, mailer.sent)
}

func TestSendCode_FreshEmailGetsCode(t *testing.T) {
	var storedCode string
	codes := &mockCodeStore{
		storeFn: func(email, code string) error {
			storedCode = code
			return nil
		},
	}
	mailer := &mockMailer{}
	svc := NewAuthService(&mockUserStore{}, codes, mailer, "test-secret")

	require.NoError(t, svc.SendCode("new@example.com"))
	require.Regexp(t, regexp.MustCompile(`^\d{6}$`), storedCode)
	require.Len(t, mailer.sent, 1)
}

func TestSignup_ConsumesCodeAndCreatesVerifiedUser(t *testing.T) {
	codes := &mockCodeStore{
		byEmailFn: func(email string) (*models.EmailVerification, error) {
			return &models.EmailVerification{
				Email:     email,
				Code:      "654321",
				CreatedAt: time.Now().Add(-2 * time.Minute),
			}, nil
		},
	}
	var created *models.User
	users := &mockUserStore{
		createFn: func(user *models.User) error {
			created = user
			return nil
		},
	}
	svc := NewAuthService(users, codes, &mockMailer{}, "test-secret")

	user, err := svc.Signup(models.SignupRequest{
		Firstname: "Nino",
		Lastname:  "Beridze",
		Email:     "nino@example.com",
		Password:  "supersecret",
		Code:      "654321",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotEmpty(t, user.ID)
	require.True(t, user.IsVerified)
	require.NotEqual(t, "supersecret", user.Password)
	require.NoError(t, bcrypt.ComparePassword(user.Password, "supersecret"))
	require.Equal(t, []string{"nino@example.com"}, codes.deleted)
}

func TestSignup_WrongAndExpiredCodeAreTheSameFailure(t *testing.T) {
	wrongCode := &mockCodeStore{
		byEmailFn: func(email string) (*models.EmailVerification, error) {
			return &models.EmailVerification{Email: email, Code: "111111", CreatedAt: time.Now()}, nil
		},
	}
	expiredCode := &mockCodeStore{
		byEmailFn: func(email string) (*models.EmailVerification, error) {
			return &models.EmailVerification{
				Email:     email,
				Code:      "654321",
				CreatedAt: time.Now().Add(-CodeValidityWindow),
			}, nil
		},
	}
	req := models.SignupRequest{
		Firstname: "Nino",
		Lastname:  "Beridze",
		Email:     "nino@example.com",
		Password:  "supersecret",
		Code:      "654321",
	}

	for _, codes := range []*mockCodeStore{wrongCode, expiredCode} {
		svc := NewAuthService(&mockUserStore{}, codes, &mockMailer{}, "test-secret")
		_, err := svc.Signup(req)
		require.ErrorIs(t, err, ErrInvalidCode)
		require.Empty(t, codes.deleted)
	}
}

func TestSignup_MissingCodeRecordRejected(t *testing.T) {
	svc := NewAuthService(&mockUserStore{}, &mockCodeStore{}, &mockMailer{}, "test-secret")

	_, err := svc.Signup(models.SignupRequest{
		Firstname: "Nino",
		Lastname:  "Beridze",
		Email:     "nino@example.com",
		Password:  "supersecret",
		Code:      "654321",
	})
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestSignin_UnknownEmailAndWrongPasswordLookIdentical(t *testing.T) {
	hash, err := bcrypt.HashPassword("correct-password")
	require.NoError(t, err)

	noSuchUser := &mockUserStore{
		byEmailFn: func(email string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	wrongPassword := &mockUserStore{
		byEmailFn: func(email string) (*models.User, error) {
			return &models.User{Email: email, Password: hash}, nil
		},
	}

	for _, users := range []*mockUserStore{noSuchUser, wrongPassword} {
		svc := NewAuthService(users, &mockCodeStore{}, &mockMailer{}, "test-secret")
		_, err := svc.Signin(models.SigninRequest{Email: "x@example.com", Password: "wrong"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestSignin_Success(t *testing.T) {
	hash, err := bcrypt.HashPassword("correct-password")
	require.NoError(t, err)

	users := &mockUserStore{
		byEmailFn: func(email string) (*models.User, error) {
			return &models.User{
				ID:         "7b1deb4d-0000-0000-0000-000000000000",
				Firstname:  "Nino",
				Lastname:   "Beridze",
				Email:      email,
				Password:   hash,
				IsVerified: true,
			}, nil
		},
	}
	svc := NewAuthService(users, &mockCodeStore{}, &mockMailer{}, "test-secret")

	resp, err := svc.Signin(models.SigninRequest{Email: "nino@example.com", Password: "correct-password"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "nino@example.com", resp.User.Email)
}
