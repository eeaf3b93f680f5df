package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/auth"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidInput = errors.New("invalid account input")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password so login failures look the same.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo     Repository
	secret   []byte
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewService(repo Repository, secret []byte, tokenTTL time.Duration, logger zerolog.Logger) *Service {
	return &Service{repo: repo, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Password  string
}

const minPasswordLen = 6

// SignUp registers a new account. Email comparison is case
// insensitive.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.FirstName == "" {
		return nil, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().
		Str("op", "account.signup").
		Str("user_id", u.ID.String()).
		Msg("user registered")

	return u, nil
}

// Login verifies the credentials and mints a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.secret, u.ID, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().
		Str("op", "account.login").
		Str("user_id", u.ID.String()).
		Msg("user logged in")

	return token, u, nil
}

// Get returns the account's own profile.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
