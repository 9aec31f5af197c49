package account

import (
	"fmt"
	"regexp"
	"time"

	"rewear/internal/auth"
	"rewear/internal/exchangeerrors"
	model "rewear/internal/models"
	"rewear/internal/repository"
	"rewear/utils"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 8

// bcryptCost matches the cost the original user store was created with.
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AccountService defines signup, login and profile logic
type AccountService struct {
	repo      repository.ExchangeDB
	jwtSecret string
}

// NewAccountService creates a new AccountService instance
func NewAccountService(repo repository.ExchangeDB, jwtSecret string) *AccountService {
	return &AccountService{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

// Signup registers a new user with the starting points grant and returns
// the user along with a signed token.
func (s *AccountService) Signup(email, password, name string) (model.User, string, error) {
	if !emailPattern.MatchString(email) {
		return model.User{}, "", fmt.Errorf("service: %w - invalid email address", exchangeerrors.ErrValidation)
	}
	if len(password) < PasswordMinLength {
		return model.User{}, "", fmt.Errorf("service: %w - password must be at least %d characters", exchangeerrors.ErrValidation, PasswordMinLength)
	}
	if name == "" {
		return model.User{}, "", fmt.Errorf("service: %w - name is required", exchangeerrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := model.User{
		UserID:    utils.GenerateID(),
		Email:     email,
		Password:  string(hash),
		Name:      name,
		Points:    model.StartingPoints,
		Role:      model.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to create user %s: %w", email, err)
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.UserID, user.Role)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to issue token for user %s: %w", user.UserID, err)
	}
	return user, token, nil
}

// Login authenticates a user by email and password and returns a token
func (s *AccountService) Login(email, password string) (model.User, string, error) {
	if email == "" || password == "" {
		return model.User{}, "", fmt.Errorf("service: %w - missing email or password", exchangeerrors.ErrValidation)
	}

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: login for %s: %w", email, exchangeerrors.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return model.User{}, "", fmt.Errorf("service: login for %s: %w", email, exchangeerrors.ErrInvalidCredentials)
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.UserID, user.Role)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to issue token for user %s: %w", user.UserID, err)
	}
	return user, token, nil
}

// GetProfile returns the user's own record, including the points balance
func (s *AccountService) GetProfile(userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, fmt.Errorf("service: %w - empty user ID", exchangeerrors.ErrValidation)
	}

	user, err := s.repo.GetUser(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}
