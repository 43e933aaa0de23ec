package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"mini_store/internal/domain"
	"mini_store/internal/store"
	"mini_store/internal/utils"
)

// AccountService creates, looks up and authenticates user accounts.
type AccountService struct {
	store store.Store
}

// NewAccountService creates an account service over the given backend.
func NewAccountService(st store.Store) *AccountService {
	return &AccountService{store: st}
}

// Register hashes the password and inserts a new user. Usernames are
// lowercased so uniqueness is case-insensitive. An empty role defaults to
// "user".
func (s *AccountService) Register(ctx context.Context, username, password, role string) (domain.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return domain.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.store.InsertUser(ctx, domain.User{Username: username, Password: hash, Role: role})
	if errors.Is(err, store.ErrDuplicateUser) {
		return domain.User{}, ErrDuplicateUser
	}
	if err != nil {
		return domain.User{}, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	}).Info("User created")
	return user, nil
}

// Authenticate looks up the user and verifies the password. Unknown user and
// wrong password both return ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.store.FindUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if !utils.CheckPassword(password, user.Password) {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// BootstrapAdmin inserts the admin account unless that username already
// exists. Idempotent; meant to run once during process setup.
func (s *AccountService) BootstrapAdmin(ctx context.Context, username, password string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil // No bootstrap credentials configured
	}
	_, err := s.store.FindUserByUsername(ctx, username)
	if err == nil {
		return nil // Admin already exists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if _, err := s.Register(ctx, username, password, domain.RoleAdmin); err != nil {
		// A concurrent bootstrap may have won the insert; that still counts
		// as done.
		if errors.Is(err, ErrDuplicateUser) {
			return nil
		}
		return err
	}
	logrus.WithField("username", username).Info("Admin account bootstrapped")
	return nil
}
