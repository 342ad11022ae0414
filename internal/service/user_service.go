package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/service/auth"
	"github.com/febdev/catalog-api/internal/store"
)

// UserService provides user-related operations: registration, lookup, and
// the admin-role check used to gate admin-only actions.
type UserService interface {
	// Register creates a new user with the given name, email, and password.
	// The password is hashed before storage; the returned user never carries
	// the plaintext. Returns store.ErrEmailExists for a duplicate email.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// GetByID retrieves a user by their ID.
	GetByID(ctx context.Context, userID int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// IsAdmin reports whether the user with the given ID has the admin role.
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// Register creates a new user with the given name, email, and password.
// Uses a transaction so a failed create leaves no partial state behind.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	name, email, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		s.logger.Warn("invalid registration data",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = "" // Never keep plaintext past this point

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})

	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register with existing email",
				"email", email)
		} else {
			s.logger.Error("failed to save user to database",
				"error", err,
				"email", email)
		}
		return nil, err
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}

// GetByID retrieves a user by their ID.
func (s *UserServiceImpl) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	return user, nil
}

// GetByEmail retrieves a user by their email address.
func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found by email", "email", email)
		} else {
			s.logger.Error("failed to retrieve user by email",
				"error", err,
				"email", email)
		}
		return nil, err
	}

	return user, nil
}

// IsAdmin reports whether the user with the given ID has the admin role.
// The role is looked up from the store on every call; tokens carry identity,
// not authority.
func (s *UserServiceImpl) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
