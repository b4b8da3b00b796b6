package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"anime_calendar/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUserAlreadyExists when the
	// email or username is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email address.
	// It returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// It returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether any user holds the given
	// email or the given username.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// UpdatePassword replaces the stored password hash of the given user.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// JWTGenerator abstracts signed token creation.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT for the given user.
	GenerateToken(userID, email string, role entity.Role) (string, error)
}

// AuthUsecase implements registration, login, profile lookup and password
// rotation.
type AuthUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new AuthUsecase with its dependencies injected.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *AuthUsecase {
	return &AuthUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks that a password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password and returns the stored
// record. It fails with ErrUserAlreadyExists when the email or the username
// is already taken. The uniqueness precheck is best-effort; the store's
// unique indexes are the safety net under concurrent registrations.
func (u *AuthUsecase) Register(ctx context.Context, email, password, username string, role entity.Role) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	taken, err := u.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed JWT on success.
// A bcrypt comparison runs even when the user does not exist, so that
// lookups for unknown and known emails take comparable time.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path when the
	// user is missing (timing attack mitigation).
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email, user.Role)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, nil
}

// Profile returns the user with the given ID.
func (u *AuthUsecase) Profile(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// UpdatePassword rotates a user's password. It fails with
// ErrInvalidCredentials when the user is missing or oldPassword does not
// match the stored hash; a failed attempt leaves the stored hash untouched.
func (u *AuthUsecase) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) (*entity.User, error) {
	if err := validatePassword(newPassword); err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return nil, ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.users.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		return nil, err
	}

	user.Password = string(hashed)
	return user, nil
}
