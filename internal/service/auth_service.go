package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-inventario/internal/model"
	"go-inventario/internal/repository"
	"go-inventario/pkg/jwt"

	"github.com/google/uuid"
)

// ErrUnauthorized is the base of every authentication failure.
var ErrUnauthorized = errors.New("unauthorized")

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrUserInactive       = fmt.Errorf("%w: user account is inactive", ErrUnauthorized)
	ErrWrongPassword      = fmt.Errorf("%w: current password is incorrect", ErrUnauthorized)
	ErrSessionTimeout     = fmt.Errorf("%w: session expired due to inactivity", ErrUnauthorized)
	ErrSessionReplaced    = fmt.Errorf("%w: session expired (logged in on another device)", ErrUnauthorized)

	ErrPasswordMismatch = fmt.Errorf("%w: new password and confirmation do not match", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: new password must be at least %d characters", ErrValidation, model.MinPasswordLength)
)

type AuthService interface {
	Login(email, password string) (*Session, error)
	ChangePassword(req *PasswordChange) error
	// ValidateToken describes the session behind token, applying the idle timeout.
	ValidateToken(token string) (*Session, error)
	// Authenticate resolves a bearer token to its user. Middleware calls it
	// on every protected request.
	Authenticate(token string) (*model.User, error)
	Heartbeat(userID uuid.UUID) error
}

type PasswordChange struct {
	Email           string `json:"email" validate:"required,email"`
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Session is what a client learns about itself at login and on validation.
type Session struct {
	Token      string             `json:"token,omitempty"`
	ExpiresAt  time.Time          `json:"expires_at"`
	User       model.UserResponse `json:"user"`
	Role       *model.Role        `json:"role"`
	Privileges []string           `json:"privileges"`
}

type authService struct {
	users       repository.UserRepository
	tokens      *jwt.Manager
	publish     Publisher
	idleTimeout time.Duration
	now         func() time.Time
}

// NewAuthService builds the auth service. An idleTimeout of zero disables
// the inactivity check.
func NewAuthService(users repository.UserRepository, tokens *jwt.Manager, hub Publisher, idleTimeout time.Duration) AuthService {
	return &authService{
		users:       users,
		tokens:      tokens,
		publish:     publisherOrNop(hub),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

func newSession(user *model.User, token string, expires time.Time) *Session {
	return &Session{
		Token:      token,
		ExpiresAt:  expires,
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}
}

func (s *authService) Login(email, password string) (*Session, error) {
	user, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// Rotating the version revokes whatever token another device holds.
	now := s.now()
	user.TokenVersion = uuid.NewString()
	user.LastSeenAt = &now
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	token, expires, err := s.tokens.Issue(jwt.Identity{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.FullName,
		RoleCode:     user.RoleCode(),
		Privileges:   user.GetPrivilegeCodes(),
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return newSession(user, token, expires), nil
}

func (s *authService) ChangePassword(req *PasswordChange) error {
	if err := validate(req); err != nil {
		return err
	}
	switch {
	case len(req.NewPassword) < model.MinPasswordLength:
		return ErrPasswordTooShort
	case req.NewPassword != req.ConfirmPassword:
		return ErrPasswordMismatch
	}

	user, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}
	if !user.CheckPassword(req.OldPassword) {
		return ErrWrongPassword
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(user.ID, user.Password); err != nil {
		return err
	}
	return s.users.UpdateTokenVersion(user.ID, uuid.NewString())
}

// resolve checks the token signature and the single-session rule.
func (s *authService) resolve(token string) (*model.User, *jwt.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	user, err := s.users.FindByID(claims.UserID)
	switch {
	case err != nil:
		return nil, nil, fmt.Errorf("%w: user not found", ErrUnauthorized)
	case !user.IsActive:
		return nil, nil, ErrUserInactive
	case user.TokenVersion != claims.TokenVersion:
		return nil, nil, ErrSessionReplaced
	}
	return user, claims, nil
}

func (s *authService) Authenticate(token string) (*model.User, error) {
	user, _, err := s.resolve(token)
	return user, err
}

func (s *authService) idle(user *model.User) bool {
	if s.idleTimeout <= 0 {
		return false
	}
	return user.LastSeenAt == nil || s.now().Sub(*user.LastSeenAt) > s.idleTimeout
}

func (s *authService) ValidateToken(token string) (*Session, error) {
	user, claims, err := s.resolve(token)
	if err != nil {
		return nil, err
	}
	if s.idle(user) {
		return nil, ErrSessionTimeout
	}
	return newSession(user, "", claims.ExpiresAt.Time), nil
}

func (s *authService) Heartbeat(userID uuid.UUID) error {
	now := s.now()
	if err := s.users.UpdateLastSeen(userID, now); err != nil {
		return err
	}

	s.publish.Publish("user_status_update", map[string]interface{}{
		"user_id":      userID.String(),
		"status":       "online",
		"last_seen_at": now,
	})
	return nil
}
