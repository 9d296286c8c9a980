package auth

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bizdesk/internal/config"
)

// Role is the closed set of roles a session can carry.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// ErrInvalidCredentials is returned for any username/password miss. The
// caller gets no hint about which half was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUnknownRole is returned when a configured or transported role value is
// outside the closed set.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

type credential struct {
	passwordHash string
	role         Role
}

// Authenticator answers login attempts against a read-only credential table
// injected at startup.
type Authenticator struct {
	creds  map[string]credential
	logger *zap.Logger
}

// NewAuthenticator builds an Authenticator from the configured credential
// table. A user with a role outside the closed set is a configuration error.
func NewAuthenticator(users []config.User, logger *zap.Logger) (*Authenticator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	creds := make(map[string]credential, len(users))
	for _, u := range users {
		role, err := ParseRole(u.Role)
		if err != nil {
			return nil, errors.New("credential table: unknown role for user " + u.Username)
		}
		creds[u.Username] = credential{passwordHash: u.PasswordHash, role: role}
	}

	return &Authenticator{creds: creds, logger: logger}, nil
}

// Authenticate checks the password against the stored bcrypt hash and
// returns the user's role. Returns ErrInvalidCredentials on any miss.
func (a *Authenticator) Authenticate(username, password string) (Role, error) {
	cred, ok := a.creds[username]
	if !ok {
		a.logger.Warn("login attempt for unknown user", zap.String("username", username))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.passwordHash), []byte(password)); err != nil {
		a.logger.Warn("failed login", zap.String("username", username))
		return "", ErrInvalidCredentials
	}

	return cred.role, nil
}
