package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"bizdesk/internal/config"
)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func testUsers(t *testing.T) []config.User {
	return []config.User{
		{Username: "admin", PasswordHash: hash(t, "adminpass"), Role: "admin"},
		{Username: "employee", PasswordHash: hash(t, "employeepass"), Role: "employee"},
	}
}

func TestAuthenticate_ValidPairs(t *testing.T) {
	a, err := NewAuthenticator(testUsers(t), zaptest.NewLogger(t))
	assert.NoError(t, err)

	role, err := a.Authenticate("admin", "adminpass")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = a.Authenticate("employee", "employeepass")
	assert.NoError(t, err)
	assert.Equal(t, RoleEmployee, role)
}

func TestAuthenticate_Rejections(t *testing.T) {
	a, err := NewAuthenticator(testUsers(t), zaptest.NewLogger(t))
	assert.NoError(t, err)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "employeepass"},
		{"unknown user", "nobody", "adminpass"},
		{"empty password", "employee", ""},
		{"swapped credentials", "adminpass", "admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.Authenticate(tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestNewAuthenticator_UnknownRole(t *testing.T) {
	users := []config.User{{Username: "x", PasswordHash: hash(t, "pw"), Role: "superuser"}}
	_, err := NewAuthenticator(users, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("root")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestToken_IssueAndParse(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("admin", RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestToken_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("admin", RoleAdmin)
	assert.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("employee", RoleEmployee)
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
