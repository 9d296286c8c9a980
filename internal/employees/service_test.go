package employees

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestRegister(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))
	fixed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	emp, err := svc.Register("Jane Doe", "jane@example.com", "Accountant")
	assert.NoError(t, err)
	assert.NotZero(t, emp.ID)
	assert.Equal(t, fixed, emp.DateJoined)

	all, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "jane@example.com", all[0].Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))

	_, err := svc.Register("Jane Doe", "jane@example.com", "Accountant")
	assert.NoError(t, err)

	_, err = svc.Register("Janet Doe", "jane@example.com", "Clerk")
	assert.ErrorIs(t, err, ErrEmailTaken)

	all, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, all, 1, "a rejected duplicate must not create a second record")
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))

	cases := []struct {
		name     string
		empName  string
		email    string
		position string
	}{
		{"empty name", "", "a@example.com", "Clerk"},
		{"empty position", "Jane", "a@example.com", ""},
		{"malformed email", "Jane", "not-an-email", "Clerk"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.empName, tc.email, tc.position)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCount(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))

	_, err := svc.Register("Jane Doe", "jane@example.com", "Accountant")
	assert.NoError(t, err)
	_, err = svc.Register("John Roe", "john@example.com", "Driver")
	assert.NoError(t, err)

	n, err := svc.Count()
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
