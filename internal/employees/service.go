package employees

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrInvalidInput is returned when an employee record fails validation.
var ErrInvalidInput = errors.New("invalid employee input")

// Service provides high-level employee registration on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, logger: logger, now: time.Now}
}

// Register creates an employee record stamped with the current instant.
// A duplicate email yields ErrEmailTaken and no second record; the check
// runs before the insert and the store's unique index backs it up.
func (s *Service) Register(name, email, position string) (*Employee, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(position) == "" {
		return nil, fmt.Errorf("%w: name and position must not be empty", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}

	if _, err := s.storage.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		s.logger.Error("failed to check email", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	emp := &Employee{
		Name:       name,
		Email:      email,
		Position:   position,
		DateJoined: s.now().Truncate(time.Second),
	}

	if err := s.storage.Create(emp); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		s.logger.Error("failed to save employee", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	s.logger.Info("employee registered", zap.Uint("employee_id", emp.ID), zap.String("email", emp.Email))
	return emp, nil
}

// List returns all employees in ID order.
func (s *Service) List() ([]Employee, error) {
	out, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", zap.Error(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return out, nil
}

// Count reports how many employees exist.
func (s *Service) Count() (int, error) {
	return s.storage.Count()
}
