package employees

import (
	"errors"
	"sort"
)

// ErrNotFound is returned when no employee matches the lookup.
var ErrNotFound = errors.New("employee not found")

// ErrEmailTaken is returned when an insert would violate email uniqueness.
var ErrEmailTaken = errors.New("email already registered")

// Storage is the persistence interface for employee records.
type Storage interface {
	Create(emp *Employee) error
	GetAll() ([]Employee, error)
	GetByEmail(email string) (*Employee, error)
	Count() (int, error)
}

// LocalStorage provides an in-memory implementation for storing employees.
type LocalStorage struct {
	m      map[uint]*Employee
	nextID uint
}

// NewLocalStorage instantiates a new LocalStorage with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[uint]*Employee{}, nextID: 1}
}

// Create stores the employee, enforcing email uniqueness the way the
// relational store's unique index does.
func (l *LocalStorage) Create(emp *Employee) error {
	for _, e := range l.m {
		if e.Email == emp.Email {
			return ErrEmailTaken
		}
	}
	emp.ID = l.nextID
	l.nextID++
	cp := *emp
	l.m[emp.ID] = &cp
	return nil
}

// GetAll returns every employee ordered by ID.
func (l *LocalStorage) GetAll() ([]Employee, error) {
	out := make([]Employee, 0, len(l.m))
	for _, e := range l.m {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByEmail retrieves an employee by email. Returns ErrNotFound if absent.
func (l *LocalStorage) GetByEmail(email string) (*Employee, error) {
	for _, e := range l.m {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (l *LocalStorage) Count() (int, error) {
	return len(l.m), nil
}
