package employees

import (
	"errors"
	"strings"

	"github.com/jinzhu/gorm"
)

// GormStorage persists employees in the relational store. The unique index
// on email is the last line of defense against duplicates.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (g *GormStorage) Create(emp *Employee) error {
	if err := g.db.Create(emp).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// isUniqueViolation recognizes unique-index errors from both supported
// dialects (postgres "duplicate key", sqlite "UNIQUE constraint failed").
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

func (g *GormStorage) GetAll() ([]Employee, error) {
	var out []Employee
	if err := g.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStorage) GetByEmail(email string) (*Employee, error) {
	var emp Employee
	if err := g.db.Where("email = ?", email).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (g *GormStorage) Count() (int, error) {
	var n int
	if err := g.db.Model(&Employee{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
