package inventory

import (
	"errors"

	"github.com/jinzhu/gorm"
)

// GormStorage persists items in the relational store.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (g *GormStorage) Create(item *Item) error {
	return g.db.Create(item).Error
}

func (g *GormStorage) GetAll() ([]Item, error) {
	var items []Item
	if err := g.db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (g *GormStorage) Get(id uint) (*Item, error) {
	var item Item
	if err := g.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (g *GormStorage) Update(item *Item) error {
	var existing Item
	if err := g.db.First(&existing, item.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return g.db.Save(item).Error
}

func (g *GormStorage) Delete(id uint) error {
	res := g.db.Delete(&Item{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormStorage) Count() (int, error) {
	var n int
	if err := g.db.Model(&Item{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
