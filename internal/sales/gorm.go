package sales

import (
	"time"

	"github.com/jinzhu/gorm"
)

// GormStorage persists sales in the relational store.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (g *GormStorage) Create(sale *Sale) error {
	return g.db.Create(sale).Error
}

func (g *GormStorage) GetAll() ([]Sale, error) {
	var out []Sale
	if err := g.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStorage) Since(cutoff time.Time) ([]Sale, error) {
	var out []Sale
	if err := g.db.Where("date >= ?", cutoff).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStorage) Count() (int, error) {
	var n int
	if err := g.db.Model(&Sale{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (g *GormStorage) TotalQuantity() (int, error) {
	var result struct{ Total int }
	err := g.db.Model(&Sale{}).Select("coalesce(sum(quantity), 0) as total").Scan(&result).Error
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (g *GormStorage) TotalsByProduct() ([]ProductTotal, error) {
	rows, err := g.db.Model(&Sale{}).
		Select("product_name, sum(quantity) as quantity").
		Group("product_name").
		Order("product_name").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProductTotal
	for rows.Next() {
		var pt ProductTotal
		if err := rows.Scan(&pt.ProductName, &pt.Quantity); err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}
