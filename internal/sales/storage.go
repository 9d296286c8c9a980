package sales

import (
	"sort"
	"time"
)

// Storage is the persistence interface for sales records. There is no
// update or delete: the ledger only grows.
type Storage interface {
	Create(sale *Sale) error
	GetAll() ([]Sale, error)
	Since(cutoff time.Time) ([]Sale, error)
	Count() (int, error)
	TotalQuantity() (int, error)
	TotalsByProduct() ([]ProductTotal, error)
}

// LocalStorage provides an in-memory implementation for storing sales.
type LocalStorage struct {
	m      map[uint]*Sale
	nextID uint
}

// NewLocalStorage instantiates a new LocalStorage with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[uint]*Sale{}, nextID: 1}
}

// Create stores the sale and assigns the next free ID.
func (l *LocalStorage) Create(sale *Sale) error {
	sale.ID = l.nextID
	l.nextID++
	cp := *sale
	l.m[sale.ID] = &cp
	return nil
}

// GetAll returns every sale ordered by ID.
func (l *LocalStorage) GetAll() ([]Sale, error) {
	out := make([]Sale, 0, len(l.m))
	for _, s := range l.m {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Since returns the sales dated at or after cutoff, ordered by ID. The
// boundary is inclusive.
func (l *LocalStorage) Since(cutoff time.Time) ([]Sale, error) {
	out := make([]Sale, 0)
	for _, s := range l.m {
		if !s.Date.Before(cutoff) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (l *LocalStorage) Count() (int, error) {
	return len(l.m), nil
}

func (l *LocalStorage) TotalQuantity() (int, error) {
	total := 0
	for _, s := range l.m {
		total += s.Quantity
	}
	return total, nil
}

// TotalsByProduct aggregates sold quantities per product name, ordered by
// product name for stable output.
func (l *LocalStorage) TotalsByProduct() ([]ProductTotal, error) {
	byName := map[string]int{}
	for _, s := range l.m {
		byName[s.ProductName] += s.Quantity
	}

	out := make([]ProductTotal, 0, len(byName))
	for name, qty := range byName {
		out = append(out, ProductTotal{ProductName: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out, nil
}
