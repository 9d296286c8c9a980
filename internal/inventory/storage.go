package inventory

import (
	"errors"
	"sort"
)

// ErrNotFound is returned when an item with the given ID does not exist.
var ErrNotFound = errors.New("item not found")

// Storage is the persistence interface for inventory items.
type Storage interface {
	Create(item *Item) error
	GetAll() ([]Item, error)
	Get(id uint) (*Item, error)
	Update(item *Item) error
	Delete(id uint) error
	Count() (int, error)
}

// LocalStorage provides an in-memory implementation for storing items.
type LocalStorage struct {
	m      map[uint]*Item
	nextID uint
}

// NewLocalStorage instantiates a new LocalStorage with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[uint]*Item{}, nextID: 1}
}

// Create stores the item and assigns the next free ID.
func (l *LocalStorage) Create(item *Item) error {
	item.ID = l.nextID
	l.nextID++
	cp := *item
	l.m[item.ID] = &cp
	return nil
}

// GetAll returns every item ordered by ID.
func (l *LocalStorage) GetAll() ([]Item, error) {
	items := make([]Item, 0, len(l.m))
	for _, it := range l.m {
		items = append(items, *it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Get retrieves an item by ID. Returns ErrNotFound if absent.
func (l *LocalStorage) Get(id uint) (*Item, error) {
	it, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

// Update overwrites an existing item. Returns ErrNotFound if absent.
func (l *LocalStorage) Update(item *Item) error {
	if _, ok := l.m[item.ID]; !ok {
		return ErrNotFound
	}
	cp := *item
	l.m[item.ID] = &cp
	return nil
}

// Delete removes an item by ID. Returns ErrNotFound if absent.
func (l *LocalStorage) Delete(id uint) error {
	if _, ok := l.m[id]; !ok {
		return ErrNotFound
	}
	delete(l.m, id)
	return nil
}

func (l *LocalStorage) Count() (int, error) {
	return len(l.m), nil
}
