package inventory

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidInput is returned when an item fails validation before any
// write is attempted.
var ErrInvalidInput = errors.New("invalid item input")

// Service provides high-level inventory management on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, logger: logger}
}

func validate(name string, quantity int, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name must not be empty", ErrInvalidInput)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

// Add creates a new item. The store assigns its ID.
func (s *Service) Add(name string, quantity int, price float64) (*Item, error) {
	if err := validate(name, quantity, price); err != nil {
		return nil, err
	}

	item := &Item{ItemName: name, Quantity: quantity, Price: price}
	if err := s.storage.Create(item); err != nil {
		s.logger.Error("failed to save item", zap.String("item_name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.logger.Info("item added", zap.Uint("item_id", item.ID), zap.String("item_name", item.ItemName))
	return item, nil
}

// List returns all items in ID order.
func (s *Service) List() ([]Item, error) {
	items, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to list items", zap.Error(err))
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Get returns the item with the given ID or ErrNotFound.
func (s *Service) Get(id uint) (*Item, error) {
	return s.storage.Get(id)
}

// Update overwrites the named fields of an existing item.
func (s *Service) Update(id uint, name string, quantity int, price float64) (*Item, error) {
	if err := validate(name, quantity, price); err != nil {
		return nil, err
	}

	item := &Item{ID: id, ItemName: name, Quantity: quantity, Price: price}
	if err := s.storage.Update(item); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update item", zap.Uint("item_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.logger.Info("item updated", zap.Uint("item_id", id))
	return item, nil
}

// Remove deletes an item. Deleting an absent ID reports ErrNotFound rather
// than succeeding silently.
func (s *Service) Remove(id uint) error {
	if err := s.storage.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.logger.Error("failed to delete item", zap.Uint("item_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.logger.Info("item deleted", zap.Uint("item_id", id))
	return nil
}

// Count reports how many items exist.
func (s *Service) Count() (int, error) {
	return s.storage.Count()
}
