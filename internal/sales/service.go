package sales

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ReportWindow is the trailing period covered by the weekly sales report.
const ReportWindow = 7 * 24 * time.Hour

// ErrInvalidInput is returned when a sale fails validation before any
// write is attempted.
var ErrInvalidInput = errors.New("invalid sale input")

// Service provides high-level sales recording and reporting on a Storage
// backend.
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

// Record creates a sale. The total price is computed from the unit price
// and quantity at the creation instant; the timestamp is truncated to whole
// seconds, matching the display format.
func (s *Service) Record(productName string, quantity int, price float64) (*Sale, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, fmt.Errorf("%w: product name must not be empty", ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidInput)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	sale := &Sale{
		ProductName: productName,
		Quantity:    quantity,
		TotalPrice:  float64(quantity) * price,
		Date:        s.now().Truncate(time.Second),
	}

	if err := s.storage.Create(sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("product_name", productName), zap.Error(err))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.logger.Info("sale recorded",
		zap.Uint("sale_id", sale.ID),
		zap.String("product_name", sale.ProductName),
		zap.Int("quantity", sale.Quantity),
		zap.Float64("total_price", sale.TotalPrice),
	)
	return sale, nil
}

// List returns all sales in ID order.
func (s *Service) List() ([]Sale, error) {
	out, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to list sales", zap.Error(err))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return out, nil
}

// LastWeek returns the sales from the trailing 7-day window ending now.
// A sale dated exactly seven days ago is included.
func (s *Service) LastWeek() ([]Sale, error) {
	cutoff := s.now().Add(-ReportWindow).Truncate(time.Second)
	out, err := s.storage.Since(cutoff)
	if err != nil {
		s.logger.Error("failed to query weekly sales", zap.Time("cutoff", cutoff), zap.Error(err))
		return nil, fmt.Errorf("failed to query weekly sales: %w", err)
	}
	return out, nil
}

// Count reports how many sales exist.
func (s *Service) Count() (int, error) {
	return s.storage.Count()
}

// TotalQuantity reports the sum of quantities across all sales.
func (s *Service) TotalQuantity() (int, error) {
	return s.storage.TotalQuantity()
}

// TotalsByProduct aggregates sold quantities per product name.
func (s *Service) TotalsByProduct() ([]ProductTotal, error) {
	return s.storage.TotalsByProduct()
}
