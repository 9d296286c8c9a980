package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestRecord_ComputesTotalAndTimestamp(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))
	fixed := time.Date(2025, 3, 10, 14, 30, 45, 123456789, time.UTC)
	svc.now = func() time.Time { return fixed }

	sale, err := svc.Record("Widget", 3, 4.0)
	assert.NoError(t, err)
	assert.NotZero(t, sale.ID)
	assert.Equal(t, 12.0, sale.TotalPrice)
	assert.Equal(t, fixed.Truncate(time.Second), sale.Date)
	assert.Equal(t, "2025-03-10 14:30:45", sale.Date.Format(TimeFormat))
}

func TestRecord_Validation(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))

	cases := []struct {
		name     string
		product  string
		quantity int
		price    float64
	}{
		{"empty product", "", 1, 1.0},
		{"zero quantity", "Widget", 0, 1.0},
		{"negative quantity", "Widget", -2, 1.0},
		{"negative price", "Widget", 1, -1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(tc.product, tc.quantity, tc.price)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	all, err := svc.List()
	assert.NoError(t, err)
	assert.Empty(t, all, "rejected input must not be persisted")
}

func TestLastWeek_InclusiveBoundary(t *testing.T) {
	storage := NewLocalStorage()
	svc := NewService(storage, zaptest.NewLogger(t))
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	seed := []Sale{
		{ProductName: "today", Quantity: 1, TotalPrice: 1, Date: now},
		{ProductName: "three days ago", Quantity: 1, TotalPrice: 1, Date: now.AddDate(0, 0, -3)},
		{ProductName: "exactly seven days ago", Quantity: 1, TotalPrice: 1, Date: now.AddDate(0, 0, -7)},
		{ProductName: "eight days ago", Quantity: 1, TotalPrice: 1, Date: now.AddDate(0, 0, -8)},
	}
	for i := range seed {
		assert.NoError(t, storage.Create(&seed[i]))
	}

	week, err := svc.LastWeek()
	assert.NoError(t, err)

	names := make([]string, 0, len(week))
	for _, s := range week {
		names = append(names, s.ProductName)
	}
	assert.Equal(t, []string{"today", "three days ago", "exactly seven days ago"}, names)
}

func TestAggregates(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))

	_, err := svc.Record("Widget", 3, 4.0)
	assert.NoError(t, err)
	_, err = svc.Record("Gadget", 2, 1.5)
	assert.NoError(t, err)
	_, err = svc.Record("Widget", 1, 4.0)
	assert.NoError(t, err)

	n, err := svc.Count()
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	total, err := svc.TotalQuantity()
	assert.NoError(t, err)
	assert.Equal(t, 6, total)

	byProduct, err := svc.TotalsByProduct()
	assert.NoError(t, err)
	assert.Equal(t, []ProductTotal{
		{ProductName: "Gadget", Quantity: 2},
		{ProductName: "Widget", Quantity: 4},
	}, byProduct)
}

func TestList_Order(t *testing.T) {
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))

	first, err := svc.Record("Widget", 1, 1.0)
	assert.NoError(t, err)
	second, err := svc.Record("Gadget", 1, 1.0)
	assert.NoError(t, err)

	all, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}
