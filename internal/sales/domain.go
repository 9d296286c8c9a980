package sales

import "time"

// TimeFormat is the display/export representation of sale timestamps.
const TimeFormat = "2006-01-02 15:04:05"

// Sale represents a recorded sales transaction. Sales are append-only:
// once created they are never edited or deleted. ProductName is free text,
// deliberately not a reference into the inventory table.
type Sale struct {
	ID          uint      `json:"id" gorm:"primary_key"`
	ProductName string    `json:"product_name" gorm:"not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	TotalPrice  float64   `json:"total_price" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null;index"`
}

// ProductTotal is one row of the sales-by-product aggregation shown on the
// dashboard chart.
type ProductTotal struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}
