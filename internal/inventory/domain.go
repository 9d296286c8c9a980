package inventory

// Item is a stock item the organization tracks. IDs are assigned by the
// store on creation. Items are deliberately not linked to sales records.
type Item struct {
	ID       uint    `json:"id" gorm:"primary_key"`
	ItemName string  `json:"item_name" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"`
}
