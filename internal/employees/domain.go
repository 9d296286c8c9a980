package employees

import "time"

// TimeFormat is the display/export representation of the join date.
const TimeFormat = "2006-01-02 15:04:05"

// Employee is a staff record. Records are append-only and email addresses
// are unique across the table.
type Employee struct {
	ID         uint      `json:"id" gorm:"primary_key"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"unique;not null"`
	Position   string    `json:"position" gorm:"not null"`
	DateJoined time.Time `json:"date_joined" gorm:"not null"`
}
