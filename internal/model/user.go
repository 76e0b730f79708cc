package model

import "time"

// User represents an account holder in the budget tracker.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"size:255"` // Never expose in JSON
	CreatedAt time.Time `json:"-"`

	// Relations
	Expenses []Expense `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
