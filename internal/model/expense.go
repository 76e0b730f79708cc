package model

// Expense represents a single spending record owned by a user.
// Date is stored as given by the caller; its format is not interpreted.
type Expense struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       *string `json:"title" gorm:"size:255"`
	Description string  `json:"description" gorm:"not null"`
	Amount      float64 `json:"amount" gorm:"not null"`
	Date        string  `json:"date" gorm:"size:64;not null"`
	Category    string  `json:"category" gorm:"size:100;not null"`
	UserID      uint    `json:"user_id" gorm:"index;not null"`
}

// ExpenseSummary is the restricted projection returned by the list
// endpoint. The full row is only served per id.
type ExpenseSummary struct {
	ID       uint    `json:"id"`
	Title    *string `json:"title"`
	Category string  `json:"category"`
	UserID   uint    `json:"user_id"`
}

// Summary projects an expense onto its list view.
func (e *Expense) Summary() ExpenseSummary {
	return ExpenseSummary{
		ID:       e.ID,
		Title:    e.Title,
		Category: e.Category,
		UserID:   e.UserID,
	}
}
