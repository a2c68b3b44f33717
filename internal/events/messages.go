package events

import (
	"encoding/json"
	"time"
)

// BudgetAlert is published when a newly created expense lifts a
// category's month-to-date spend above its configured budget.
type BudgetAlert struct {
	Category  string    `json:"category"`
	Spent     float64   `json:"spent"`
	Limit     float64   `json:"limit"`
	OverBy    float64   `json:"over_by"`
	Timestamp time.Time `json:"timestamp"`
}

// NewBudgetAlert builds an alert for the given category totals.
func NewBudgetAlert(category string, spent, limit float64) *BudgetAlert {
	return &BudgetAlert{
		Category:  category,
		Spent:     spent,
		Limit:     limit,
		OverBy:    spent - limit,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the alert to JSON bytes.
func (a *BudgetAlert) ToJSON() ([]byte, error) {
	return json.Marshal(a)
}

// BudgetAlertFromJSON creates an alert from JSON bytes.
func BudgetAlertFromJSON(data []byte) (*BudgetAlert, error) {
	var a BudgetAlert
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
