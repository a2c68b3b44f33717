package core

import (
	"math"
	"strings"
	"time"
)

const (
	Food           Category = "food"
	Transportation Category = "transportation"
	Housing        Category = "housing"
	Utilities      Category = "utilities"
	Entertainment  Category = "entertainment"
	Healthcare     Category = "healthcare"
	Education      Category = "education"
	Shopping       Category = "shopping"
	Personal       Category = "personal"
	Other          Category = "other"
)

type (
	// Category is one of the fixed expense/budget buckets.
	Category string

	// Date is a calendar date. All dates are UTC calendar dates: the
	// wire format carries no zone, so parsing and month comparisons use
	// UTC components only.
	Date struct {
		time.Time
	}

	Expense struct {
		ID          string   `json:"id"`
		Amount      float64  `json:"amount"`
		Category    Category `json:"category"`
		Description string   `json:"description"`
		Date        Date     `json:"date"`
	}

	Budget struct {
		Category Category `json:"category"`
		Amount   float64  `json:"amount"`
	}

	User struct {
		Email        string `json:"email"`
		PasswordHash string `json:"-"`
	}
)

// Categories returns the known categories in canonical order.
func Categories() []Category {
	return []Category{
		Food, Transportation, Housing, Utilities, Entertainment,
		Healthcare, Education, Shopping, Personal, Other,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case Food, Transportation, Housing, Utilities, Entertainment,
		Healthcare, Education, Shopping, Personal, Other:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// In reports whether the date falls in the given calendar month.
func (d Date) In(year int, month time.Month) bool {
	return d.Year() == year && d.Time.Month() == month
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (e Expense) Validate() error {
	if e.Amount <= 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return Validation("amount must be a positive number")
	}
	if strings.TrimSpace(string(e.Category)) == "" {
		return Validation("category is required")
	}
	if e.Date.IsZero() {
		return Validation("date is required")
	}
	if len(e.Description) > 200 {
		return Validation("description too long (max 200 characters)")
	}
	return nil
}

func (b Budget) Validate() error {
	if !b.Category.IsValid() {
		return Validation("unknown category")
	}
	if b.Amount < 0 || math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
		return Validation("amount must be a non-negative number")
	}
	return nil
}
