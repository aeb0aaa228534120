package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Record is one stored expense row exactly as entered. Date and Amount
	// stay raw strings: malformed values survive storage and are only
	// filtered out later, at report and forecast time.
	Record struct {
		Date        string
		Amount      string
		Category    string
		Description string
	}

	Money struct {
		Cents int64
	}

	// Expense is a Record whose Date and Amount passed coercion.
	Expense struct {
		Date        time.Time
		Amount      Money
		Category    string
		Description string
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
)

// dateLayouts are the accepted date formats, tried in order. The web form
// submits the first one.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
}

// ParseDate coerces a stored date string to a calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Parse coerces the raw row into an Expense. Rows failing either coercion
// are dropped by aggregations, never reported as errors.
func (r Record) Parse() (Expense, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return Expense{}, err
	}
	cents, err := ParseAmountCents(r.Amount)
	if err != nil {
		return Expense{}, err
	}
	return Expense{
		Date:        date,
		Amount:      Money{Cents: cents},
		Category:    r.Category,
		Description: r.Description,
	}, nil
}

// MonthKey returns the expense's date truncated to year and month, the
// grouping unit for reports and forecasting.
func (e Expense) MonthKey() string {
	return e.Date.Format("2006-01")
}

// MonthKeyOf formats a year and month the same way.
func MonthKeyOf(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Validate checks a record as submitted by the add-expense form. Stored
// history is never re-validated; this guards only new entries.
func (r Record) Validate() error {
	if _, err := ParseDate(r.Date); err != nil {
		return err
	}
	cents, err := ParseAmountCents(r.Amount)
	if err != nil {
		return err
	}
	if cents <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if len(r.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

// DefaultCategories returns the fixed category enumeration offered by the
// add-expense form. Stored rows may carry free-text categories anyway.
func DefaultCategories() []string {
	return []string{
		"Food",
		"Transport",
		"Entertainment",
		"Shopping",
		"Bills",
		"Rent",
		"Healthcare",
		"Education",
		"Travel",
		"Savings",
		"Other",
	}
}
