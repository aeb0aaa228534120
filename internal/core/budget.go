package core

import "time"

// Budget is the monthly breakdown of a yearly income against a savings goal.
type Budget struct {
	MonthlyIncome Money
	Remaining     Money // monthly income minus the savings goal
}

// MonthlyBudget splits a yearly income into months and subtracts the monthly
// savings goal. Pure arithmetic: a goal larger than the monthly income yields
// a negative remainder, by contract left to the caller to present.
func MonthlyBudget(yearlyIncome, savingsGoal Money) Budget {
	monthly := divRound(yearlyIncome.Cents, 12)
	return Budget{
		MonthlyIncome: Money{Cents: monthly},
		Remaining:     Money{Cents: monthly - savingsGoal.Cents},
	}
}

// MonthTotal sums the amounts of all rows falling in the given calendar
// month, with the usual malformed-row tolerance. The second result counts
// the dropped rows.
func MonthTotal(records []Record, year int, month time.Month) (Money, int) {
	key := MonthKeyOf(year, month)
	var total int64
	skipped := 0
	for _, r := range records {
		e, err := r.Parse()
		if err != nil {
			skipped++
			continue
		}
		if e.MonthKey() == key {
			total += e.Amount.Cents
		}
	}
	return Money{Cents: total}, skipped
}

// RemainingThisMonth subtracts the current calendar month's spending from the
// budget's post-savings remainder.
func (b Budget) RemainingThisMonth(records []Record, now time.Time) Money {
	spent, _ := MonthTotal(records, now.Year(), now.Month())
	return Money{Cents: b.Remaining.Cents - spent.Cents}
}

// divRound divides cents with half-up rounding away from zero.
func divRound(cents, by int64) int64 {
	if cents < 0 {
		return (cents - by/2) / by
	}
	return (cents + by/2) / by
}
