package core

import "errors"

// ErrNoHistory signals that no stored row survived coercion, so there is no
// spending history to average. Callers render an empty state, not a failure.
var ErrNoHistory = errors.New("no parsable expense history")

// Forecast is the projection for the upcoming month.
type Forecast struct {
	Prediction Money
	Months     int // months of history averaged, partial months included
	Skipped    int // malformed rows dropped while aggregating
}

// PredictNextMonth projects next month's spend as the unweighted arithmetic
// mean of per-month totals across all categories. A single month of history
// yields that month's total; there is no trend or seasonality adjustment and
// no minimum-data-points threshold.
func PredictNextMonth(records []Record) (Forecast, error) {
	totals := map[string]int64{}
	skipped := 0
	for _, r := range records {
		e, err := r.Parse()
		if err != nil {
			skipped++
			continue
		}
		totals[e.MonthKey()] += e.Amount.Cents
	}
	if len(totals) == 0 {
		return Forecast{Skipped: skipped}, ErrNoHistory
	}
	var sum int64
	for _, cents := range totals {
		sum += cents
	}
	n := int64(len(totals))
	// Mean in cents with half-up rounding
	mean := (sum + n/2) / n
	if sum < 0 {
		mean = (sum - n/2) / n
	}
	return Forecast{
		Prediction: Money{Cents: mean},
		Months:     len(totals),
		Skipped:    skipped,
	}, nil
}
