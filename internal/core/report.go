package core

import "sort"

// Report is the monthly-by-category spending table: one row per distinct
// month key, one column per distinct category encountered, cells summing
// the amounts for that pair. Combinations with no rows read as zero.
type Report struct {
	Months     []string // chronological (lexical YYYY-MM order)
	Categories []string // sorted
	cells      map[string]map[string]int64
	Skipped    int // rows dropped because date or amount failed coercion
}

// BuildReport aggregates raw records into the report table. Rows whose date
// or amount fails coercion are counted in Skipped and otherwise ignored; the
// stored file is never corrected or rejected.
func BuildReport(records []Record) Report {
	rep := Report{cells: make(map[string]map[string]int64)}
	monthSet := map[string]struct{}{}
	catSet := map[string]struct{}{}

	for _, r := range records {
		e, err := r.Parse()
		if err != nil {
			rep.Skipped++
			continue
		}
		month := e.MonthKey()
		monthSet[month] = struct{}{}
		catSet[e.Category] = struct{}{}
		row := rep.cells[month]
		if row == nil {
			row = make(map[string]int64)
			rep.cells[month] = row
		}
		row[e.Category] += e.Amount.Cents
	}

	for m := range monthSet {
		rep.Months = append(rep.Months, m)
	}
	sort.Strings(rep.Months)
	for c := range catSet {
		rep.Categories = append(rep.Categories, c)
	}
	sort.Strings(rep.Categories)
	return rep
}

// Cell returns the summed amount for a (month, category) pair, zero when no
// record contributed to it.
func (r Report) Cell(month, category string) Money {
	return Money{Cents: r.cells[month][category]}
}

// MonthTotal returns the total across all categories for one month key.
func (r Report) MonthTotal(month string) Money {
	var total int64
	for _, cents := range r.cells[month] {
		total += cents
	}
	return Money{Cents: total}
}

// Empty reports whether no row survived coercion.
func (r Report) Empty() bool {
	return len(r.Months) == 0
}
