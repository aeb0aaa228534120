package http

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"pennywise/internal/core"
	"pennywise/internal/log"
	"pennywise/internal/store"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded",
			log.FieldPath, r.URL.Path,
			log.FieldOperation, log.OpRender)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Today      string
		Categories []string
	}{
		Today:      time.Now().Format("2006-01-02"),
		Categories: core.DefaultCategories(),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Index template execution failed",
			log.FieldError, err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error",
			log.FieldError, err, log.FieldMethod, r.Method, log.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	// Date and Amount are stored exactly as submitted; only new entries are
	// validated, stored history is read back as-is.
	rec := core.Record{
		Date:        strings.TrimSpace(r.Form.Get("date")),
		Amount:      strings.TrimSpace(r.Form.Get("amount")),
		Category:    sanitizeInput(r.Form.Get("category")),
		Description: sanitizeInput(r.Form.Get("description")),
	}
	if rec.Date == "" {
		rec.Date = time.Now().Format("2006-01-02")
	}

	if err := rec.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid expense: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	if err := s.records.Append(r.Context(), rec); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to save expense",
			log.FieldError, err,
			log.FieldCategory, rec.Category,
			log.FieldOperation, log.OpAppend)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Error adding expense</div>`))
		return
	}

	s.logger.InfoContext(r.Context(), "Expense added",
		log.FieldCategory, rec.Category,
		log.FieldOperation, log.OpAppend)

	w.Header().Set("HX-Trigger", `{"expense:created": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Expense added successfully: ` +
		template.HTMLEscapeString(rec.Description) +
		` — $` + template.HTMLEscapeString(rec.Amount) +
		` (` + template.HTMLEscapeString(rec.Category) + `)</div>`))
}

// handleReport renders the monthly-by-category report partial.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	records, err := s.records.Load(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			_, _ = w.Write([]byte(`<section id="report" class="panel"><div class="placeholder">No expenses recorded yet!</div></section>`))
			return
		}
		s.logger.ErrorContext(r.Context(), "Report load error",
			log.FieldError, err, log.FieldOperation, log.OpReport)
		_, _ = w.Write([]byte(`<section id="report" class="panel"><div class="error">Error generating report</div></section>`))
		return
	}

	rep := core.BuildReport(records)
	if rep.Empty() {
		_, _ = w.Write([]byte(`<section id="report" class="panel"><div class="placeholder">No expenses recorded yet!</div></section>`))
		return
	}

	type row struct {
		Month string
		Cells []string
	}
	data := struct {
		Categories []string
		Rows       []row
		Skipped    int
	}{Categories: rep.Categories, Skipped: rep.Skipped}
	for _, m := range rep.Months {
		cells := make([]string, 0, len(rep.Categories))
		for _, c := range rep.Categories {
			cells = append(cells, rep.Cell(m, c).String())
		}
		data.Rows = append(data.Rows, row{Month: m, Cells: cells})
	}

	if rep.Skipped > 0 {
		s.logger.WarnContext(r.Context(), "Malformed rows dropped from report",
			log.FieldSkippedRows, rep.Skipped)
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="report" class="panel"><div class="placeholder">` +
			template.HTMLEscapeString(rep.Months[len(rep.Months)-1]) + ` total: ` +
			rep.MonthTotal(rep.Months[len(rep.Months)-1]).String() + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "report.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error",
			log.FieldError, err, "template", "report.html")
		_, _ = w.Write([]byte(`<section id="report" class="panel"><div class="error">Error rendering report</div></section>`))
	}
}

// handleForecast renders the next-month projection partial.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	records, err := s.records.Load(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			_, _ = w.Write([]byte(`<section id="forecast" class="panel"><div class="placeholder">No expenses recorded yet!</div></section>`))
			return
		}
		s.logger.ErrorContext(r.Context(), "Forecast load error",
			log.FieldError, err, log.FieldOperation, log.OpForecast)
		_, _ = w.Write([]byte(`<section id="forecast" class="panel"><div class="error">Error predicting expenses</div></section>`))
		return
	}

	fc, err := core.PredictNextMonth(records)
	if err != nil {
		// All rows malformed: still the empty state, not a failure.
		_, _ = w.Write([]byte(`<section id="forecast" class="panel"><div class="placeholder">No expenses recorded yet!</div></section>`))
		return
	}

	data := struct {
		Prediction string
		Months     int
		Skipped    int
	}{Prediction: fc.Prediction.String(), Months: fc.Months, Skipped: fc.Skipped}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="forecast" class="panel"><div class="placeholder">Predicted: ` + data.Prediction + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "forecast.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error",
			log.FieldError, err, "template", "forecast.html")
		_, _ = w.Write([]byte(`<section id="forecast" class="panel"><div class="error">Error rendering forecast</div></section>`))
	}
}

// handleBudget renders the budget summary partial from the sidebar inputs.
// The budget is undefined until a positive yearly income is provided.
func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	incomeStr := strings.TrimSpace(r.URL.Query().Get("income"))
	incomeCents, err := core.ParseAmountCents(incomeStr)
	if incomeStr == "" || err != nil || incomeCents <= 0 {
		_, _ = w.Write([]byte(`<section id="budget" class="panel"><div class="placeholder">Please enter your yearly income to calculate your budget.</div></section>`))
		return
	}

	var savingsCents int64
	if v := strings.TrimSpace(r.URL.Query().Get("savings")); v != "" {
		if cents, err := core.ParseAmountCents(v); err == nil && cents > 0 {
			savingsCents = cents
		}
	}

	budget := core.MonthlyBudget(core.Money{Cents: incomeCents}, core.Money{Cents: savingsCents})

	// Missing file means no spending yet, not an error.
	records, err := s.records.Load(r.Context())
	if err != nil && !errors.Is(err, store.ErrNoData) {
		s.logger.ErrorContext(r.Context(), "Budget load error",
			log.FieldError, err, log.FieldOperation, log.OpBudget)
		_, _ = w.Write([]byte(`<section id="budget" class="panel"><div class="error">Error calculating remaining budget</div></section>`))
		return
	}

	now := time.Now()
	spent, _ := core.MonthTotal(records, now.Year(), now.Month())

	data := struct {
		MonthlyIncome string
		AfterSavings  string
		SpentMonth    string
		Remaining     string
	}{
		MonthlyIncome: budget.MonthlyIncome.String(),
		AfterSavings:  budget.Remaining.String(),
		SpentMonth:    spent.String(),
		Remaining:     budget.RemainingThisMonth(records, now).String(),
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="budget" class="panel"><div class="placeholder">Remaining this month: ` + data.Remaining + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "budget.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error",
			log.FieldError, err, "template", "budget.html")
		_, _ = w.Write([]byte(`<section id="budget" class="panel"><div class="error">Error rendering budget</div></section>`))
	}
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
