package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

const summaryCacheKey = "current"

type transactionJSON struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	AmountCents int64   `json:"amount_cents"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

func toTransactionJSON(t core.Transaction) transactionJSON {
	return transactionJSON{
		ID:          t.ID,
		Date:        t.Date.String(),
		Category:    t.Category,
		Type:        string(t.Type),
		AmountCents: t.Amount.Cents,
		Amount:      t.Amount.Dollars(),
		Description: t.Description,
	}
}

type summaryResponse struct {
	BalanceCents int64   `json:"balance_cents"`
	Balance      float64 `json:"balance"`
	DebitsCents  int64   `json:"debits_cents"`
	Debits       float64 `json:"debits"`
	CreditsCents int64   `json:"credits_cents"`
	Credits      float64 `json:"credits"`
	Count        int     `json:"count"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// handleTransactions serves the transaction collection: POST records a new
// transaction, GET lists the current sequence with optional filters.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	case http.MethodGet:
		s.handleListTransactions(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	date := core.Date{Time: time.Now().UTC().Truncate(24 * time.Hour)}
	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		parsed, err := core.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid date, want YYYY-MM-DD")
			return
		}
		date = parsed
	}

	kind, err := core.ParseType(r.Form.Get("type"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid type, want debit or credit")
		return
	}

	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	draft := core.Transaction{
		Date:        date,
		Category:    sanitizeInput(r.Form.Get("category")),
		Type:        kind,
		Amount:      core.Money{Cents: cents},
		Description: sanitizeInput(r.Form.Get("description")),
	}

	created, err := s.store.Append(r.Context(), draft)
	if err != nil {
		if core.IsValidation(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Transaction append error", "error", err,
			"category", draft.Category, "amount_cents", draft.Amount.Cents)
		writeError(w, http.StatusInternalServerError, "failed to record transaction")
		return
	}

	s.summaryCache.Delete(summaryCacheKey)
	writeJSON(w, http.StatusCreated, toTransactionJSON(created))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	typeParam := strings.TrimSpace(r.URL.Query().Get("type"))

	var kind core.Type
	if typeParam != "" {
		kind, err = core.ParseType(typeParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid type filter, want debit or credit")
			return
		}
	}

	var txns []core.Transaction
	if year != 0 && month != 0 && category == "" && typeParam == "" {
		// Pure month queries go to the store, which can narrow them itself
		txns, err = s.store.ListMonth(r.Context(), year, month)
	} else {
		txns, err = s.store.List(r.Context())
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction list error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	var preds []ledger.Predicate
	if category != "" {
		preds = append(preds, ledger.ByCategory(category))
	}
	if typeParam != "" {
		preds = append(preds, ledger.ByType(kind))
	}
	if (year != 0 && month != 0) && (category != "" || typeParam != "") {
		preds = append(preds, ledger.InMonth(year, month))
	}
	if len(preds) > 0 {
		txns = ledger.Filter(txns, ledger.All(preds...))
	}

	out := make([]transactionJSON, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionJSON(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": out,
		"count":        len(out),
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if cached, found := s.summaryCache.Get(summaryCacheKey); found {
		slog.DebugContext(r.Context(), "Summary cache hit")
		writeJSON(w, http.StatusOK, cached)
		return
	}

	txns, err := s.store.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary list error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}

	sum := core.Summarize(txns)
	resp := summaryResponse{
		BalanceCents: sum.Balance.Cents,
		Balance:      sum.Balance.Dollars(),
		DebitsCents:  sum.Debits.Cents,
		Debits:       sum.Debits.Dollars(),
		CreditsCents: sum.Credits.Cents,
		Credits:      sum.Credits.Dollars(),
		Count:        sum.Count,
	}
	s.summaryCache.Set(summaryCacheKey, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBalanceSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	txns, err := s.store.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Balance series list error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute balance series")
		return
	}

	type point struct {
		Date         string  `json:"date"`
		BalanceCents int64   `json:"balance_cents"`
		Balance      float64 `json:"balance"`
	}
	series := core.BalanceSeries(txns)
	out := make([]point, 0, len(series))
	for _, p := range series {
		out = append(out, point{
			Date:         p.Date.String(),
			BalanceCents: p.Balance.Cents,
			Balance:      p.Balance.Dollars(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"points": out})
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	txns, err := s.store.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Monthly report list error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute monthly report")
		return
	}

	type row struct {
		Month        string  `json:"month"`
		DebitsCents  int64   `json:"debits_cents"`
		Debits       float64 `json:"debits"`
		CreditsCents int64   `json:"credits_cents"`
		Credits      float64 `json:"credits"`
	}
	trends := core.MonthlyTrends(txns)
	out := make([]row, 0, len(trends))
	for _, t := range trends {
		out = append(out, row{
			Month:        t.Label(),
			DebitsCents:  t.Debits.Cents,
			Debits:       t.Debits.Dollars(),
			CreditsCents: t.Credits.Cents,
			Credits:      t.Credits.Dollars(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"months": out})
}

// handleCategoryReport serves the expenses-by-category breakdown: unsigned
// debit magnitudes by default, signed net amounts with ?net=1.
func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	txns, err := s.store.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Category report list error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute category report")
		return
	}

	net := r.URL.Query().Get("net") == "1"
	var grouped map[string]core.Money
	kind := "debits"
	if net {
		grouped = core.NetByCategory(txns)
		kind = "net"
	} else {
		grouped = core.DebitsByCategory(txns)
	}

	type row struct {
		Category    string  `json:"category"`
		AmountCents int64   `json:"amount_cents"`
		Amount      float64 `json:"amount"`
	}
	rows := core.CategoryRows(grouped)
	out := make([]row, 0, len(rows))
	for _, c := range rows {
		out = append(out, row{
			Category:    c.Name,
			AmountCents: c.Amount.Cents,
			Amount:      c.Amount.Dollars(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"kind":       kind,
		"categories": out,
	})
}
