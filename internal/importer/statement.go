package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmentor-dev/finmentor/internal/model"
)

// StatementParser parses loosely structured bank statement exports. Column
// naming is not fixed: each logical field is resolved through a list of
// known header aliases, and rows whose amount cannot be resolved are
// skipped rather than failing the whole file.
type StatementParser struct{}

// Header aliases per logical field, tried in order. Matching is against
// lower-cased, trimmed header names.
var (
	debitAliases    = []string{"debit", "withdrawal amt.", "withdrawal amount", "withdrawal"}
	creditAliases   = []string{"credit", "deposit amt.", "deposit amount", "deposit"}
	amountAliases   = []string{"amount", "txn amount", "transaction amount"}
	typeAliases     = []string{"type", "transaction type", "dr/cr", "drcr"}
	merchantAliases = []string{"merchant", "payee", "description", "remarks", "narration", "particulars", "transaction details"}
	categoryAliases = []string{"category"}
	dateAliases     = []string{"date", "txn date", "transaction date", "value date"}
)

// fallbackMerchant is used when no merchant-ish column has a value.
const fallbackMerchant = "Imported transaction"

// displayDateFormat is the short display form used across the ledger.
const displayDateFormat = "Jan 2"

// Layouts tried when normalizing statement dates. Month-first forms come
// before day-first ones to match how the original resolved the ambiguity.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	time.RFC3339,
}

// Status messages surfaced to the user after an import attempt.
const (
	StatusNoRows  = "No rows found in CSV file."
	StatusNoValid = "No valid transactions found to import."
	StatusFailed  = "Failed to import file. Please check CSV format."
)

// Result summarizes one import run.
type Result struct {
	Imported int
	Skipped  int
	Status   string
}

// record maps a lower-cased header name to the row's trimmed cell value.
type record map[string]string

// Format returns the parser name.
func (p *StatementParser) Format() string { return "statement" }

// Parse reads a statement CSV and returns the transactions that resolved.
// Rows without a resolvable non-zero amount are dropped silently; use
// Import to also get counts and a status message.
func (p *StatementParser) Parse(r io.Reader) ([]model.Transaction, error) {
	records, err := parseRecords(r)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for _, rec := range records {
		if tx, ok := resolve(rec, time.Now()); ok {
			txns = append(txns, tx)
		}
	}
	return txns, nil
}

// Import parses the statement and appends each resolved row to sink, in
// input order, one row at a time. A sink failure aborts the run; rows
// already appended stay appended, matching the original's per-row effect.
func Import(r io.Reader, sink Sink) (Result, error) {
	records, err := parseRecords(r)
	if err != nil {
		return Result{Status: StatusFailed}, err
	}
	if len(records) == 0 {
		return Result{Status: StatusNoRows}, nil
	}

	var res Result
	now := time.Now()
	for _, rec := range records {
		tx, ok := resolve(rec, now)
		if !ok {
			res.Skipped++
			continue
		}
		if _, err := sink.Append(tx); err != nil {
			res.Status = StatusFailed
			return res, fmt.Errorf("appending transaction: %w", err)
		}
		res.Imported++
	}

	if res.Imported > 0 {
		res.Status = fmt.Sprintf("Imported %d transactions successfully.", res.Imported)
	} else {
		res.Status = StatusNoValid
	}
	return res, nil
}

// parseRecords reads the CSV into header-keyed row maps. Returns an empty
// slice when there is no data row. Quoted fields, doubled quotes, embedded
// commas, CRLF line endings and blank lines are all handled by the reader.
func parseRecords(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// resolve turns one statement row into a transaction. The second return is
// false when no non-zero amount could be resolved.
func resolve(rec record, now time.Time) (model.Transaction, bool) {
	amount, ok := resolveAmount(rec)
	if !ok {
		return model.Transaction{}, false
	}

	merchant := firstField(rec, merchantAliases)
	if merchant == "" {
		merchant = fallbackMerchant
	}

	category := firstField(rec, categoryAliases)
	if category == "" {
		category = InferCategory(merchant)
	}

	date := normalizeDate(firstField(rec, dateAliases), now)

	return model.Transaction{
		Merchant: merchant,
		Date:     date,
		Amount:   amount,
		Category: category,
		// Imported rows always carry the generic icon; only manual
		// entries get a category-matched one.
		Icon: model.IconShoppingBag,
	}, true
}

// resolveAmount applies the sign heuristics: an explicit debit column wins,
// then credit, then a generic amount column signed by the dr/cr type flag.
func resolveAmount(rec record) (decimal.Decimal, bool) {
	debit := cleanAmount(firstField(rec, debitAliases))
	if debit.IsPositive() {
		return debit.Abs().Neg(), true
	}

	credit := cleanAmount(firstField(rec, creditAliases))
	if credit.IsPositive() {
		return credit.Abs(), true
	}

	direct := cleanAmount(firstField(rec, amountAliases))
	if direct.IsZero() {
		return decimal.Decimal{}, false
	}

	flag := strings.ToLower(firstField(rec, typeAliases))
	switch {
	case strings.Contains(flag, "credit") || flag == "cr":
		return direct.Abs(), true
	case strings.Contains(flag, "debit") || flag == "dr":
		return direct.Abs().Neg(), true
	default:
		// No usable flag: keep the sign the statement carried.
		return direct, true
	}
}

// firstField returns the first non-empty cell among the aliased headers.
func firstField(rec record, aliases []string) string {
	for _, key := range aliases {
		if v := rec[key]; v != "" {
			return v
		}
	}
	return ""
}

// cleanAmount strips currency symbols and thousands separators before
// parsing. Anything unparseable counts as zero.
func cleanAmount(raw string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '-' || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return decimal.Decimal{}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}
	}
	return d
}

// normalizeDate reformats a parseable statement date to the short display
// form. Unparseable values pass through unchanged; an empty value becomes
// today's date.
func normalizeDate(raw string, now time.Time) string {
	if raw == "" {
		return now.Format(displayDateFormat)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayDateFormat)
		}
	}
	return raw
}
