// Package processor turns wallet transaction records into ledger postings.
package processor

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/paytm-import/internal/categorizer"
	"github.com/example/paytm-import/internal/config"
	"github.com/example/paytm-import/pkg/transaction"
)

// TimestampLayout is the export's "day/month/year hour:minute:second" format.
const TimestampLayout = "2/1/2006 15:4:5"

const orderMarker = "Order #"

// Skip reasons reported on skipped outcomes.
const (
	ReasonOnHold     = "on hold"
	ReasonRefunded   = "refund of held order"
	ReasonNotSettled = "status not " + transaction.StatusSuccess
	ReasonTopUp      = "top-up from linked account"
)

// Categorizer resolves a counterparty to a ledger account.
type Categorizer interface {
	Categorize(where string) string
}

// Status tags an Outcome.
type Status int

const (
	Skipped Status = iota
	Processed
)

func (s Status) String() string {
	if s == Processed {
		return "processed"
	}
	return "skipped"
}

// Outcome is the result of processing one record. Date, Where and Amount are
// only set when Status is Processed.
type Outcome struct {
	Status     Status
	Date       time.Time
	Where      string
	Amount     decimal.Decimal
	SkipReason string
}

// FormatError reports a field that could not be parsed.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Processor applies the skip rules and reconciles amounts for a single export.
// It must see records in chronological order and is not safe for concurrent use.
type Processor struct {
	categorizer Categorizer
	account     string
	currency    string
	payee       string

	// onHold maps identifiers of held orders to their status. It lives for one
	// run and only grows; it is bounded by the number of holds in the export.
	onHold map[string]string
}

// New creates a Processor posting against the configured wallet account.
func New(c Categorizer, cfg *config.Config) *Processor {
	return &Processor{
		categorizer: c,
		account:     cfg.Account,
		currency:    cfg.Currency,
		payee:       cfg.Payee,
		onHold:      make(map[string]string),
	}
}

// Identify returns the correlation key of a record.
func (p *Processor) Identify(rec transaction.Record) string {
	return rec.Identifier
}

// ShouldSkip reports whether rec produces no posting. Hold records are
// remembered as a side effect.
func (p *Processor) ShouldSkip(rec transaction.Record) bool {
	return p.skipReason(rec) != ""
}

func (p *Processor) skipReason(rec transaction.Record) string {
	id := p.Identify(rec)

	switch {
	case rec.Activity == transaction.ActivityOnHold:
		p.onHold[id] = rec.Status
		return ReasonOnHold
	case rec.Activity == transaction.ActivityRefunded && p.isHeld(id):
		// the matching debit is settled by the order itself
		return ReasonRefunded
	case rec.Status != transaction.StatusSuccess:
		return ReasonNotSettled
	case rec.Activity == transaction.ActivityTopUp:
		// recorded by the linked bank account's own ledger
		return ReasonTopUp
	}
	return ""
}

func (p *Processor) isHeld(id string) bool {
	_, ok := p.onHold[id]
	return ok
}

// Process normalizes rec into an Outcome. Parse failures are returned as
// *FormatError.
func (p *Processor) Process(rec transaction.Record) (Outcome, error) {
	if reason := p.skipReason(rec); reason != "" {
		return Outcome{Status: Skipped, SkipReason: reason}, nil
	}

	date, err := time.Parse(TimestampLayout, strings.TrimSpace(rec.Timestamp))
	if err != nil {
		return Outcome{}, &FormatError{Field: "timestamp", Value: rec.Timestamp, Err: err}
	}

	amount := decimal.Zero
	if rec.Debit != "" {
		debit, err := parseAmount("debit", rec.Debit)
		if err != nil {
			return Outcome{}, err
		}
		amount = amount.Sub(debit)
	}
	if rec.Credit != "" {
		credit, err := parseAmount("credit", rec.Credit)
		if err != nil {
			return Outcome{}, err
		}
		amount = amount.Add(credit)
	}

	return Outcome{
		Status: Processed,
		Date:   date,
		Where:  counterparty(rec),
		Amount: amount,
	}, nil
}

func counterparty(rec transaction.Record) string {
	if rec.Activity == transaction.ActivityCashback {
		return categorizer.CashbackPayee
	}
	order, _, _ := strings.Cut(rec.Identifier, orderMarker)
	if order = strings.TrimSpace(order); order != "" {
		return order
	}
	return rec.Comment
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, &FormatError{Field: field, Value: s, Err: err}
	}
	return d, nil
}

// Format renders a processed outcome as a posting. It returns "" for anything
// else.
func (p *Processor) Format(o Outcome) string {
	if o.Status != Processed {
		return ""
	}
	return fmt.Sprintf("%s * \"%s\" \"%s\"\n        %s                      %s %s\n        %s\n",
		o.Date.Format("2006-01-02"),
		p.payee,
		o.Where,
		p.account,
		FormatAmount(o.Amount),
		p.currency,
		p.categorizer.Categorize(o.Where),
	)
}

// FormatAmount prints d with the precision it was parsed with, so "-200.00"
// is not shortened to "-200".
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
