package transaction

import (
	"errors"
	"fmt"
)

// MinFields is the smallest row a wallet export can carry: timestamp through
// credit amount, with status as the final field.
const MinFields = 7

// Activity labels with special meaning in the wallet export.
const (
	ActivityOnHold   = "On Hold For Order"
	ActivityRefunded = "Refunded Back"
	ActivityCashback = "Cashback Received"
	ActivityTopUp    = "Added To Paytm Account"
)

// StatusSuccess marks a settled transaction.
const StatusSuccess = "SUCCESS"

// ErrShortRecord is returned when a row has too few fields to populate a Record.
var ErrShortRecord = errors.New("record has too few fields")

// Record is a single wallet transaction, decoded from its positional row once
// at ingestion.
type Record struct {
	Timestamp  string
	Activity   string
	Identifier string // e.g. "Box8 Order #1234"
	Comment    string
	Debit      string
	Credit     string
	Status     string
}

// FromFields maps a positional export row onto a Record.
// Index 3 is not used; status is always the last field.
func FromFields(fields []string) (Record, error) {
	if len(fields) < MinFields {
		return Record{}, fmt.Errorf("%w: got %d, want at least %d", ErrShortRecord, len(fields), MinFields)
	}
	return Record{
		Timestamp:  fields[0],
		Activity:   fields[1],
		Identifier: fields[2],
		Comment:    fields[4],
		Debit:      fields[5],
		Credit:     fields[6],
		Status:     fields[len(fields)-1],
	}, nil
}

// Reverse flips records in place. Exports list the newest transaction first.
func Reverse(records []Record) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}
