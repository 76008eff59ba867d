// Package export reads wallet transaction exports.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/example/paytm-import/pkg/transaction"
)

// ReadFile reads the export at path. See Read.
func ReadFile(path string) ([]transaction.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a CSV export, discarding its header row, and returns the records
// oldest first. Exports list the newest transaction first.
func Read(r io.Reader) ([]transaction.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []transaction.Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read export: %w", err)
		}

		rec, err := transaction.FromFields(fields)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	transaction.Reverse(records)
	return records, nil
}
