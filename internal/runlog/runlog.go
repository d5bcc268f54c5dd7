// Package runlog keeps a CSV summary of batch parse runs.
package runlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/txnotify-dev/txnotify/internal/model"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp     time.Time
	Source        string
	OperationType string
	Amount        string
	Currency      string
}

// Header is the CSV header for txnotify-log.csv.
const Header = "timestamp,source,operation_type,amount,currency"

const (
	numFields    = 5
	logFile      = "txnotify-log.csv"
	colTimestamp = 0
	colSource    = 1
	colType      = 2
	colAmount    = 3
	colCurrency  = 4
)

// FromRecord builds a log entry for one parsed record. Amount and
// currency stay empty when the record has no operation.
func FromRecord(source string, rec model.TransactionRecord, now time.Time) Entry {
	e := Entry{
		Timestamp:     now,
		Source:        source,
		OperationType: string(rec.OperationType),
	}
	if rec.HasOperation() {
		e.Amount = rec.OperationAmount.String()
		e.Currency = string(*rec.OperationCurrency)
	}
	return e
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSource] = e.Source
	row[colType] = e.OperationType
	row[colAmount] = e.Amount
	row[colCurrency] = e.Currency
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp:     ts,
		Source:        record[colSource],
		OperationType: record[colType],
		Amount:        record[colAmount],
		Currency:      record[colCurrency],
	}, nil
}

// Append writes entries to <dir>/txnotify-log.csv, creating the file and
// header if needed.
func Append(dir string, entries []Entry) error {
	path := filepath.Join(dir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := f.WriteString(Header + "\n"); err != nil {
			return fmt.Errorf("writing run log header: %w", err)
		}
	}

	w := csv.NewWriter(f)
	for _, e := range entries {
		if err := w.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing run log row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing run log: %w", err)
	}
	return nil
}

// ReadAll reads every entry from <dir>/txnotify-log.csv. A missing file
// yields no entries.
func ReadAll(dir string) ([]Entry, error) {
	data, err := os.ReadFile(filepath.Join(dir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading run log: %w", err)
	}

	cr := csv.NewReader(strings.NewReader(string(data)))
	cr.FieldsPerRecord = numFields
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing run log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
