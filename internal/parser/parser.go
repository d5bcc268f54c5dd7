// Package parser turns a bank push notification (free text, optional
// title, optional app identifier) into a structured transaction record.
//
// Classification is an ordered cascade: each rule pairs a predicate with
// an extractor, and the first predicate to match selects both the
// operation type and the extraction routine. The final rule always
// matches and performs best-effort generic extraction. All pattern
// tables are built once at init and never mutated, so Parse is safe for
// concurrent callers.
package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/txnotify-dev/txnotify/internal/model"
)

type rule struct {
	op      model.OperationType
	match   func(content, title string) bool
	extract func(content, title string, rec *model.TransactionRecord) error
}

// rules is the classification cascade. Order matters: balance-only
// notices are checked first because operation texts can mention the
// balance too, and incoming/blocking run before outgoing because the
// outgoing keyword set is the broadest.
var rules = []rule{
	{model.OpBalanceInfo, isBalanceInfo, extractBalanceInfo},
	{model.OpIncoming, isIncoming, extractIncoming},
	{model.OpReject, isBlocking, extractBlocking},
	{model.OpOutgoing, isOutgoing, extractOutgoing},
	{model.OpUnknown, isGeneric, extractGeneric},
}

// Parse classifies a notification and extracts a TransactionRecord.
// appName is accepted for future bank-specific dispatch and is currently
// unused by every routine.
//
// A pattern that does not match leaves its field nil; that is the normal
// outcome, not an error. A matched numeric token that fails normalization
// aborts that field and returns the partially filled record together
// with a *NumberFormatError.
func Parse(content, appName, title string) (model.TransactionRecord, error) {
	var rec model.TransactionRecord
	for _, r := range rules {
		if !r.match(content, title) {
			continue
		}
		rec.OperationType = r.op
		err := r.extract(content, title, &rec)
		return rec, err
	}
	// Unreachable: the generic rule always matches.
	rec.OperationType = model.OpUnknown
	return rec, nil
}

// setPair parses an amount-currency submatch (groups 1 and 2) into the
// given paired setter.
func setPair(m []string, set func(decimal.Decimal, model.Currency)) error {
	d, err := NormalizeNumber(m[1])
	if err != nil {
		return err
	}
	set(d, model.Currency(strings.ToUpper(m[2])))
	return nil
}
