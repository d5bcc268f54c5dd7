package parser

import (
	"github.com/txnotify-dev/txnotify/internal/model"
)

// extractGeneric is the best-effort fallback for unclassified texts: the
// first amount-currency pair is the operation, the last pair (when more
// than one exists) is the balance, and any 4+ digit/asterisk run is the
// card reference.
func extractGeneric(content, _ string, rec *model.TransactionRecord) error {
	all := amountCurrencyRe.FindAllStringSubmatch(content, -1)
	if len(all) > 0 {
		if err := setPair(all[0], rec.SetOperation); err != nil {
			return err
		}
		if len(all) > 1 {
			if err := setPair(all[len(all)-1], rec.SetBalance); err != nil {
				return err
			}
		}
	}
	if m := cardAnywhereRe.FindStringSubmatch(content); m != nil {
		rec.SetDetails(m[1])
	}
	return nil
}
