package parser

import (
	"github.com/txnotify-dev/txnotify/internal/model"
)

// extractBalanceInfo handles balance-only notices such as
// "Картка: *0000\nБаланс: 5853,79 UAH". A balance notice never carries an
// operation or a counterparty, so those fields stay absent no matter what
// else the text contains.
func extractBalanceInfo(content, _ string, rec *model.TransactionRecord) error {
	if m := balanceLabelRe.FindStringSubmatch(content); m != nil {
		if err := setPair(m, rec.SetBalance); err != nil {
			return err
		}
	}
	if m := cardLabelRe.FindStringSubmatch(content); m != nil {
		rec.SetDetails(m[1])
	}
	rec.OperationAmount = nil
	rec.OperationCurrency = nil
	rec.CounterpartyDetails = nil
	return nil
}
