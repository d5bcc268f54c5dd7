package parser

import (
	"github.com/txnotify-dev/txnotify/internal/model"
)

// extractOutgoing handles debits. Titles like
// "-1 000.00 UAH доступно 505.01 UAH *0000" carry the whole record; the
// amount is stored positive. Without a minus title, the fields come from
// the content. Outgoing formats carry no reliable counterparty, so the
// field is always left absent.
func extractOutgoing(content, title string, rec *model.TransactionRecord) error {
	if minusAmountHintRe.MatchString(title) {
		if m := titleAmountRe.FindStringSubmatch(title); m != nil {
			if err := setPair(m, rec.SetOperation); err != nil {
				return err
			}
		}
		if m := titleAvailableRe.FindStringSubmatch(title); m != nil {
			if err := setPair(m, rec.SetBalance); err != nil {
				return err
			}
		}
		if m := trailingCardRe.FindStringSubmatch(title); m != nil {
			rec.SetDetails(m[1])
		}
	} else {
		if m := amountCurrencyRe.FindStringSubmatch(content); m != nil {
			if err := setPair(m, rec.SetOperation); err != nil {
				return err
			}
		}
		if m := outgoingBalanceRe.FindStringSubmatch(content); m != nil {
			if err := setPair(m, rec.SetBalance); err != nil {
				return err
			}
		}
		cm := outgoingCardRe.FindStringSubmatch(content)
		if cm == nil {
			cm = cardAnywhereRe.FindStringSubmatch(content)
		}
		if cm != nil {
			rec.SetDetails(cm[1])
		}
	}

	rec.CounterpartyDetails = nil
	return nil
}
