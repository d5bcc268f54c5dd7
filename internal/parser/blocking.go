package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/txnotify-dev/txnotify/internal/model"
)

// extractBlocking handles blocked/rejected operations such as
// "Blokuvannia: ORDER001 PAYMENT*MERCHANT 25.12.2024 Kartka 000000****0000.
// Suma 2540.43UAH. Dostupno 78126.18UAH." Every field runs an ordered
// fallback chain because blocking texts are the least uniform.
func extractBlocking(content, _ string, rec *model.TransactionRecord) error {
	m := blockAmountRe.FindStringSubmatch(content)
	if m == nil {
		// With at least two pairs in the text, the first is the
		// operation and a later one the balance.
		if all := amountCurrencyRe.FindAllStringSubmatch(content, -1); len(all) >= 2 {
			m = all[0]
		}
	}
	if m != nil {
		if err := setPair(m, rec.SetOperation); err != nil {
			return err
		}
	}

	bm := blockAvailableRe.FindStringSubmatch(content)
	if bm == nil {
		bm = labeledBalanceRe.FindStringSubmatch(content)
	}
	if bm != nil {
		if err := setPair(bm, rec.SetBalance); err != nil {
			return err
		}
	}

	cm := cardKeywordRe.FindStringSubmatch(content)
	if cm == nil {
		cm = cardAnywhereRe.FindStringSubmatch(content)
	}
	if cm != nil {
		rec.SetDetails(cm[1])
	}

	if cp, ok := blockingCounterparty(content); ok {
		rec.SetCounterparty(cp)
	}
	return nil
}

// blockingCounterparty captures the text between the blocking keyword and
// the next date or card label. The combined pattern wins outright; the
// per-keyword retry additionally demands a capture longer than two
// characters.
func blockingCounterparty(content string) (string, bool) {
	if m := blockCounterpartyRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	lc := strings.ToLower(content)
	for i, kw := range blockCounterpartyKeywords {
		if !strings.Contains(lc, kw) {
			continue
		}
		if m := blockCounterpartyFallbackRes[i].FindStringSubmatch(content); m != nil {
			cp := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(cp) > 2 {
				return cp, true
			}
		}
	}
	return "", false
}
