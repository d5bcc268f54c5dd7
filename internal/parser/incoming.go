package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/txnotify-dev/txnotify/internal/model"
)

// placeholderCounterparties are sender tokens that carry no information
// and are never accepted from the post-balance tail.
var placeholderCounterparties = map[string]bool{
	"EXAMPLE.COM": true,
	"EXAMPLE":     true,
}

// extractIncoming dispatches between the two incoming sub-formats. A
// "perekaz:" marker selects the transliterated single-line format; a
// "надходження" title or a "доступно:"/"надходження:" marker selects the
// line-oriented format. Anything else leaves only the type set.
func extractIncoming(content, title string, rec *model.TransactionRecord) error {
	lc := strings.ToLower(content)
	if strings.Contains(lc, "perekaz:") {
		return extractIncomingPrefixed(content, rec)
	}
	if strings.Contains(strings.ToLower(title), "надходження") ||
		strings.Contains(lc, "доступно:") ||
		strings.Contains(lc, "надходження:") {
		return extractIncomingLines(content, rec)
	}
	return nil
}

// extractIncomingPrefixed handles texts like
// "Perekaz: CLIENT001 ... na kartku 000000****0000 na sumu 1000.00UAH. Dostupno 1154.16UAH."
func extractIncomingPrefixed(content string, rec *model.TransactionRecord) error {
	if m := perekazSenderRe.FindStringSubmatch(content); m != nil {
		rec.SetCounterparty(m[1])
	} else if loc := dostupnoTailRe.FindStringIndex(content); loc != nil {
		// Some variants append the sender after the balance sentence:
		// "Dostupno 5 000.00USD. PAYPAL*TRANSFER". Only a meaningful
		// trailing token is accepted.
		after := strings.TrimSpace(content[loc[1]:])
		if m := tailCounterpartyRe.FindStringSubmatch(after); m != nil {
			cp := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(cp) > 2 && !placeholderCounterparties[strings.ToUpper(cp)] {
				rec.SetCounterparty(cp)
			}
		}
	}

	if m := naSumuRe.FindStringSubmatch(content); m != nil {
		if err := setPair(m, rec.SetOperation); err != nil {
			return err
		}
	}
	if m := dostupnoRe.FindStringSubmatch(content); m != nil {
		if err := setPair(m, rec.SetBalance); err != nil {
			return err
		}
	}
	if m := naKartkuRe.FindStringSubmatch(content); m != nil {
		rec.SetDetails(m[1])
	}
	return nil
}

// extractIncomingLines handles the line-oriented format:
// "2000.0UAH\nCLIENT NAME\n25.12.2024\nКартка: *0000\nДоступно: 2000.0UAH".
func extractIncomingLines(content string, rec *model.TransactionRecord) error {
	lc := strings.ToLower(content)

	// The operation amount is tried in order: an explicit "надходження:"
	// marker, an amount at the very start, then the first pair that is
	// not preceded by "доступно" (which would be the balance).
	var m []string
	if strings.Contains(lc, "надходження:") {
		m = nadkhodzhennyaRe.FindStringSubmatch(content)
	}
	if m == nil {
		m = leadingAmountRe.FindStringSubmatch(content)
	}
	if m == nil {
		m = firstAmountOutsideBalance(content)
	}
	if m != nil {
		if err := setPair(m, rec.SetOperation); err != nil {
			return err
		}
	}

	if bm := dostupnoLabelRe.FindStringSubmatch(content); bm != nil {
		if err := setPair(bm, rec.SetBalance); err != nil {
			return err
		}
	}
	if cm := cardLabelRe.FindStringSubmatch(content); cm != nil {
		rec.SetDetails(cm[1])
	}
	if cp, ok := counterpartyFromLines(strings.Split(content, "\n")); ok {
		rec.SetCounterparty(cp)
	}
	return nil
}

// firstAmountOutsideBalance returns the first amount-currency submatch
// whose preceding 20 characters do not mention "доступно".
func firstAmountOutsideBalance(content string) []string {
	for _, ix := range amountCurrencyRe.FindAllStringSubmatchIndex(content, -1) {
		prefix := []rune(content[:ix[0]])
		start := len(prefix) - 20
		if start < 0 {
			start = 0
		}
		if strings.Contains(strings.ToLower(string(prefix[start:])), "доступно") {
			continue
		}
		return []string{
			content[ix[0]:ix[1]],
			content[ix[2]:ix[3]],
			content[ix[4]:ix[5]],
		}
	}
	return nil
}
