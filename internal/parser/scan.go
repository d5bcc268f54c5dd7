package parser

import (
	"strings"
	"unicode/utf8"
)

// lookaheadWindow is how many lines below the amount line are inspected
// for a counterparty.
const lookaheadWindow = 3

// counterpartyFromLines scans a line-oriented notification for the
// sender/merchant line. The line opening with an attached amount-currency
// pair anchors the scan; within the lookahead window below it, the first
// non-empty line that is not a date, card label, balance label or bare
// decimal — and is longer than two characters — is the counterparty.
// Only the first amount line is considered.
func counterpartyFromLines(lines []string) (string, bool) {
	for i, line := range lines {
		if !lineAmountRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		limit := i + 1 + lookaheadWindow
		if limit > len(lines) {
			limit = len(lines)
		}
		for j := i + 1; j < limit; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || isExcludedCounterpartyLine(next) {
				continue
			}
			if utf8.RuneCountInString(next) > 2 {
				return next, true
			}
		}
		return "", false
	}
	return "", false
}

func isExcludedCounterpartyLine(line string) bool {
	if datePrefixRe.MatchString(line) {
		return true
	}
	l := strings.ToLower(line)
	if strings.Contains(l, "картка:") || strings.Contains(l, "доступно:") {
		return true
	}
	return bareDecimalRe.MatchString(line)
}
