package parser

import (
	"fmt"
	"regexp"
)

// Pattern fragments shared by every extractor. Amounts may use spaces as
// thousands separators and either "." or "," as the decimal separator,
// with the currency attached or space-separated: "1 250.50USD",
// "3 500,00 UAH", "1250.50UAH".
const (
	amountPat   = `(\d+(?:\s+\d+)*(?:[.,]\d+)?|\d+)`
	currencyPat = `(UAH|USD|EUR|GBP|PLN)`
)

var (
	// Any amount-currency pair. Group 1 is the amount, group 2 the currency.
	amountCurrencyRe = regexp.MustCompile(`(?i)` + amountPat + `\s*` + currencyPat)

	// Balance notices: "Баланс: 5853,79 UAH", "Картка: *0000".
	balanceLabelRe = regexp.MustCompile(`(?i)баланс:\s*` + amountPat + `\s*` + currencyPat)
	cardLabelRe    = regexp.MustCompile(`(?i)картка:\s*([*0-9]+)`)

	// Transliterated incoming transfers:
	// "Perekaz: CLIENT001 ... na kartku 000000****0000 na sumu 1000.00UAH. Dostupno 1154.16UAH."
	perekazSenderRe    = regexp.MustCompile(`(?i)perekaz:\s*([A-Z0-9]+)`)
	naSumuRe           = regexp.MustCompile(`(?i)na sumu\s+` + amountPat + `\s*` + currencyPat)
	dostupnoRe         = regexp.MustCompile(`(?i)dostupno\s+` + amountPat + `\s*` + currencyPat)
	naKartkuRe         = regexp.MustCompile(`(?i)na kartku\s+([*0-9]+)`)
	dostupnoTailRe     = regexp.MustCompile(`(?i)dostupno\s+` + amountPat + `\s*` + currencyPat + `\.\s+`)
	tailCounterpartyRe = regexp.MustCompile(`(?i)^([A-Z][A-Z0-9\s*\-.]+?)(?:\.|$)`)

	// Line-oriented incoming transfers:
	// "2000.0UAH\nCLIENT NAME\n...\nКартка: *0000\nДоступно: 2000.0UAH".
	nadkhodzhennyaRe = regexp.MustCompile(`(?i)надходження:\s*` + amountPat + `\s*` + currencyPat)
	leadingAmountRe  = regexp.MustCompile(`(?i)^` + amountPat + `\s*` + currencyPat)
	dostupnoLabelRe  = regexp.MustCompile(`(?i)доступно:\s*` + amountPat + `\s*` + currencyPat)
	lineAmountRe     = regexp.MustCompile(`(?i)^` + amountPat + currencyPat)
	datePrefixRe     = regexp.MustCompile(`^\d+[-.]\d+[-.]\d+`)
	bareDecimalRe    = regexp.MustCompile(`^\d+\.\d+`)

	// Blocked/rejected operations.
	blockAmountRe       = regexp.MustCompile(`(?i)(?:suma|сума|amount|сумма)\s+` + amountPat + `\s*` + currencyPat)
	blockAvailableRe    = regexp.MustCompile(`(?i)(?:dostupno|доступно|available)\s+` + amountPat + `\s*` + currencyPat)
	labeledBalanceRe    = regexp.MustCompile(`(?i)(?:баланс|balance):\s*` + amountPat + `\s*` + currencyPat)
	cardKeywordRe       = regexp.MustCompile(`(?i)(?:kartka|картка|card|карта)\s*:?\s*([*0-9]+)`)
	cardAnywhereRe      = regexp.MustCompile(`([*0-9]{4,})`)
	blockCounterpartyRe = regexp.MustCompile(`(?i)(?:blokuvannia|блокування|blocking|reject):\s*([A-Z0-9\s*\-]+?)(?:\s+\d+\.\d+\.\d+|\s+(?:kartka|картка|card))`)

	// Outgoing operations. A leading minus amount in the title selects the
	// title-only format: "-1 000.00 UAH доступно 505.01 UAH *0000".
	minusAmountHintRe = regexp.MustCompile(`-\s*\d+`)
	titleAmountRe     = regexp.MustCompile(`(?i)-\s*` + amountPat + `\s*` + currencyPat)
	titleAvailableRe  = regexp.MustCompile(`(?i)(?:доступно|available)\s+` + amountPat + `\s*` + currencyPat)
	trailingCardRe    = regexp.MustCompile(`([*0-9]+)\s*$`)
	outgoingBalanceRe = regexp.MustCompile(`(?i)(?:доступно|available|баланс|balance)\s+` + amountPat + `\s*` + currencyPat)
	outgoingCardRe    = regexp.MustCompile(`(?i)(?:картка|card|карта)\s*:?\s*([*0-9]+)`)
)

// Per-keyword counterparty fallback for blocked operations: capture the
// text between the keyword and the next date or card label.
var (
	blockCounterpartyKeywords = []string{"blokuvannia", "блокування", "blocking", "reject"}

	blockCounterpartyFallbackRes = func() []*regexp.Regexp {
		res := make([]*regexp.Regexp, len(blockCounterpartyKeywords))
		for i, kw := range blockCounterpartyKeywords {
			res[i] = regexp.MustCompile(fmt.Sprintf(
				`(?i)%s:\s*([^0-9]+?)(?:\s+\d+\.\d+\.\d+|\s+(?:kartka|картка|card)|$)`, kw))
		}
		return res
	}()
)
