package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberFormatError reports a matched numeric token that could not be
// parsed after normalization.
type NumberFormatError struct {
	Token string
	Err   error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("parsing number %q: %v", e.Token, e.Err)
}

func (e *NumberFormatError) Unwrap() error { return e.Err }

// NormalizeNumber converts a matched numeric token to a decimal: spaces
// are stripped as thousands separators, then a comma becomes the decimal
// separator. A comma is therefore never a thousands separator; locales
// that group with commas are misread. Known limitation, kept on purpose.
func NormalizeNumber(token string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(token, " ", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, &NumberFormatError{Token: token, Err: err}
	}
	return d, nil
}
