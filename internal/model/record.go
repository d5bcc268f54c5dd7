package model

import (
	"github.com/shopspring/decimal"
)

// OperationType classifies a bank notification.
type OperationType string

const (
	// OpBalanceInfo is a balance inquiry with no transaction attached.
	OpBalanceInfo OperationType = "balance_info"
	// OpIncoming is an incoming transfer or top-up.
	OpIncoming OperationType = "in"
	// OpReject is a blocked or rejected operation.
	OpReject OperationType = "reject"
	// OpOutgoing is an outgoing transfer, payment or withdrawal.
	OpOutgoing OperationType = "out"
	// OpUnknown is the fallback for notifications no predicate recognized.
	OpUnknown OperationType = "unknown"
)

// Currency is an ISO 4217 code from the supported set.
type Currency string

const (
	UAH Currency = "UAH"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	PLN Currency = "PLN"
)

// TransactionRecord is the structured result of parsing one notification.
// Nil pointers mean the field was absent from the text; they serialize as
// JSON null. Amount and currency are set together or not at all, same for
// balance and its currency.
type TransactionRecord struct {
	OperationType       OperationType    `json:"operation_type"`
	OperationAmount     *decimal.Decimal `json:"operation_amount"`
	OperationCurrency   *Currency        `json:"operation_currency"`
	BankAccountBalance  *decimal.Decimal `json:"bank_account_balance"`
	BankAccountCurrency *Currency        `json:"bank_account_currency"`
	BankAccountDetails  *string          `json:"bank_account_details"`
	CounterpartyDetails *string          `json:"counterparty_details"`
}

// HasOperation reports whether an operation amount was extracted.
func (r TransactionRecord) HasOperation() bool {
	return r.OperationAmount != nil && r.OperationCurrency != nil
}

// HasBalance reports whether an account balance was extracted.
func (r TransactionRecord) HasBalance() bool {
	return r.BankAccountBalance != nil && r.BankAccountCurrency != nil
}

// SetOperation sets the operation amount and currency as a pair.
func (r *TransactionRecord) SetOperation(amount decimal.Decimal, cur Currency) {
	r.OperationAmount = &amount
	r.OperationCurrency = &cur
}

// SetBalance sets the account balance and currency as a pair.
func (r *TransactionRecord) SetBalance(amount decimal.Decimal, cur Currency) {
	r.BankAccountBalance = &amount
	r.BankAccountCurrency = &cur
}

// SetDetails sets the masked card/account reference.
func (r *TransactionRecord) SetDetails(details string) {
	r.BankAccountDetails = &details
}

// SetCounterparty sets the counterparty description.
func (r *TransactionRecord) SetCounterparty(cp string) {
	r.CounterpartyDetails = &cp
}
