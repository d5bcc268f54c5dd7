package parser

import (
	"strings"

	"github.com/txnotify-dev/txnotify/internal/model"
)

// operationKeywords disqualify a "баланс" mention from being a pure
// balance notice: if any of these appear, some operation is attached.
var operationKeywords = []string{
	"переказ", "perekaz", "transfer",
	"blokuvannia", "блокування", "blocking",
	"сума", "suma", "amount", "сумма",
	"надходження", "incoming",
	"зняття", "снятие", "withdrawal",
	"платіж", "платеж", "payment",
}

var incomingKeywords = []string{
	"perekaz:",
	"perekaz",
	"надходження",
	"поступление",
	"incoming",
	"пополнение",
	"поповнення",
	"replenishment",
	"deposit",
	"депозит",
}

var blockingKeywords = []string{
	"blokuvannia:",
	"blokuvannya",
	"блокування",
	"блокировка",
	"блокирование",
	"blocking",
	"block",
	"reject",
	"відхилення",
	"отклонение",
}

var outgoingKeywords = []string{
	"переказ з картки на картку",
	"переказ з карты на карту",
	"transfer from card to card",
	"зняття",
	"снятие",
	"withdrawal",
	"виведення",
	"вывод",
	"outgoing",
	"out",
	"списання",
	"списание",
	"debit",
	"платіж",
	"платеж",
	"payment",
	"оплата",
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// isBalanceInfo reports a balance notice with no operation attached.
// "Баланс:" without a transfer mention is decisive on its own; otherwise
// a bare "баланс" counts only when no operation keyword appears, since
// operation texts routinely mention the balance too.
func isBalanceInfo(content, _ string) bool {
	c := strings.ToLower(content)
	if strings.Contains(c, "баланс:") && !strings.Contains(c, "переказ") {
		return true
	}
	if strings.Contains(c, "баланс") && !containsAny(c, operationKeywords) {
		return true
	}
	return false
}

func isIncoming(content, title string) bool {
	c := strings.ToLower(content)
	t := strings.ToLower(title)
	for _, kw := range incomingKeywords {
		if strings.Contains(c, kw) || strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

func isBlocking(content, _ string) bool {
	return containsAny(strings.ToLower(content), blockingKeywords)
}

// isOutgoing treats a leading-minus amount in the title as decisive, then
// falls back to the keyword set.
func isOutgoing(content, title string) bool {
	c := strings.ToLower(content)
	t := strings.ToLower(title)
	if minusAmountHintRe.MatchString(t) {
		return true
	}
	for _, kw := range outgoingKeywords {
		if strings.Contains(c, kw) || strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

func isGeneric(_, _ string) bool { return true }

// Classify returns the operation category for a notification without
// extracting any fields. Predicates run in fixed order; the first match
// wins.
func Classify(content, title string) model.OperationType {
	for _, r := range rules {
		if r.match(content, title) {
			return r.op
		}
	}
	return model.OpUnknown
}
