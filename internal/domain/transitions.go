package domain

// TransitionDecision результат проверки перехода по таблице состояний.
type TransitionDecision int

const (
	// TransitionApply переход разрешен и должен быть записан.
	TransitionApply TransitionDecision = iota + 1
	// TransitionNoop повторная доставка или запись уже в финальном состоянии.
	TransitionNoop
	// TransitionReject переход запрещен таблицей (например, approved -> pending из старого уведомления).
	TransitionReject
)

func (d TransitionDecision) String() string {
	switch d {
	case TransitionApply:
		return "apply"
	case TransitionNoop:
		return "noop"
	case TransitionReject:
		return "reject"
	default:
		return "undefined"
	}
}

var saleTransitions = map[PaymentStatusType][]PaymentStatusType{
	PaymentStatusNone: {
		PaymentStatusPending,
		PaymentStatusInProcess,
		PaymentStatusApproved,
		PaymentStatusRejected,
		PaymentStatusCancelled,
	},
	PaymentStatusPending: {
		PaymentStatusInProcess,
		PaymentStatusApproved,
		PaymentStatusRejected,
		PaymentStatusCancelled,
	},
	PaymentStatusInProcess: {
		PaymentStatusApproved,
		PaymentStatusRejected,
		PaymentStatusCancelled,
	},
}

// IsTerminal финальные статусы платежа заказа.
func (s PaymentStatusType) IsTerminal() bool {
	switch s {
	case PaymentStatusApproved, PaymentStatusRejected, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

// SaleTransition решает, что делать с заказом в статусе from, если провайдер сообщил статус to.
func SaleTransition(from, to PaymentStatusType) TransitionDecision {
	if from == to || from.IsTerminal() {
		return TransitionNoop
	}
	for _, allowed := range saleTransitions[from] {
		if allowed == to {
			return TransitionApply
		}
	}
	return TransitionReject
}

func (s RechargeStatusType) IsTerminal() bool {
	return s == RechargeStatusApproved || s == RechargeStatusRejected
}

// RechargeTransition возвращает целевой статус пополнения и решение по переходу.
// approved переводит в approved, rejected/cancelled - в rejected. Прочие статусы провайдера
// (in_process и т.п.) означают что платеж еще не решен, и ничего не меняют.
func RechargeTransition(from RechargeStatusType, reported PaymentStatusType) (RechargeStatusType, TransitionDecision) {
	if from.IsTerminal() {
		return from, TransitionNoop
	}
	if from != RechargeStatusPending {
		return from, TransitionReject
	}

	switch reported {
	case PaymentStatusApproved:
		return RechargeStatusApproved, TransitionApply
	case PaymentStatusRejected, PaymentStatusCancelled:
		return RechargeStatusRejected, TransitionApply
	default:
		return from, TransitionNoop
	}
}
