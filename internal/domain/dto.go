package domain

// PaymentStatusType статус платежа так, как его сообщает платежный провайдер. Набор значений открыт.
type PaymentStatusType string

const (
	PaymentStatusNone      PaymentStatusType = ""
	PaymentStatusPending   PaymentStatusType = "pending"
	PaymentStatusInProcess PaymentStatusType = "in_process"
	PaymentStatusApproved  PaymentStatusType = "approved"
	PaymentStatusRejected  PaymentStatusType = "rejected"
	PaymentStatusCancelled PaymentStatusType = "cancelled"
)

type RechargeStatusType string

const (
	RechargeStatusPending  RechargeStatusType = "pending"
	RechargeStatusApproved RechargeStatusType = "approved"
	RechargeStatusRejected RechargeStatusType = "rejected"
)

type TransactionKindType string

const (
	TransactionKindRechargeCredit TransactionKindType = "recharge_credit"
)
