package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Ключи metadata, которые checkout передает провайдеру при создании платежа пополнения.
const (
	MetadataRechargeKey  = "is_recharge"
	MetadataTypeKey      = "type"
	MetadataTypeRecharge = "wallet_recharge"
	MetadataWalletKey    = "wallet_id"
)

type FlowType int

const (
	FlowOrder FlowType = iota + 1
	FlowRecharge
)

func (f FlowType) String() string {
	switch f {
	case FlowOrder:
		return "order"
	case FlowRecharge:
		return "recharge"
	default:
		return "unknown"
	}
}

type Classification struct {
	Flow     FlowType
	WalletID int64
	// MarkerWithoutWallet признак пополнения есть, но кошелек не указан или не распознан.
	MarkerWithoutWallet bool
}

// Classify определяет, к какому потоку относится платеж. Пополнение кошелька - только при наличии
// и признака пополнения, и корректного идентификатора кошелька; все остальное считается оплатой заказа.
func Classify(metadata map[string]any) Classification {
	marked := isTruthy(metadata[MetadataRechargeKey]) ||
		strings.EqualFold(stringValue(metadata[MetadataTypeKey]), MetadataTypeRecharge)
	if !marked {
		return Classification{Flow: FlowOrder}
	}

	walletID, ok := positiveInt(metadata[MetadataWalletKey])
	if !ok {
		return Classification{Flow: FlowOrder, MarkerWithoutWallet: true}
	}
	return Classification{Flow: FlowRecharge, WalletID: walletID}
}

func isTruthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	default:
		return false
	}
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func positiveInt(v any) (int64, bool) {
	var (
		n   int64
		err error
	)
	switch val := v.(type) {
	case json.Number:
		n, err = val.Int64()
	case string:
		n, err = strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	case float64:
		if val != math.Trunc(val) || val > math.MaxInt64 {
			return 0, false
		}
		n = int64(val)
	case int64:
		n = val
	case int:
		n = int64(val)
	default:
		return 0, false
	}
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
