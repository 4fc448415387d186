package domain

import (
	"encoding/json"
	"fmt"
)

var variationKeys = [...]string{"size", "sku", "quantity", "available"}

// UnmarshalJSON разбирает известные поля вариации, остальные ключи складывает в Extra.
func (v *Variation) UnmarshalJSON(data []byte) error {
	type plain Variation
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return fmt.Errorf("decoding variation: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding variation keys: %w", err)
	}
	for _, k := range variationKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		known.Extra = raw
	}

	*v = Variation(known)
	return nil
}

// MarshalJSON записывает известные поля поверх ключей из Extra.
func (v Variation) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Extra)+len(variationKeys))
	for k, raw := range v.Extra {
		out[k] = raw
	}
	out["size"] = v.Size
	out["sku"] = v.SKU
	out["quantity"] = v.Quantity
	out["available"] = v.Available

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encoding variation: %w", err)
	}
	return data, nil
}
