package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}

// DecodeBody читает JSON ответа в map и закрывает тело.
func DecodeBody(resp *http.Response) (map[string]any, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	var body map[string]any
	if unmErr := json.Unmarshal(raw, &body); unmErr != nil {
		return nil, unmErr //nolint:wrapcheck
	}
	return body, nil
}
