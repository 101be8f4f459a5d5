// SPDX-License-Identifier: ice License 1.0

package opentdb

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

func (e *APIError) Error() string {
	if e.kind == ErrUnknownResponseCode {
		return fmt.Sprintf("%v: response_code %v", e.kind, e.Raw)
	}

	return fmt.Sprintf("%v (response_code %v)", e.kind, e.Code)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// ErrorForResponseCode maps a response_code to its catalog failure. Success yields nil.
func ErrorForResponseCode(code ResponseCode) error {
	if code == ResponseCodeSuccess {
		return nil
	}
	if code < 0 || int(code) >= len(apiErrors) {
		return &APIError{kind: ErrUnknownResponseCode, Code: code, Raw: fmt.Sprint(int(code))}
	}

	return &APIError{kind: apiErrors[code], Code: code, Raw: fmt.Sprint(int(code))}
}

func checkResponseCode(raw json.RawMessage) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var code int
	if err := json.Unmarshal(raw, &code); err != nil {
		return &APIError{kind: ErrUnknownResponseCode, Code: -1, Raw: string(raw)}
	}

	return ErrorForResponseCode(ResponseCode(code))
}
