package lsp

import (
	"context"
	"errors"
	"fmt"
)

// JSON-RPC error codes the sender classifies on. Values match the LSP wire
// protocol.
const (
	CodeRequestCancelled int32 = -32800
	CodeContentModified  int32 = -32801
	CodeServerCancelled  int32 = -32802
)

// ResponseError is the typed failure a request resolves to.
type ResponseError struct {
	Code    int32
	Message string
	Data    any
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// IsCancellation reports whether err means the request was cancelled, either
// through the caller's context or by a cancellation response code.
// Cancellation is expected, not exceptional: it is never retried and never
// logged as a warning.
func IsCancellation(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Code == CodeRequestCancelled || respErr.Code == CodeServerCancelled
	}
	return false
}

// IsContentModified reports whether err is the transient conflict raised
// when the target document changed under an in-flight request.
func IsContentModified(err error) bool {
	var respErr *ResponseError
	return errors.As(err, &respErr) && respErr.Code == CodeContentModified
}
