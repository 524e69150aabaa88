package lsp

import "context"

// Client sends one request to the language server and resolves the response
// into result. Implementations must honor ctx for cooperative cancellation
// and surface failures as *ResponseError where the server supplied a code.
type Client interface {
	SendRequest(ctx context.Context, method string, params, result any) error
}
