// Package lsp holds the client-side contract for talking to the language
// server: the request-sending interface, the typed response error with its
// wire codes, and a retrying sender for transient conflicts.
//
// The transport itself is consumed, not implemented here. Callers hand in
// anything satisfying Client; this package only decides whether a failure is
// worth retrying and how long to wait between attempts.
//
// Retry policy:
//
//   - Only content-modified failures are retried. They mean the target
//     document changed under the in-flight request and are expected to
//     resolve on their own.
//   - The backoff schedule is fixed: 40ms, 160ms, 640ms, 2560ms, 10240ms,
//     then one final attempt with no further retry.
//   - Cancellation is propagated immediately and silently; it is an expected
//     outcome, not a fault.
//   - Every other failure is propagated on first occurrence after a single
//     warning with full context (method, params, raw error).
//
// Basic usage:
//
//	var symbols []DocumentSymbol
//	err := lsp.SendRequestWithRetry(ctx, client, "textDocument/documentSymbol",
//	    params, &symbols, log)
package lsp
