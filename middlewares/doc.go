// Package middlewares provides HTTP middleware for the form relay server:
// request ID propagation, panic recovery, CORS, request logging, per-client
// rate limiting, and Accept-Language resolution.
//
// All middleware follows the standard net/http composition model:
//
//	handler = middlewares.Chain(
//		middlewares.RequestID(),
//		middlewares.Recover(log),
//		middlewares.Logging(log),
//	)(mux)
package middlewares

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so the first listed runs outermost.
func Chain(mw ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(mw) - 1; i >= 0; i-- {
			next = mw[i](next)
		}
		return next
	}
}
