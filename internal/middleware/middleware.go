// Package middleware holds the echo middlewares shared by every route and
// the per-resource payload validation.
//
// Order matters: request id and context logger come first so every later
// stage, including the global error handler, logs with request context.
package middleware
