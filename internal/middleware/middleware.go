// Package middleware stores the global middleware of the API.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, tracing, CORS and panic
// recovery, and render every error as the JSON error envelope.
package middleware
