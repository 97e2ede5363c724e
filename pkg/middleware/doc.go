// Package middleware provides ambient HTTP middleware for hue applications:
// CSRF cookie issuance, request IDs, Prometheus metrics, OpenTelemetry
// tracing, and rate limiting. Everything is standard net/http middleware and
// composes with chi's Use().
package middleware
