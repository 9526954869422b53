// Package http exposes the pivot and chart operations over a chi router.
// All error responses follow RFC 7807 problem details.
package http
