// Package utils provides general-purpose helpers used across the server:
// JSON response writing, the resty-based outbound HTTP client and trace ID
// generation.
package utils
