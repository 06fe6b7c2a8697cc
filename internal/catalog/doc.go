// Package catalog fetches audiobook and chapter metadata from an
// Audnexus-compatible HTTP service.
//
// Non-success responses become *LookupError values carrying the service's
// statusCode/error/message fields. The client never caches and never retries
// an error response; an optional retry count applies to connection failures
// only.
package catalog
