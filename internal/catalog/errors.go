package catalog

import (
	"fmt"
	"strings"

	"audiotag/internal/services"
)

// LookupError reports a non-success response from the catalog service.
type LookupError struct {
	URL        string
	StatusCode int
	// Code is the short error name from the body ("Not Found"), or the HTTP
	// status text when the body carried none.
	Code    string
	Message string
}

func (e *LookupError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "catalog lookup failed: %d: %s for url %s", e.StatusCode, e.Code, e.URL)
	if msg := strings.TrimSpace(e.Message); msg != "" {
		b.WriteString(". ")
		b.WriteString(msg)
	}
	return b.String()
}

// Is lets errors.Is(err, services.ErrCatalogLookup) match lookup failures.
func (e *LookupError) Is(target error) bool {
	return target == services.ErrCatalogLookup
}
