package pipeline

import (
	"fmt"

	"audiotag/internal/services"
)

// InvalidInputError reports an input path that cannot be processed as
// requested, such as a directory without merge.
type InvalidInputError struct {
	Path   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Path, e.Reason)
}

// Is matches services.ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == services.ErrInvalidInput
}
