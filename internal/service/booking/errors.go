package booking

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorCode classifies a single field validation failure.
type ErrorCode string

const (
	ErrRequiredField   ErrorCode = "required_field"
	ErrInvalidFormat   ErrorCode = "invalid_format"
	ErrInvalidRange    ErrorCode = "invalid_range"
	ErrUnknownRoomType ErrorCode = "unknown_room_type"
)

// FieldErrors maps a field name to the code of its violation. Validation
// accumulates every failing field so a form can render all of them at once;
// it never short-circuits on the first failure.
type FieldErrors map[string]ErrorCode

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field, code := range e {
		fields = append(fields, fmt.Sprintf("%s: %s", field, code))
	}
	sort.Strings(fields)
	return "invalid booking input: " + strings.Join(fields, ", ")
}
