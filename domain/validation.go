package domain

import "fmt"

// RequireString extracts a mandatory string field from an untyped payload.
// A nil or empty value yields ErrMissingField, a present non-string value
// yields ErrInvalidType. Both errors carry the field name and unwrap to the
// domain sentinel.
func RequireString(name string, value any) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s: %w", name, ErrMissingField)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrInvalidType)
	}
	if s == "" {
		return "", fmt.Errorf("%s: %w", name, ErrMissingField)
	}
	return s, nil
}
