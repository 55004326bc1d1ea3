package registry

import (
	"fmt"
)

// Args is the argument map of one invocation.
type Args map[string]any

// String returns a required string argument.
func (a Args) String(name string) (string, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing required field %q", ErrInvalidArgument, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q must be string, got %T", ErrInvalidArgument, name, v)
	}
	return s, nil
}

// OptionalString returns a string argument or "" when absent.
func (a Args) OptionalString(name string) string {
	s, _ := a[name].(string)
	return s
}

// Bool returns a required boolean argument.
func (a Args) Bool(name string) (bool, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return false, fmt.Errorf("%w: missing required field %q", ErrInvalidArgument, name)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: field %q must be boolean, got %T", ErrInvalidArgument, name, v)
	}
	return b, nil
}

// OptionalNumber returns a numeric argument and whether it was present.
func (a Args) OptionalNumber(name string) (float64, bool, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return 0, false, nil
	}
	n, ok := toFloat(v)
	if !ok {
		return 0, false, fmt.Errorf("%w: field %q must be number, got %T", ErrInvalidArgument, name, v)
	}
	return n, true, nil
}

// Value returns a required argument of any kind.
func (a Args) Value(name string) (any, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: missing required field %q", ErrInvalidArgument, name)
	}
	return v, nil
}
