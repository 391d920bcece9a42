package validate

import (
	"fmt"
	"regexp"
)

// hexColorPattern matches #rgb and #rrggbb values
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// RequiredString validates that a string field is not empty
func RequiredString(value, field string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// RequiredSlice validates that a slice has at least one element
func RequiredSlice(values []string, field string) error {
	if len(values) == 0 {
		return fmt.Errorf("%s requires at least one item", field)
	}
	return nil
}

// PositiveInt validates that an integer field is greater than zero
func PositiveInt(value int, field string) error {
	if value <= 0 {
		return fmt.Errorf("%s must be a positive integer, got %d", field, value)
	}
	return nil
}

// HexColor validates that a string is a #rgb or #rrggbb color value
func HexColor(value, field string) error {
	if !hexColorPattern.MatchString(value) {
		return fmt.Errorf("%s must be a hex color like #fafafa, got %q", field, value)
	}
	return nil
}

// OneOf validates that a string is one of the allowed values
func OneOf(value string, allowed []string, field string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value for %s: %s", field, value)
}

// AllOneOf validates that all items in a slice are in the allowed set
func AllOneOf(values []string, allowed []string, field string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = struct{}{}
	}

	for _, v := range values {
		if _, ok := allowedSet[v]; !ok {
			return fmt.Errorf("invalid %s: %s", field, v)
		}
	}
	return nil
}
