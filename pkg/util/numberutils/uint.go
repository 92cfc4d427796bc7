package numberutils

import "strconv"

// IsUint checks if the given string can be converted to a valid uint.
// It returns true if the string can be converted to a uint, false otherwise.
func IsUint(str string) bool {
	_, err := strconv.ParseUint(str, 10, 64)
	return err == nil
}

// ToUint converts the given string to a uint.
// If the string cannot be converted, it returns 0.
func ToUint(s string) uint {
	if i, err := strconv.ParseUint(s, 10, 64); err == nil {
		return uint(i)
	}
	return 0
}

// ToUintWithDefault converts the given string to a uint.
// If the string cannot be converted, it returns the provided default value.
func ToUintWithDefault(s string, defaultVal uint) uint {
	if i, err := strconv.ParseUint(s, 10, 64); err == nil {
		return uint(i)
	}
	return defaultVal
}

// ToUintWithError converts the given string to a uint and returns any error that occurred during conversion.
// It returns the uint value if successful, or an error if the string cannot be converted.
func ToUintWithError(str string) (uint, error) {
	value, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
