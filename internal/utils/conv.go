package utils

import (
	"strconv"
)

// StringToUint parses a positive decimal id from a path or form value.
func StringToUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, strconv.ErrRange
	}
	return uint(n), nil
}
