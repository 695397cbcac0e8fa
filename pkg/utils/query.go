package utils

import "strconv"

// ParseBool treats an empty string as false.
func ParseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
