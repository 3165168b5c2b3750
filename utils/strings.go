package utils

// AppendIfMissing will append string to slice only if it is not there already.
func AppendIfMissing(slice []string, str string) []string {
	for _, s := range slice {
		if s == str {
			return slice
		}
	}
	return append(slice, str)
}

// IsOneOf checks if string is present in slice of strings.
func IsOneOf(name string, names []string) bool {
	for _, n := range names {
		if name == n {
			return true
		}
	}
	return false
}
