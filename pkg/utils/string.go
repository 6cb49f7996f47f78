package utils

import "strings"

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// TrimMap returns a copy of m with every key and value trimmed. Parsed rows
// never collide here because the parser keeps one column per trimmed name;
// for other maps the lexically greater original key wins, so the result does
// not depend on map iteration order.
func (s *StringHelper) TrimMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	from := make(map[string]string, len(m))

	for key, value := range m {
		k := strings.TrimSpace(key)
		if prev, ok := from[k]; ok && prev > key {
			continue
		}

		from[k] = key
		out[k] = strings.TrimSpace(value)
	}

	return out
}

// StripBOM drops a leading UTF-8 byte order mark.
func (s *StringHelper) StripBOM(str string) string {
	return strings.TrimPrefix(str, "\ufeff")
}
