package utils

import "strings"

// SplitList splits a comma separated setting, trimming blanks and dropping
// empty items. An empty input yields nil.
func SplitList(s string) []string {
	var result []string

	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
