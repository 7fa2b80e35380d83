package util

import (
	"strings"
)

func EncloseValue(value string, escapeFunc func(string) string) string {
	var buf strings.Builder
	buf.Grow(len(value) + 2)
	buf.WriteString("'")
	buf.WriteString(escapeFunc(value))
	buf.WriteString("'")
	return buf.String()
}

func EncloseValues(values []string, escapeFunc func(string) string) (list []string) {
	for i := range values {
		list = append(list, EncloseValue(values[i], escapeFunc))
	}
	return
}
