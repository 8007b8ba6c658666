package cache

import (
	"sort"
	"strings"
)

// Key builds a canonical cache key from an operation name and its
// parameters. Parameter names are sorted so call sites can pass maps in any
// order without causing spurious misses.
func Key(op string, params map[string]string) string {
	if len(params) == 0 {
		return op
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(op)
	for _, name := range names {
		b.WriteByte(':')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return b.String()
}
