package gen

import (
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"unicode"
)

// names used by generated method bodies.
var reservedLocals = map[string]bool{
	"p": true, "err": true, "errs": true, "other": true, "config": true, "env": true,
}

// snakeCase converts a Go identifier to snake_case, keeping acronyms together:
// "HTTPAddress" becomes "http_address".
func snakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				b.WriteByte('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// localName derives an unexported variable name from a field name that is
// unique within taken and does not shadow keywords, predeclared identifiers
// or the names used by generated code.
func localName(field string, taken map[string]bool) string {
	runes := []rune(field)

	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	if upper > 1 && upper < len(runes) {
		upper--
	}

	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}

	base := string(runes)
	if token.IsKeyword(base) || types.Universe.Lookup(base) != nil || reservedLocals[base] {
		base += "Value"
	}

	name := base
	for i := 2; taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}

	taken[name] = true

	return name
}
