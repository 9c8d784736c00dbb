package match

import (
	"strings"

	"property-matcher/internal/common"
)

// BuildErrorMessage renders a human-readable suggestion sentence for an
// invalid property name. The candidate list is rendered as-is; callers
// normally pass the sorted output of PossibleMatches.
//
// With no candidates:
//
//	Bean property 'foo' is not writable or has an invalid setter method. Does the parameter type of the setter match the return type of the getter?
//
// With candidates:
//
//	Bean property 'foo' is not writable or has an invalid setter method. Did you mean 'bar', or 'baz'?
func BuildErrorMessage(propertyName string, matches []string) string {
	var buf strings.Builder

	buf.WriteString("Bean property '")
	buf.WriteString(propertyName)
	buf.WriteString("' is not writable or has an invalid setter method. ")

	if common.IsEmpty(matches) {
		buf.WriteString("Does the parameter type of the setter match the return type of the getter?")

		return buf.String()
	}

	buf.WriteString("Did you mean ")

	for i, m := range matches {
		buf.WriteByte('\'')
		buf.WriteString(m)

		// All separators are "', " except the one before the last
		// candidate, which becomes "', or " when there are two or more.
		switch {
		case i < len(matches)-2:
			buf.WriteString("', ")
		case i == len(matches)-2:
			buf.WriteString("', or ")
		}
	}

	buf.WriteString("'?")

	return buf.String()
}
