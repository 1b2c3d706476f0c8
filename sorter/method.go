package sorter

import "fmt"

// Method selects the ordering applied to a finalized file list.
type Method int

const (
	// MethodNone performs no sorting; entries keep enumeration order.
	MethodNone Method = iota

	// MethodDefault sorts by raw bytes, semi-case-insensitively
	// (lowercase first on pure case differences, shorter strings first).
	MethodDefault

	// MethodNatural is MethodDefault with digit runs compared as numbers.
	MethodNatural

	// MethodCollate sorts with locale-aware collation. May improve
	// results for non-English names but is comparably slow.
	MethodCollate

	// MethodASCII sorts with plain byte comparison, the fastest method.
	MethodASCII
)

// IsValid returns true if the method is one of the defined constants.
func (m Method) IsValid() bool {
	return m >= MethodNone && m <= MethodASCII
}

// String returns a string representation of the method.
func (m Method) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodDefault:
		return "default"
	case MethodNatural:
		return "natural"
	case MethodCollate:
		return "collate"
	case MethodASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Method(%d)", m)
	}
}

// ParseMethod converts a method name as printed by [Method.String] back
// to its Method. It returns false for unrecognized names.
func ParseMethod(s string) (Method, bool) {
	for m := MethodNone; m <= MethodASCII; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return MethodNone, false
}

// ValidMethods returns all valid method names, for use in CLI errors.
func ValidMethods() []string {
	names := make([]string, 0, int(MethodASCII)+1)
	for m := MethodNone; m <= MethodASCII; m++ {
		names = append(names, m.String())
	}
	return names
}
