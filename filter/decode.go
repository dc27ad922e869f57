package filter

import "strings"

// attrTypeAllowed reports whether b is a legal byte inside an attribute
// description: RFC 4512 attribute-type characters plus the two extensions
// named in spec.md §6 ('_' and the attribute-option separators ';' and '=').
func attrTypeAllowed(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '-', b == '_', b == ';', b == '=':
		return true
	default:
		return false
	}
}

// validateAttrType checks every byte of attr against attrTypeAllowed,
// reporting InvalidCharInAttrType at the first violation. base is the
// absolute position of attr[0] in the original filter string.
func validateAttrType(attr string, base int) error {
	for i := 0; i < len(attr); i++ {
		if !attrTypeAllowed(attr[i]) {
			return &ProtocolError{
				Kind:     InvalidCharInAttrType,
				Position: base + i,
				Detail:   invalidCharInAttrTypeDetail(attr, attr[i], i),
			}
		}
	}
	return nil
}

// Decode parses s as an LDAP search filter and returns its AST, using
// DefaultOptions.
func Decode(s string) (f *Filter, err error) {
	return DecodeWithOptions(s, DefaultOptions())
}

// DecodeWithOptions parses s as an LDAP search filter and returns its AST,
// enforcing the nesting-depth and length bounds in opts.
func DecodeWithOptions(s string, opts Options) (f *Filter, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ProtocolError{Kind: UncaughtException, Position: -1, Filter: s, Detail: recoveredDetail(r)}
			f = nil
		}
	}()

	if len(s) == 0 {
		return nil, &ProtocolError{Kind: EmptyFilter, Position: -1}
	}
	if opts.MaxLength > 0 && len(s) > opts.MaxLength {
		return nil, &ProtocolError{Kind: FilterTooComplex, Position: -1, Detail: "filter exceeds maximum length"}
	}
	if len(s) > 1 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		return nil, &ProtocolError{Kind: EnclosedInApostrophes, Position: -1, Filter: s}
	}

	return decodeRange(s, 0, len(s), 0, opts)
}

func recoveredDetail(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return "recovered panic"
}

// decodeRange decodes the sub-filter occupying s[start:end], recursively.
func decodeRange(s string, start, end int, depth int, opts Options) (*Filter, error) {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return nil, &ProtocolError{Kind: FilterTooComplex, Position: start, Detail: "filter nesting exceeds maximum depth"}
	}

	if end-start <= 0 {
		return nil, &ProtocolError{Kind: EmptyFilter, Position: start}
	}

	if s[start] == '(' {
		if s[end-1] != ')' {
			return nil, &ProtocolError{Kind: MismatchedParentheses, Position: start}
		}
		start++
		end--
		if end-start <= 0 {
			return nil, &ProtocolError{Kind: EmptyFilter, Position: start}
		}
	}

	switch s[start] {
	case '&':
		return decodeCompound(KindAnd, s, start+1, end, depth, opts)
	case '|':
		return decodeCompound(KindOr, s, start+1, end, depth, opts)
	case '!':
		return decodeCompound(KindNot, s, start+1, end, depth, opts)
	default:
		return decodeSimple(s, start, end)
	}
}

// decodeSimple decodes a non-compound filter: equality, ordering,
// approximate, substring, present, or extensible match.
func decodeSimple(s string, start, end int) (*Filter, error) {
	equalPos := -1
	for i := start; i < end; i++ {
		if s[i] == '=' {
			equalPos = i
			break
		}
	}
	if equalPos <= start {
		return nil, &ProtocolError{Kind: NoEqualSign, Position: start}
	}

	var kind Kind
	attrEnd := equalPos
	switch s[equalPos-1] {
	case '~':
		kind = KindApproximateMatch
		attrEnd = equalPos - 1
	case '>':
		kind = KindGreaterOrEqual
		attrEnd = equalPos - 1
	case '<':
		kind = KindLessOrEqual
		attrEnd = equalPos - 1
	case ':':
		return decodeExtensibleMatch(s, start, equalPos, end)
	default:
		kind = KindEquality
	}

	attr := s[start:attrEnd]
	if err := validateAttrType(attr, start); err != nil {
		return nil, err
	}

	rawValue := s[equalPos+1 : end]
	switch {
	case len(rawValue) == 0:
		return &Filter{Kind: kind, Attribute: attr, Value: []byte{}}, nil
	case rawValue == "*":
		// See DESIGN.md "Open Question decisions" #1: this coercion runs
		// unconditionally, discarding whatever relational operator the
		// switch above selected.
		return &Filter{Kind: KindPresent, Attribute: attr}, nil
	case strings.IndexByte(rawValue, '*') >= 0:
		return decodeSubstring(s, attr, equalPos, end)
	default:
		value, err := decodeEscapes([]byte(rawValue), equalPos+1)
		if err != nil {
			return nil, err
		}
		return &Filter{Kind: kind, Attribute: attr, Value: value}, nil
	}
}
