package filter

import "strings"

// asciiLower lowercases only ASCII 'A'-'Z' bytes, leaving every other byte
// untouched, matching the "ASCII only" case-folding spec.md §4.2.4 requires
// for structural matching against ":dn:".
func asciiLower(s string) string {
	var b strings.Builder
	needsCopy := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			needsCopy = true
			break
		}
	}
	if !needsCopy {
		return s
	}
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// decodeExtensibleMatch decodes the extensible-match forms enumerated in
// spec.md §4.2.4, given the outer start of the simple filter, the position
// of the '=' following the ':', and the filter's end.
func decodeExtensibleMatch(s string, start, equalPos, end int) (*Filter, error) {
	prefix := s[start:equalPos]
	lowerPrefix := asciiLower(prefix)

	var attr, rule string
	var dnAttributes bool

	if s[start] == ':' {
		if strings.HasPrefix(lowerPrefix, ":dn:") {
			dnAttributes = true
			if start+4 < equalPos-1 {
				rule = s[start+4 : equalPos-1]
			}
		} else {
			rule = s[start+1 : equalPos-1]
		}
	} else {
		colonPos := strings.IndexByte(prefix, ':')
		if colonPos < 0 {
			return nil, &ProtocolError{Kind: ExtensibleMatchNoColon, Position: start}
		}
		colonPos += start
		attr = s[start:colonPos]

		if colonPos < equalPos-1 {
			rest := lowerPrefix[colonPos-start:]
			if strings.HasPrefix(rest, ":dn:") {
				dnAttributes = true
				if colonPos+4 < equalPos-1 {
					rule = s[colonPos+4 : equalPos-1]
				}
			} else {
				rule = s[colonPos+1 : equalPos-1]
			}
		}
	}

	value, err := decodeEscapes([]byte(s[equalPos+1:end]), equalPos+1)
	if err != nil {
		return nil, err
	}

	if attr == "" && rule == "" {
		return nil, &ProtocolError{Kind: ExtensibleMatchNoAttributeOrRule, Position: start}
	}

	return &Filter{
		Kind:         KindExtensibleMatch,
		Attribute:    attr,
		MatchingRule: rule,
		DNAttributes: dnAttributes,
		Value:        value,
	}, nil
}
