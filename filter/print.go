package filter

// Print renders f as its canonical RFC 4515 textual form.
func Print(f *Filter) string {
	var buf []byte
	buf = appendFilter(buf, f)
	return string(buf)
}

func appendFilter(buf []byte, f *Filter) []byte {
	switch f.Kind {
	case KindAnd:
		buf = append(buf, '(', '&')
		for _, child := range f.Children {
			buf = appendFilter(buf, child)
		}
		return append(buf, ')')
	case KindOr:
		buf = append(buf, '(', '|')
		for _, child := range f.Children {
			buf = appendFilter(buf, child)
		}
		return append(buf, ')')
	case KindNot:
		buf = append(buf, '(', '!')
		buf = appendFilter(buf, f.Children[0])
		return append(buf, ')')
	case KindEquality:
		return appendSimple(buf, f.Attribute, "=", f.Value)
	case KindGreaterOrEqual:
		return appendSimple(buf, f.Attribute, ">=", f.Value)
	case KindLessOrEqual:
		return appendSimple(buf, f.Attribute, "<=", f.Value)
	case KindApproximateMatch:
		return appendSimple(buf, f.Attribute, "~=", f.Value)
	case KindPresent:
		buf = append(buf, '(')
		buf = append(buf, f.Attribute...)
		return append(buf, '=', '*', ')')
	case KindSubstring:
		return appendSubstring(buf, f)
	case KindExtensibleMatch:
		return appendExtensibleMatch(buf, f)
	default:
		return buf
	}
}

func appendSimple(buf []byte, attr, op string, value []byte) []byte {
	buf = append(buf, '(')
	buf = append(buf, attr...)
	buf = append(buf, op...)
	buf = appendEscaped(buf, value)
	return append(buf, ')')
}

func appendSubstring(buf []byte, f *Filter) []byte {
	buf = append(buf, '(')
	buf = append(buf, f.Attribute...)
	buf = append(buf, '=')
	if f.HasInitial {
		buf = appendEscaped(buf, f.SubInitial)
	}
	for _, any := range f.SubAny {
		buf = append(buf, '*')
		buf = appendEscaped(buf, any)
	}
	buf = append(buf, '*')
	if f.HasFinal {
		buf = appendEscaped(buf, f.SubFinal)
	}
	return append(buf, ')')
}

func appendExtensibleMatch(buf []byte, f *Filter) []byte {
	buf = append(buf, '(')
	buf = append(buf, f.Attribute...)
	if f.DNAttributes {
		buf = append(buf, ':', 'd', 'n')
	}
	if f.MatchingRule != "" {
		buf = append(buf, ':')
		buf = append(buf, f.MatchingRule...)
	}
	buf = append(buf, ':', '=')
	buf = appendEscaped(buf, f.Value)
	return append(buf, ')')
}
