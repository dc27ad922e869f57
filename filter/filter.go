package filter

// Kind identifies which variant of Filter a value holds.
type Kind int

const (
	// KindAnd represents a "(&...)" filter.
	KindAnd Kind = iota
	// KindOr represents a "(|...)" filter.
	KindOr
	// KindNot represents a "(!...)" filter.
	KindNot
	// KindEquality represents a "(attr=value)" filter.
	KindEquality
	// KindGreaterOrEqual represents a "(attr>=value)" filter.
	KindGreaterOrEqual
	// KindLessOrEqual represents a "(attr<=value)" filter.
	KindLessOrEqual
	// KindApproximateMatch represents a "(attr~=value)" filter.
	KindApproximateMatch
	// KindSubstring represents a "(attr=init*any*final)" filter.
	KindSubstring
	// KindPresent represents a "(attr=*)" filter.
	KindPresent
	// KindExtensibleMatch represents a "(attr:dn:rule:=value)" filter.
	KindExtensibleMatch
)

func (k Kind) String() string {
	switch k {
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindNot:
		return "Not"
	case KindEquality:
		return "Equality"
	case KindGreaterOrEqual:
		return "GreaterOrEqual"
	case KindLessOrEqual:
		return "LessOrEqual"
	case KindApproximateMatch:
		return "ApproximateMatch"
	case KindSubstring:
		return "Substring"
	case KindPresent:
		return "Present"
	case KindExtensibleMatch:
		return "ExtensibleMatch"
	default:
		return "Unknown"
	}
}

// Filter is a tagged variant expressing one node of an LDAP search filter
// tree. Only the fields relevant to Kind are populated; the rest are left
// at their zero value. Once returned by Decode, a Filter and everything it
// points to is treated as immutable — the printer and lowering step only
// read it, and each node is exclusively owned by its parent.
type Filter struct {
	Kind Kind

	// And, Or: ordered children. May be empty (denoting absolute
	// true/false). Not: exactly one child, stored in Children[0].
	Children []*Filter

	// Equality, GreaterOrEqual, LessOrEqual, ApproximateMatch, Substring,
	// Present: the attribute description. Non-empty except that
	// ExtensibleMatch may leave this empty.
	Attribute string

	// Equality, GreaterOrEqual, LessOrEqual, ApproximateMatch,
	// ExtensibleMatch: the assertion value, an arbitrary octet string.
	Value []byte

	// Substring only.
	SubInitial []byte
	HasInitial bool
	SubAny     [][]byte
	SubFinal   []byte
	HasFinal   bool

	// ExtensibleMatch only.
	MatchingRule string
	DNAttributes bool
}

// And returns a new And filter over the given children (may be empty).
func And(children ...*Filter) *Filter {
	return &Filter{Kind: KindAnd, Children: children}
}

// Or returns a new Or filter over the given children (may be empty).
func Or(children ...*Filter) *Filter {
	return &Filter{Kind: KindOr, Children: children}
}

// Not returns a new Not filter wrapping the single given child.
func Not(child *Filter) *Filter {
	return &Filter{Kind: KindNot, Children: []*Filter{child}}
}

// Equality returns a new Equality filter.
func Equality(attribute string, value []byte) *Filter {
	return &Filter{Kind: KindEquality, Attribute: attribute, Value: value}
}

// GreaterOrEqual returns a new GreaterOrEqual filter.
func GreaterOrEqual(attribute string, value []byte) *Filter {
	return &Filter{Kind: KindGreaterOrEqual, Attribute: attribute, Value: value}
}

// LessOrEqual returns a new LessOrEqual filter.
func LessOrEqual(attribute string, value []byte) *Filter {
	return &Filter{Kind: KindLessOrEqual, Attribute: attribute, Value: value}
}

// ApproximateMatch returns a new ApproximateMatch filter.
func ApproximateMatch(attribute string, value []byte) *Filter {
	return &Filter{Kind: KindApproximateMatch, Attribute: attribute, Value: value}
}

// Present returns a new Present filter for the given attribute.
func Present(attribute string) *Filter {
	return &Filter{Kind: KindPresent, Attribute: attribute}
}
