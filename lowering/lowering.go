package lowering

import (
	"github.com/go-ldap/ldap/v3"

	"github.com/isometry/ldapfilter/filter"
)

// Filter mirrors filter.Filter's shape, but every attribute description and
// matching-rule identifier has been resolved to a schema handle instead of
// a raw string.
type Filter struct {
	Kind filter.Kind

	Children []*Filter

	Attribute AttributeDescription
	Value     []byte

	SubInitial []byte
	HasInitial bool
	SubAny     [][]byte
	SubFinal   []byte
	HasFinal   bool

	MatchingRule MatchingRule
	DNAttributes bool
}

// inappropriateMatchingResultCode cross-references go-ldap/ldap/v3's own
// wire result code for INAPPROPRIATE_MATCHING purely for documentation and
// for callers that want to translate a lowering failure into an LDAP
// result code without this package adopting the wire protocol itself.
const inappropriateMatchingResultCode = ldap.LDAPResultInappropriateMatching

// Lower projects f onto a schema-aware Filter, resolving every attribute
// description and matching-rule identifier through schema. An And/Or node
// with exactly one child is replaced by that (lowered) child, per spec.md
// §4.4.
func Lower(f *filter.Filter, schema Schema) (*Filter, error) {
	switch f.Kind {
	case filter.KindAnd, filter.KindOr:
		return lowerJunction(f, schema)
	case filter.KindNot:
		child, err := Lower(f.Children[0], schema)
		if err != nil {
			return nil, err
		}
		return &Filter{Kind: filter.KindNot, Children: []*Filter{child}}, nil
	case filter.KindEquality, filter.KindGreaterOrEqual, filter.KindLessOrEqual, filter.KindApproximateMatch:
		attr, err := parseAttribute(schema, f.Attribute)
		if err != nil {
			return nil, err
		}
		return &Filter{Kind: f.Kind, Attribute: attr, Value: f.Value}, nil
	case filter.KindPresent:
		attr, err := parseAttribute(schema, f.Attribute)
		if err != nil {
			return nil, err
		}
		return &Filter{Kind: filter.KindPresent, Attribute: attr}, nil
	case filter.KindSubstring:
		attr, err := parseAttribute(schema, f.Attribute)
		if err != nil {
			return nil, err
		}
		return &Filter{
			Kind:       filter.KindSubstring,
			Attribute:  attr,
			SubInitial: f.SubInitial,
			HasInitial: f.HasInitial,
			SubAny:     f.SubAny,
			SubFinal:   f.SubFinal,
			HasFinal:   f.HasFinal,
		}, nil
	case filter.KindExtensibleMatch:
		return lowerExtensibleMatch(f, schema)
	default:
		return nil, &filter.ProtocolError{Kind: filter.UncaughtException, Position: -1, Detail: "unknown filter kind during lowering"}
	}
}

func lowerJunction(f *filter.Filter, schema Schema) (*Filter, error) {
	children := make([]*Filter, 0, len(f.Children))
	for _, child := range f.Children {
		lowered, err := Lower(child, schema)
		if err != nil {
			return nil, err
		}
		children = append(children, lowered)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &Filter{Kind: f.Kind, Children: children}, nil
}

func lowerExtensibleMatch(f *filter.Filter, schema Schema) (*Filter, error) {
	var attr AttributeDescription
	var attrErr error
	if f.Attribute != "" {
		attr, attrErr = schema.ParseAttributeDescription(f.Attribute)
		if attrErr != nil {
			return nil, &filter.ProtocolError{Kind: filter.InvalidAttributeDescription, Position: -1, Detail: f.Attribute, Cause: attrErr}
		}
	}

	var rule MatchingRule
	if f.MatchingRule != "" {
		resolved, err := schema.LookupMatchingRule(f.MatchingRule)
		if err != nil {
			return nil, &filter.ProtocolError{Kind: filter.UnknownMatchingRule, Position: -1, Detail: f.MatchingRule, Cause: err}
		}
		rule = resolved
	} else if attr == nil {
		// Guaranteed unreachable when f came from filter.Decode (which
		// rejects this combination up front — spec.md §4.2.4 step 5), but
		// an AST assembled by hand could still hit this. See spec.md §4.4
		// and DESIGN.md's grounding notes on toSearchFilter's guard order.
		return nil, &filter.ProtocolError{Kind: filter.ValueWithNoAttributeOrMatchingRule, Position: -1}
	}

	return &Filter{
		Kind:         filter.KindExtensibleMatch,
		Attribute:    attr,
		MatchingRule: rule,
		DNAttributes: f.DNAttributes,
		Value:        f.Value,
	}, nil
}

// ResultCode maps a lowering ProtocolError onto the corresponding
// go-ldap/ldap/v3 wire result code, for callers that need to report a
// standard LDAP error code (e.g. an LDAP server built on this codec). It
// does not change how this package reports its own errors; see
// inappropriateMatchingResultCode.
func ResultCode(err error) (code uint16, ok bool) {
	var protoErr *filter.ProtocolError
	if pe, isPe := err.(*filter.ProtocolError); isPe {
		protoErr = pe
	} else {
		return 0, false
	}

	switch protoErr.Kind {
	case filter.UnknownMatchingRule:
		return inappropriateMatchingResultCode, true
	case filter.ValueWithNoAttributeOrMatchingRule, filter.InvalidAttributeDescription:
		return ldap.LDAPResultProtocolError, true
	default:
		return 0, false
	}
}

func parseAttribute(schema Schema, raw string) (AttributeDescription, error) {
	attr, err := schema.ParseAttributeDescription(raw)
	if err != nil {
		return nil, &filter.ProtocolError{Kind: filter.InvalidAttributeDescription, Position: -1, Detail: raw, Cause: err}
	}
	return attr, nil
}
