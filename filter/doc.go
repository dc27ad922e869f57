/*
Package filter implements a codec for the textual representation of LDAP
search filters defined by RFC 4515.

# Architecture Overview

The package is organized around three tightly coupled pieces:

  - Filter: the AST. A tagged variant (Kind) with one case per filter kind,
    carrying only the fields relevant to that kind.
  - Decode / DecodeWithOptions: a recursive-descent parser from a filter
    string (optionally bounded by Options) to a *Filter.
  - Print: the inverse serializer. print(decode(s)) is a canonical,
    re-parseable form of s.

# Grammar Extensions

Beyond RFC 4515, two deliberate extensions are accepted:

  - A filter wrapped in a pair of apostrophes is rejected outright, to
    diagnose a common quoting mistake rather than silently misparsing it.
  - Attribute descriptions additionally allow '_', in addition to the
    standard letters, digits, and '-', plus ';' and '=' for attribute
    options.

# Concurrency

Decode, DecodeWithOptions, and Print are pure functions with no shared
state; two goroutines may call them concurrently on distinct input with no
coordination. A *Filter returned by Decode is immutable and safe to share
across goroutines once returned.

# Error Handling

All failures are reported as *ProtocolError, carrying a ProtocolErrorKind
discriminator and a byte position into the original filter string (-1
for kinds that have no meaningful position). No
partial AST is ever returned alongside an error.
*/
package filter
