package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/grammar"
)

// Decode decodes every "%" HEXDIG HEXDIG triplet of s.
// The error matches [ErrMalformedEncoding] if a '%' does not start a triplet.
func Decode(s string) (string, error) {
	b, err := grammar.Decode(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(b), nil
}

// EncodeUserInfo percent-encodes s to be used as userinfo.
func EncodeUserInfo(s string) string { return grammar.Encode(s, grammar.IsUserInfoChar) }

// EncodeHost percent-encodes s to be used as a registered name host.
func EncodeHost(s string) string { return grammar.Encode(s, grammar.IsRegNameChar) }

// EncodePath percent-encodes s to be used as a path, '/' is kept as the segment separator.
func EncodePath(s string) string { return grammar.Encode(s, grammar.IsPathChar) }

// EncodeSegment percent-encodes s to be used as a single path segment.
func EncodeSegment(s string) string { return grammar.Encode(s, grammar.IsPchar) }

// EncodeQuery percent-encodes s to be used as a query or a fragment.
func EncodeQuery(s string) string { return grammar.Encode(s, grammar.IsQueryChar) }
