// Package grammar provides RFC 3986 character classes and percent-encoding primitives.
package grammar

import "fmt"

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrMalformedEncoding Error = "malformed percent-encoding"
	ErrGrammarViolation  Error = "grammar violation"
)

// EncodingError reports a percent sign at Offset that does not start a "%" HEXDIG HEXDIG triplet.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s at offset %d", ErrMalformedEncoding, e.Offset)
}

func (*EncodingError) Grammar() bool { return true }

func (*EncodingError) Unwrap() error { return ErrMalformedEncoding }

// IsAlpha checks ALPHA rule.
func IsAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

// IsDigit checks DIGIT rule.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsHexDig checks HEXDIG rule (case-insensitive).
func IsHexDig(c byte) bool {
	return IsDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// IsUnreserved checks unreserved rule (RFC 3986 Section 2.3).
func IsUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlpha(c) || IsDigit(c)
}

// IsSubDelim checks sub-delims rule (RFC 3986 Section 2.2).
func IsSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// IsPchar checks pchar rule excluding the pct-encoded alternative (RFC 3986 Section 3.3).
func IsPchar(c byte) bool { return IsUnreserved(c) || IsSubDelim(c) || c == ':' || c == '@' }

// IsUserInfoChar checks userinfo rule excluding pct-encoded.
func IsUserInfoChar(c byte) bool { return IsUnreserved(c) || IsSubDelim(c) || c == ':' }

// IsRegNameChar checks reg-name rule excluding pct-encoded.
func IsRegNameChar(c byte) bool { return IsUnreserved(c) || IsSubDelim(c) }

// IsQueryChar checks query and fragment rules excluding pct-encoded.
func IsQueryChar(c byte) bool { return IsPchar(c) || c == '/' || c == '?' }

// IsPathChar checks path characters: pchar and the segment separator.
func IsPathChar(c byte) bool { return IsPchar(c) || c == '/' }
