package grammar

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/constraints"
)

const upperhex = "0123456789ABCDEF"

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func isTriplet[T constraints.Byteseq](s T, i int) bool {
	return s[i] == '%' && i+2 < len(s) && IsHexDig(s[i+1]) && IsHexDig(s[i+2])
}

// CheckEncoding returns the offset of the first '%' that does not start a valid triplet.
func CheckEncoding[T constraints.Byteseq](s T) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if !isTriplet(s, i) {
			return i, false
		}
		i += 2
	}
	return -1, true
}

// Decode strictly decodes every "%" HEXDIG HEXDIG triplet of s.
// It fails with [ErrMalformedEncoding] if a '%' is not followed by two hex digits.
func Decode[T constraints.Byteseq](s T) ([]byte, error) {
	if off, ok := CheckEncoding(s); !ok {
		return nil, errtrace.Wrap(&EncodingError{Offset: off})
	}
	return []byte(Unescape(s)), nil
}

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed triplets are copied as is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isTriplet(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Encode encodes every byte of b not accepted by allowed as an uppercase "%HH" triplet.
// The percent sign itself is always encoded.
// If allowed is nil, only unreserved characters are kept verbatim.
func Encode[T constraints.Byteseq](b T, allowed func(c byte) bool) string {
	if allowed == nil {
		allowed = IsUnreserved
	}

	var sb bytes.Buffer
	sb.Grow(len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != '%' && allowed(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

// NormalizeEscapes applies RFC 3986 Section 6.2.2.2 to s:
// triplets of unreserved characters are decoded, all other triplets get uppercase hex digits.
func NormalizeEscapes[T constraints.Byteseq](s T) T {
	i := 0
	for ; i < len(s); i++ {
		if s[i] == '%' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for j := 0; j < i; j++ {
		b.WriteByte(s[j])
	}
	for ; i < len(s); i++ {
		if !isTriplet(s, i) {
			b.WriteByte(s[i])
			continue
		}
		if c := unhex(s[i+1])<<4 | unhex(s[i+2]); IsUnreserved(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[unhex(s[i+1])])
			b.WriteByte(upperhex[unhex(s[i+2])])
		}
		i += 2
	}
	return T(b.Bytes())
}
