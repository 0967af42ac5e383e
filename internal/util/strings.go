package util

import (
	"strings"
	"sync"
)

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	return strings.EqualFold(string(s1), string(s2))
}

// LCaseASCII lower-cases ASCII letters of s except the hex digits of "%" HEXDIG HEXDIG triplets.
func LCaseASCII(s string) string {
	var sb *strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			if sb != nil {
				sb.WriteString(s[i : i+3])
			}
			i += 2
			continue
		}
		if 'A' <= c && c <= 'Z' {
			if sb == nil {
				sb = GetStringBuilder()
				defer FreeStringBuilder(sb)
				sb.WriteString(s[:i])
			}
			c += 'a' - 'A'
		}
		if sb != nil {
			sb.WriteByte(c)
		}
	}
	if sb == nil {
		return s
	}
	return sb.String()
}

func Ellipsis(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[0:maxLen]) + "..."
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
