package grammar

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/rfc3986/internal/constraints"
	"github.com/ghettovoice/rfc3986/internal/grammar/rfc3986"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// MatchPrefix applies rule to s and returns the length of the longest matched prefix.
// It reports false if the rule does not match at all.
func MatchPrefix[T constraints.Byteseq](rule abnf.Rule, s T) (int, bool) {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule([]byte(s), ns); err != nil {
		return 0, false
	}
	return ns.Best().Len(), true
}

// Match reports whether rule matches the whole s.
func Match[T constraints.Byteseq](rule abnf.Rule, s T) bool {
	n, ok := MatchPrefix(rule, s)
	return ok && n == len(s)
}

// IsIPv4 checks IPv4address rule (RFC 3986 Section 3.2.2).
func IsIPv4[T constraints.Byteseq](s T) bool {
	return len(s) > 0 && IsDigit(s[0]) && Match(rfc3986.Rules().IPv4address, s)
}
