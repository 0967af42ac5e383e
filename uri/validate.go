package uri

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/rfc3986/internal/grammar"
	"github.com/ghettovoice/rfc3986/internal/grammar/rfc3986"
)

// ValidateScheme checks s against scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
// Percent-encoding is not allowed in a scheme.
func ValidateScheme(s string) error { return wrapCompErr(validateScheme(s, 0)) }

// ValidateUserInfo checks s against userinfo = *( unreserved / pct-encoded / sub-delims / ":" ).
func ValidateUserInfo(s string) error { return wrapCompErr(validateUserInfo(s, 0)) }

// ValidateHost checks s against host = IP-literal / IPv4address / reg-name.
// IP literals are expected with brackets.
func ValidateHost(s string) error { return wrapCompErr(validateHost(s, 0)) }

// ValidatePort checks s against port = *DIGIT.
func ValidatePort(s string) error { return wrapCompErr(validatePort(s, 0)) }

// ValidatePath checks s against path = *( pchar / "/" ).
// Cross-component rules that depend on scheme and authority are checked by [Parse] and [Builder.Build].
func ValidatePath(s string) error { return wrapCompErr(validatePath(s, 0)) }

// ValidateQuery checks s against query = *( pchar / "/" / "?" ).
func ValidateQuery(s string) error { return wrapCompErr(validateQuery(s, 0)) }

// ValidateFragment checks s against fragment = *( pchar / "/" / "?" ).
func ValidateFragment(s string) error { return wrapCompErr(validateFragment(s, 0)) }

func wrapCompErr(err *ComponentError) error {
	if err == nil {
		return nil
	}
	return errtrace.Wrap(err)
}

func validateScheme(s string, base int) *ComponentError {
	if s == "" {
		return newGrammarErr(CompScheme, base, "empty scheme")
	}
	return matchComp(CompScheme, rfc3986.Rules().Scheme, s, base)
}

func validateUserInfo(s string, base int) *ComponentError {
	return matchEncoded(CompUserInfo, rfc3986.Rules().Userinfo, s, base)
}

// validateHost matches host = IP-literal / IPv4address / reg-name.
func validateHost(s string, base int) *ComponentError {
	if off, ok := grammar.CheckEncoding(s); !ok {
		return newEncodingErr(CompHost, base+off)
	}
	n, _ := grammar.MatchPrefix(rfc3986.Rules().Host, s)
	switch {
	case n == len(s):
		return nil
	case n > 0 || s[0] != '[':
		return newGrammarErr(CompHost, base+n, "unexpected character %q", s[n])
	case len(s) < 2 || s[len(s)-1] != ']':
		return newGrammarErr(CompHost, base+len(s), "unterminated IP literal")
	}
	lit := s[1 : len(s)-1]
	if lit != "" && (lit[0] == 'v' || lit[0] == 'V') {
		n, _ = grammar.MatchPrefix(rfc3986.Rules().IPvFuture, lit)
		return newGrammarErr(CompHost, base+1+n, "invalid IPvFuture address %q", lit)
	}
	return newGrammarErr(CompHost, base+1, "invalid IPv6 address %q", lit)
}

func hostKind(s string) HostKind {
	switch {
	case strings.HasPrefix(s, "[v"), strings.HasPrefix(s, "[V"):
		return IPvFuture
	case strings.HasPrefix(s, "["):
		return IPv6
	case grammar.IsIPv4(s):
		return IPv4
	default:
		return RegName
	}
}

func validatePort(s string, base int) *ComponentError {
	return matchComp(CompPort, rfc3986.Rules().Port, s, base)
}

func validatePath(s string, base int) *ComponentError {
	return matchEncoded(CompPath, rfc3986.Rules().Path, s, base)
}

func validateQuery(s string, base int) *ComponentError {
	return matchEncoded(CompQuery, rfc3986.Rules().Query, s, base)
}

func validateFragment(s string, base int) *ComponentError {
	return matchEncoded(CompFragment, rfc3986.Rules().Fragment, s, base)
}

// matchEncoded reports a malformed triplet before falling back to the rule match.
func matchEncoded(comp string, rule abnf.Rule, s string, base int) *ComponentError {
	if off, ok := grammar.CheckEncoding(s); !ok {
		return newEncodingErr(comp, base+off)
	}
	return matchComp(comp, rule, s, base)
}

// matchComp requires rule to match the whole s.
// The error offset points right after the longest matched prefix.
func matchComp(comp string, rule abnf.Rule, s string, base int) *ComponentError {
	n, _ := grammar.MatchPrefix(rule, s)
	if n == len(s) {
		return nil
	}
	return newGrammarErr(comp, base+n, "unexpected character %q", s[n])
}

// offsets holds the input offsets of components for error reporting.
type offsets struct {
	scheme, userinfo, host, port, path, query, fragment int
}

func validateComponents(c Components, offs offsets) *ComponentError {
	if c.Scheme.IsDefined() {
		if err := validateScheme(c.Scheme.val, offs.scheme); err != nil {
			return err
		}
	}
	if a := c.Authority; a != nil {
		if a.UserInfo.IsDefined() {
			if err := validateUserInfo(a.UserInfo.val, offs.userinfo); err != nil {
				return err
			}
		}
		if err := validateHost(a.Host, offs.host); err != nil {
			return err
		}
		if a.Port.IsDefined() {
			if err := validatePort(a.Port.val, offs.port); err != nil {
				return err
			}
		}
	}
	if err := validatePath(c.Path, offs.path); err != nil {
		return err
	}
	if c.Query.IsDefined() {
		if err := validateQuery(c.Query.val, offs.query); err != nil {
			return err
		}
	}
	if c.Fragment.IsDefined() {
		if err := validateFragment(c.Fragment.val, offs.fragment); err != nil {
			return err
		}
	}
	return checkInvariants(c, offs.path)
}

// checkInvariants enforces the rules of RFC 3986 Section 3 that tie the path to the scheme and authority.
func checkInvariants(c Components, pathOff int) *ComponentError {
	if c.Authority != nil {
		if c.Path != "" && c.Path[0] != '/' {
			return newGrammarErr(CompPath, pathOff, "path must be empty or begin with '/' when authority is present")
		}
		return nil
	}
	if strings.HasPrefix(c.Path, "//") {
		return newGrammarErr(CompPath, pathOff, "path must not begin with \"//\" when authority is absent")
	}
	if c.Scheme.IsAbsent() {
		seg := c.Path
		if i := strings.IndexByte(seg, '/'); i >= 0 {
			seg = seg[:i]
		}
		if i := strings.IndexByte(seg, ':'); i >= 0 {
			return newGrammarErr(CompPath, pathOff+i, "first segment of a relative-path reference must not contain ':'")
		}
	}
	return nil
}
