package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/constraints"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// Parse parses a URI reference from the given input s (string or []byte),
// normalizes it and returns the resulting [URI].
// Both absolute URIs and relative references are accepted.
//
// The returned error matches [ErrInvalidURI] and wraps a [*ComponentError]
// describing the first component that failed its grammar.
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	return errtrace.Wrap2(defParser.Parse(string(s)))
}

// MustParse is like [Parse] but panics on error.
func MustParse[T constraints.Byteseq](s T) *URI { return util.Must2(Parse(s)) }

// ParseComponents splits and validates the input s (string or []byte) without normalization.
// Component values are returned exactly as they appear in s.
func ParseComponents[T constraints.Byteseq](s T) (Components, error) {
	c, err := parseComponents(string(s), true)
	if err != nil {
		return Components{}, errtrace.Wrap(&InvalidURIError{Input: string(s), Err: err})
	}
	return c, nil
}

// ParseRelative parses the input s (string or []byte) strictly as a relative reference.
// A scheme is never recognized, so a ':' in the first path segment is an error.
func ParseRelative[T constraints.Byteseq](s T) (*URI, error) {
	c, err := parseComponents(string(s), false)
	if err != nil {
		return nil, errtrace.Wrap(&InvalidURIError{Input: string(s), Err: err})
	}
	return errtrace.Wrap2(defParser.finalize(Normalize(c)))
}

// parseComponents implements the component split of RFC 3986 Appendix B
// keeping track of delimiters instead of relying on empty matches.
func parseComponents(s string, withScheme bool) (Components, *ComponentError) {
	var (
		c    Components
		offs offsets
		pos  int
	)

	// scheme: everything before the first ':' that precedes any of "/?#".
	if withScheme {
		if i := strings.IndexAny(s, ":/?#"); i >= 0 && s[i] == ':' {
			if err := validateScheme(s[:i], 0); err != nil {
				return Components{}, err
			}
			c.Scheme = PartOf(s[:i])
			pos = i + 1
		}
	}

	// authority: "//" up to the next "/?#".
	if strings.HasPrefix(s[pos:], "//") {
		pos += 2
		end := len(s)
		if i := strings.IndexAny(s[pos:], "/?#"); i >= 0 {
			end = pos + i
		}
		a, aoffs, err := splitAuthority(s[pos:end], pos)
		if err != nil {
			return Components{}, err
		}
		c.Authority = &a
		offs.userinfo, offs.host, offs.port = aoffs.userinfo, aoffs.host, aoffs.port
		pos = end
	}

	// path: up to "?" or "#".
	end := len(s)
	if i := strings.IndexAny(s[pos:], "?#"); i >= 0 {
		end = pos + i
	}
	c.Path, offs.path = s[pos:end], pos
	pos = end

	// query: after "?" up to "#".
	if pos < len(s) && s[pos] == '?' {
		pos++
		end = len(s)
		if i := strings.IndexByte(s[pos:], '#'); i >= 0 {
			end = pos + i
		}
		c.Query, offs.query = PartOf(s[pos:end]), pos
		pos = end
	}

	// fragment: after "#" up to the end.
	if pos < len(s) && s[pos] == '#' {
		pos++
		c.Fragment, offs.fragment = PartOf(s[pos:]), pos
	}

	if err := validateComponents(c, offs); err != nil {
		return Components{}, err
	}
	return c, nil
}

// splitAuthority splits "[ userinfo "@" ] host [ ":" port ]" starting at input offset base.
// Values are not validated.
func splitAuthority(s string, base int) (Authority, offsets, *ComponentError) {
	var (
		a    Authority
		offs offsets
	)

	hostport, hpoff := s, base
	if i := strings.LastIndexByte(s, '@'); i >= 0 {
		a.UserInfo, offs.userinfo = PartOf(s[:i]), base
		hostport, hpoff = s[i+1:], base+i+1
	}

	a.Host, offs.host = hostport, hpoff
	if strings.HasPrefix(hostport, "[") {
		i := strings.IndexByte(hostport, ']')
		if i < 0 {
			return Authority{}, offs, newGrammarErr(CompHost, hpoff+len(hostport), "unterminated IP literal")
		}
		a.Host = hostport[:i+1]
		switch rest := hostport[i+1:]; {
		case rest == "":
		case rest[0] == ':':
			a.Port, offs.port = PartOf(rest[1:]), hpoff+i+2
		default:
			return Authority{}, offs, newGrammarErr(CompHost, hpoff+i+1, "unexpected character %q after IP literal", rest[0])
		}
	} else if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		a.Host = hostport[:i]
		a.Port, offs.port = PartOf(hostport[i+1:]), hpoff+i+1
	}
	return a, offs, nil
}
