package uri

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/ioutil"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// HostKind is the syntactic form of a host.
type HostKind uint8

const (
	// RegName is a registered name, possibly empty (RFC 3986 Section 3.2.2).
	RegName HostKind = iota
	// IPv4 is a dotted-decimal IPv4 address.
	IPv4
	// IPv6 is a bracketed IPv6 address literal.
	IPv6
	// IPvFuture is a bracketed "v" HEXDIG "." literal.
	IPvFuture
)

func (k HostKind) String() string {
	switch k {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	case IPvFuture:
		return "IPvFuture"
	default:
		return "reg-name"
	}
}

// Authority is the "[ userinfo "@" ] host [ ":" port ]" component.
// Values are kept in their encoded form.
type Authority struct {
	UserInfo Part
	// Host is always present when the authority is, it may be empty.
	// IP literals keep their brackets.
	Host string
	Port Part
}

// HostKind classifies the host.
// The host is expected to be valid, see [ValidateHost].
func (a Authority) HostKind() HostKind { return hostKind(a.Host) }

// IsEmpty reports whether the authority renders as an empty string.
func (a Authority) IsEmpty() bool {
	return a.UserInfo.IsAbsent() && a.Host == "" && a.Port.IsAbsent()
}

// String returns the authority as it appears after "//".
func (a Authority) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	a.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// RenderTo writes the authority to w.
func (a Authority) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if a.UserInfo.IsDefined() {
		cw.WriteString(a.UserInfo.val)
		cw.WriteByte('@')
	}
	cw.WriteString(a.Host)
	if a.Port.IsDefined() {
		cw.WriteByte(':')
		cw.WriteString(a.Port.val)
	}
	return errtrace.Wrap2(cw.Result())
}

// Components is the set of five URI components.
// Values are kept in their encoded form.
type Components struct {
	Scheme Part
	// Authority is nil when there is no "//" in the URI.
	// A non-nil zero Authority is the present-empty authority of "file:///etc".
	Authority *Authority
	// Path is always present, it may be empty.
	Path     string
	Query    Part
	Fragment Part
}

// Clone returns a deep copy of c.
func (c Components) Clone() Components {
	if c.Authority != nil {
		a := *c.Authority
		c.Authority = &a
	}
	return c
}

// Equal reports whether all components of c and o are equal.
func (c Components) Equal(o Components) bool {
	if c.Scheme != o.Scheme || c.Path != o.Path || c.Query != o.Query || c.Fragment != o.Fragment {
		return false
	}
	if c.Authority == nil || o.Authority == nil {
		return c.Authority == o.Authority
	}
	return *c.Authority == *o.Authority
}

// String renders the components with their delimiters.
// Delimiters are added only for defined components.
// Components are rendered as is, [Normalize] takes care of paths that need a "/." or "./" prefix.
// An empty string is returned when an authority is combined with a rootless path.
func (c Components) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// RenderTo writes the rendered components to w, see [Components.String].
func (c Components) RenderTo(w io.Writer) (num int, err error) {
	if c.Authority != nil && c.Path != "" && c.Path[0] != '/' {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if c.Scheme.IsDefined() {
		cw.WriteString(c.Scheme.val)
		cw.WriteByte(':')
	}
	if c.Authority != nil {
		cw.WriteString("//")
		cw.Call(c.Authority.RenderTo)
	}
	cw.WriteString(c.Path)
	if c.Query.IsDefined() {
		cw.WriteByte('?')
		cw.WriteString(c.Query.val)
	}
	if c.Fragment.IsDefined() {
		cw.WriteByte('#')
		cw.WriteString(c.Fragment.val)
	}
	return errtrace.Wrap2(cw.Result())
}
