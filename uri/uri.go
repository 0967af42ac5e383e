package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"
)

// URI is an immutable, normalized URI reference.
//
// A URI is created only by [Parse], [Resolve], [Builder.Build] and the [Parser] methods.
// It has no mutators; use [URI.Builder] to derive a modified copy.
// The zero URI is the empty relative reference.
// All methods are safe to call on a nil *URI.
type URI struct {
	comps Components
	str   string
}

func newURI(c Components) *URI {
	return &URI{comps: c, str: c.String()}
}

// Components returns a copy of the URI components.
func (u *URI) Components() Components {
	if u == nil {
		return Components{}
	}
	return u.comps.Clone()
}

// Scheme returns the lower-case scheme, or an empty string if the URI is a relative reference.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.comps.Scheme.val
}

// HasScheme reports whether the scheme is present.
func (u *URI) HasScheme() bool { return u != nil && u.comps.Scheme.IsDefined() }

// IsAbsolute reports whether the URI has a scheme and no fragment (RFC 3986 Section 4.3).
func (u *URI) IsAbsolute() bool { return u.HasScheme() && u.comps.Fragment.IsAbsent() }

// IsRelative reports whether the URI is a relative reference, i.e. has no scheme.
func (u *URI) IsRelative() bool { return !u.HasScheme() }

// Authority returns the rendered authority.
// It is absent when the URI has no "//" and empty when the authority has zero length.
func (u *URI) Authority() Part {
	if u == nil || u.comps.Authority == nil {
		return NoPart()
	}
	return PartOf(u.comps.Authority.String())
}

// UserInfo returns the userinfo subcomponent.
func (u *URI) UserInfo() Part {
	if u == nil || u.comps.Authority == nil {
		return NoPart()
	}
	return u.comps.Authority.UserInfo
}

// Host returns the host subcomponent.
// It is absent only when the authority is absent.
func (u *URI) Host() Part {
	if u == nil || u.comps.Authority == nil {
		return NoPart()
	}
	return PartOf(u.comps.Authority.Host)
}

// HostKind returns the syntactic form of the host.
func (u *URI) HostKind() HostKind {
	if u == nil || u.comps.Authority == nil {
		return RegName
	}
	return u.comps.Authority.HostKind()
}

// Port returns the port subcomponent.
// An empty port ("http://a:/") means the scheme default and differs from an absent one.
func (u *URI) Port() Part {
	if u == nil || u.comps.Authority == nil {
		return NoPart()
	}
	return u.comps.Authority.Port
}

// PortNumber returns the numeric port.
// It returns false when the port is absent, empty or does not fit in 16 bits.
func (u *URI) PortNumber() (uint16, bool) {
	p := u.Port()
	if p.Presence() != Present {
		return 0, false
	}
	n, err := strconv.ParseUint(p.val, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// Path returns the path, possibly empty.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.comps.Path
}

// Query returns the query.
func (u *URI) Query() Part {
	if u == nil {
		return NoPart()
	}
	return u.comps.Query
}

// Fragment returns the fragment.
func (u *URI) Fragment() Part {
	if u == nil {
		return NoPart()
	}
	return u.comps.Fragment
}

// CanonicalString returns the normalized string form of the URI.
// An empty string is returned for a nil URI.
func (u *URI) CanonicalString() string {
	if u == nil {
		return ""
	}
	return u.str
}

// String returns the normalized string form of the URI.
func (u *URI) String() string { return u.CanonicalString() }

// RenderTo writes the normalized string form of the URI to w.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, u.str))
}

// Builder returns a new [Builder] pre-filled with the URI components.
func (u *URI) Builder() *Builder {
	b := NewBuilder()
	if u != nil {
		b.set(u.comps.Clone())
	}
	return b
}

// Equal reports whether val is a URI with exactly the same components.
// Strings are not compared: "s:" and "s://" render differently and are different URIs,
// while "HTTP://A/%7e" and "http://a/~" normalize to equal components.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.comps.Equal(other.comps)
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if f.Flag('+') {
			fmt.Fprintf(f, "%+v", u.debugValue())
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

type uriDebug struct {
	Scheme, Authority, UserInfo, Host, Port fmt.Formatter
	Path                                    string
	Query, Fragment                         fmt.Formatter
}

func (u *URI) debugValue() uriDebug {
	return uriDebug{
		Scheme:    u.Components().Scheme,
		Authority: u.Authority(),
		UserInfo:  u.UserInfo(),
		Host:      u.Host(),
		Port:      u.Port(),
		Path:      u.Path(),
		Query:     u.Query(),
		Fragment:  u.Fragment(),
	}
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.StringValue("")
	}
	return slog.StringValue(u.str)
}
