package uri

import (
	"strconv"

	"braces.dev/errtrace"
)

// Builder stages URI components before producing an immutable [URI].
//
// Setters accept encoded values and never validate; any state is allowed until [Builder.Build].
// Components taking a [Part] distinguish absent ([NoPart]), empty ([EmptyPart]) and present ([PartOf]) values.
// A Builder must not be used from several goroutines at once.
type Builder struct {
	scheme   Part
	auth     *Authority
	path     string
	query    Part
	fragment Part
}

// NewBuilder returns an empty builder.
// Building it right away yields the empty relative reference.
func NewBuilder() *Builder { return &Builder{} }

// WithScheme sets the scheme.
func (b *Builder) WithScheme(p Part) *Builder {
	b.scheme = p
	return b
}

// WithAuthority sets the whole authority from its "[ userinfo "@" ] host [ ":" port ]" text.
// [NoPart] removes the authority, [EmptyPart] sets the present-empty authority.
func (b *Builder) WithAuthority(p Part) *Builder {
	if p.IsAbsent() {
		b.auth = nil
		return b
	}
	// the split itself never fails outside of IP literals,
	// the broken literal is then kept as host and rejected by Build.
	a, _, err := splitAuthority(p.val, 0)
	if err != nil {
		a = Authority{Host: p.val}
	}
	b.auth = &a
	return b
}

// WithUserInfo sets the userinfo. Setting a defined userinfo makes the authority present.
func (b *Builder) WithUserInfo(p Part) *Builder {
	if p.IsAbsent() && b.auth == nil {
		return b
	}
	b.authority().UserInfo = p
	return b
}

// WithHost sets the host and makes the authority present.
// IP literals are expected with brackets.
func (b *Builder) WithHost(host string) *Builder {
	b.authority().Host = host
	return b
}

// WithPort sets the port. Setting a defined port makes the authority present.
func (b *Builder) WithPort(p Part) *Builder {
	if p.IsAbsent() && b.auth == nil {
		return b
	}
	b.authority().Port = p
	return b
}

// WithPortNumber sets a numeric port and makes the authority present.
func (b *Builder) WithPortNumber(port uint16) *Builder {
	return b.WithPort(PartOf(strconv.FormatUint(uint64(port), 10)))
}

// WithPath sets the path.
func (b *Builder) WithPath(path string) *Builder {
	b.path = path
	return b
}

// WithQuery sets the query.
func (b *Builder) WithQuery(p Part) *Builder {
	b.query = p
	return b
}

// WithFragment sets the fragment.
func (b *Builder) WithFragment(p Part) *Builder {
	b.fragment = p
	return b
}

// Reset clears the builder.
func (b *Builder) Reset() *Builder {
	*b = Builder{}
	return b
}

// Build validates the staged components, normalizes them and returns the resulting [URI].
// The builder is left untouched and may be reused.
func (b *Builder) Build() (*URI, error) {
	return errtrace.Wrap2(defParser.Build(b))
}

func (b *Builder) authority() *Authority {
	if b.auth == nil {
		b.auth = &Authority{}
	}
	return b.auth
}

// WithComponents replaces the builder state with a copy of c.
func (b *Builder) WithComponents(c Components) *Builder {
	b.set(c.Clone())
	return b
}

func (b *Builder) set(c Components) {
	b.scheme = c.Scheme
	b.auth = c.Authority
	b.path = c.Path
	b.query = c.Query
	b.fragment = c.Fragment
}

func (b *Builder) components() Components {
	return Components{
		Scheme:    b.scheme,
		Authority: b.auth,
		Path:      b.path,
		Query:     b.query,
		Fragment:  b.fragment,
	}.Clone()
}
