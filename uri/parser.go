package uri

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/util"
	"github.com/ghettovoice/rfc3986/log"
)

// Option configures a [Parser].
type Option interface {
	apply(p *Parser)
}

type withLogger struct {
	log *slog.Logger
}

func (o withLogger) apply(p *Parser) { p.log = o.log }

// WithLogger sets the logger used to report rejected inputs at debug level.
// Default is [log.Noop].
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		l = log.Noop
	}
	return withLogger{l}
}

type withHook struct {
	scheme string
	hook   Hook
}

func (o withHook) apply(p *Parser) {
	if p.hooks == nil {
		p.hooks = make(map[string]Hook)
	}
	if o.hook == nil {
		delete(p.hooks, o.scheme)
		return
	}
	p.hooks[o.scheme] = o.hook
}

// WithHook registers h for URIs with the given scheme.
// Schemes are matched case-insensitively. A nil hook removes the registration.
func WithHook(scheme string, h Hook) Option {
	return withHook{util.LCase(scheme), h}
}

type withHooks map[string]Hook

func (o withHooks) apply(p *Parser) {
	for scheme, h := range o {
		WithHook(scheme, h).apply(p)
	}
}

// WithHooks registers hooks keyed by scheme, see [WithHook].
func WithHooks(hooks map[string]Hook) Option { return withHooks(hooks) }

type withNonStrictResolution struct{}

func (withNonStrictResolution) apply(p *Parser) { p.nonStrict = true }

// WithNonStrictResolution enables the backward compatible resolution of RFC 3986 Section 5.2.2:
// a reference scheme equal to the base scheme is ignored, so "http:g" against "http://a/b/c/d;p?q"
// resolves to "http://a/b/c/g" instead of "http:g".
func WithNonStrictResolution() Option { return withNonStrictResolution{} }

// Parser parses, builds and resolves URIs applying the registered scheme hooks.
// A Parser is immutable once created and is safe for concurrent use.
// The zero Parser is not usable, create one with [NewParser].
type Parser struct {
	log       *slog.Logger
	hooks     map[string]Hook
	nonStrict bool
}

var defParser = NewParser()

// NewParser creates a Parser configured by opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{log: log.Noop}
	for _, o := range opts {
		o.apply(p)
	}
	return p
}

// Parse parses and normalizes a URI reference, then applies the hook registered for its scheme.
func (p *Parser) Parse(s string) (*URI, error) {
	c, cerr := parseComponents(s, true)
	if cerr != nil {
		err := &InvalidURIError{Input: s, Err: cerr}
		p.log.Debug("rejected URI", "input", log.StringValue(s), "error", err)
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(p.finalize(Normalize(c)))
}

// Build validates the builder state and produces a URI.
func (p *Parser) Build(b *Builder) (*URI, error) {
	if b == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil builder"))
	}
	c := b.components()
	if cerr := validateComponents(c, offsets{}); cerr != nil {
		err := &InvalidURIError{Input: c.String(), Err: cerr}
		p.log.Debug("rejected URI components", "components", log.FmtValue(c, false), "error", err)
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(p.finalize(Normalize(c)))
}

// finalize applies the scheme hook to normalized components and freezes the result.
func (p *Parser) finalize(c Components) (*URI, error) {
	if h := p.hook(c.Scheme); h != nil {
		hc, err := h.Apply(c.Clone())
		if err != nil {
			p.log.Debug("URI rejected by scheme hook",
				"scheme", c.Scheme.val,
				"uri", log.StringValue(c.String()),
				"error", err,
			)
			return nil, errtrace.Wrap(&SchemePolicyError{Scheme: c.Scheme.val, Err: err})
		}
		if cerr := validateComponents(hc, offsets{}); cerr != nil {
			err := &InvalidURIError{Input: hc.String(), Err: cerr}
			p.log.Debug("scheme hook produced invalid URI", "scheme", c.Scheme.val, "error", err)
			return nil, errtrace.Wrap(err)
		}
		c = Normalize(hc)
	}
	return newURI(c), nil
}

func (p *Parser) hook(scheme Part) Hook {
	if len(p.hooks) == 0 || scheme.IsAbsent() {
		return nil
	}
	return p.hooks[util.LCase(scheme.val)]
}
