// Package scheme provides scheme-specific [uri.Hook] policies:
// default port elision, host requirement and DNS host name syntax.
//
// Hooks are opt-in and applied only by a [uri.Parser] they are registered with:
//
//	p := uri.NewParser(scheme.Defaults()...)
//	u, err := p.Parse("HTTP://Example.com:80/") // http://example.com/
package scheme

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/grammar"
	"github.com/ghettovoice/rfc3986/uri"
)

const (
	ErrHostRequired Error = "host is required"
	ErrInvalidHost  Error = "host is not a valid domain name"
)

// Error is a policy error.
type Error = errorutil.Error

// DefaultPort returns a hook that removes the port when it is empty or equal to port.
func DefaultPort(port string) uri.Hook {
	return uri.HookFunc(func(c uri.Components) (uri.Components, error) {
		if a := c.Authority; a != nil {
			if v, ok := a.Port.Get(); ok && (v == "" || trimZeros(v) == trimZeros(port)) {
				a.Port = uri.NoPart()
			}
		}
		return c, nil
	})
}

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

// RequireHost returns a hook that rejects URIs without authority or with an empty host.
func RequireHost() uri.Hook {
	return uri.HookFunc(func(c uri.Components) (uri.Components, error) {
		if c.Authority == nil || c.Authority.Host == "" {
			return c, errtrace.Wrap(ErrHostRequired)
		}
		return c, nil
	})
}

// DomainHost returns a hook that checks registered name hosts to be syntactically valid domain names.
// IP literals and IPv4 addresses are accepted as is. No lookups are made.
func DomainHost() uri.Hook {
	return uri.HookFunc(func(c uri.Components) (uri.Components, error) {
		a := c.Authority
		if a == nil || a.Host == "" || a.HostKind() != uri.RegName {
			return c, nil
		}
		host := grammar.Unescape(a.Host)
		if _, ok := dns.IsDomainName(host); !ok {
			return c, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "%q", host))
		}
		return c, nil
	})
}

// Chain returns a hook applying hooks in order, stopping at the first error.
func Chain(hooks ...uri.Hook) uri.Hook {
	return uri.HookFunc(func(c uri.Components) (uri.Components, error) {
		var err error
		for _, h := range hooks {
			if c, err = h.Apply(c); err != nil {
				return c, errtrace.Wrap(err)
			}
		}
		return c, nil
	})
}

// Web returns a hook for hierarchical network schemes: host is required,
// it must be a domain name or an IP address, and defPort is elided.
func Web(defPort string) uri.Hook {
	return Chain(RequireHost(), DomainHost(), DefaultPort(defPort))
}

// HTTP returns the "http" policy.
func HTTP() uri.Hook { return Web("80") }

// HTTPS returns the "https" policy.
func HTTPS() uri.Hook { return Web("443") }

// WS returns the "ws" policy (RFC 6455).
func WS() uri.Hook { return Web("80") }

// WSS returns the "wss" policy (RFC 6455).
func WSS() uri.Hook { return Web("443") }

// FTP returns the "ftp" policy.
func FTP() uri.Hook { return Web("21") }

// Defaults returns parser options registering the built-in policies
// for http, https, ws, wss and ftp.
func Defaults() []uri.Option {
	return []uri.Option{
		uri.WithHooks(map[string]uri.Hook{
			"http":  HTTP(),
			"https": HTTPS(),
			"ws":    WS(),
			"wss":   WSS(),
			"ftp":   FTP(),
		}),
	}
}
