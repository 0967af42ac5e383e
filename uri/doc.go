// Package uri implements RFC 3986 URI references as immutable values:
// parsing, component validation, syntax-based normalization and reference resolution.
//
// # Overview
//
// A URI reference has five components:
//
//	  foo://user@example.com:8042/over/there?name=ferret#nose
//	  \_/   \___________________/\_________/ \_________/ \__/
//	   |              |               |           |        |
//	scheme        authority          path       query   fragment
//
// Unlike [net/url.URL], the package keeps every distinction of the generic syntax.
// Each optional component is a [Part] that is either absent, empty or present,
// so "file:///etc" (empty authority) differs from "file:/etc" (no authority),
// and "http://a/?" (empty query) differs from "http://a/" (no query).
//
// # Parsing
//
//	u, err := uri.Parse("HTTP://User@Example.COM:8080/a/./b/../c?q#f")
//	if err != nil {
//	    return err
//	}
//	u.Scheme()          // "http"
//	u.Host()            // "example.com"
//	u.CanonicalString() // "http://User@example.com:8080/a/c?q#f"
//
// [Parse] always returns a normalized [URI]. [ParseComponents] returns the raw,
// validated [Components] for callers that need the original spelling.
// [ParseRelative] accepts relative references only.
//
// # Normalization
//
// [Normalize] applies the scheme-independent rules of RFC 3986 Section 6.2.2:
// case folding of scheme and host, percent-encoding normalization and dot-segment removal.
// Scheme-specific rules, such as default port elision, are applied only by a [Hook]
// registered on a [Parser]. See package uri/scheme for ready-made hooks.
//
// # Resolution
//
//	base := uri.MustParse("http://a/b/c/d;p?q")
//	u, _ := uri.Resolve(base, "../g") // http://a/b/g
//
// # Building
//
// [Builder] is the mutable staging counterpart of [URI]:
//
//	u, err := uri.NewBuilder().
//	    WithScheme(uri.PartOf("https")).
//	    WithHost("example.com").
//	    WithPath("/search").
//	    WithQuery(uri.PartOf("q=go")).
//	    Build()
//
// # Errors
//
// Syntax failures match [ErrInvalidURI] and wrap a [*ComponentError] naming
// the component and the byte offset; its cause matches [ErrGrammarViolation]
// or [ErrMalformedEncoding]. Hook failures are reported as [*SchemePolicyError]
// matching [ErrSchemePolicy] and never [ErrInvalidURI].
//
// # Thread Safety
//
// [URI] values and [Parser] instances are immutable and safe for concurrent use.
// A [Builder] must be confined to a single goroutine.
package uri
