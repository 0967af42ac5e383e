package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/util"
	"github.com/ghettovoice/rfc3986/log"
)

// Resolve resolves the reference ref against base (RFC 3986 Section 5.2).
// The base must have a scheme, otherwise [ErrNonAbsoluteBase] is returned.
func Resolve(base *URI, ref string) (*URI, error) {
	return errtrace.Wrap2(defParser.Resolve(base, ref))
}

// ResolveReference resolves the already parsed reference ref against base.
// Parsed references are normalized, so dot-segments of a relative path are already collapsed
// and "." resolves like the empty reference. Use [Resolve] to resolve the reference as written.
func ResolveReference(base, ref *URI) (*URI, error) {
	return errtrace.Wrap2(defParser.ResolveReference(base, ref))
}

// Resolve resolves the reference ref against base and applies the hook registered for the result scheme.
func (p *Parser) Resolve(base *URI, ref string) (*URI, error) {
	if !base.HasScheme() {
		p.log.Debug("rejected non-absolute base URI", "base", base, "reference", log.StringValue(ref))
		return nil, errtrace.Wrap(ErrNonAbsoluteBase)
	}
	rc, cerr := parseComponents(ref, true)
	if cerr != nil {
		err := &InvalidURIError{Input: ref, Err: cerr}
		p.log.Debug("rejected URI reference", "base", base, "reference", log.StringValue(ref), "error", err)
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(p.resolve(base.comps, rc))
}

// ResolveReference resolves the parsed reference ref against base.
func (p *Parser) ResolveReference(base, ref *URI) (*URI, error) {
	if !base.HasScheme() {
		p.log.Debug("rejected non-absolute base URI", "base", base, "reference", ref)
		return nil, errtrace.Wrap(ErrNonAbsoluteBase)
	}
	if ref == nil {
		ref = &URI{}
	}
	return errtrace.Wrap2(p.resolve(base.comps, ref.comps))
}

func (p *Parser) resolve(base, ref Components) (*URI, error) {
	if p.nonStrict && ref.Scheme.IsDefined() && util.EqFold(ref.Scheme.val, base.Scheme.val) {
		ref.Scheme = NoPart()
	}
	return errtrace.Wrap2(p.finalize(Normalize(ResolveComponents(base, ref))))
}

// ResolveComponents transforms the reference ref into a target URI using base
// as described in RFC 3986 Section 5.2.2 (strict mode).
// Dot-segments are removed from merged paths, the result is not normalized otherwise.
// The base is expected to have a scheme.
func ResolveComponents(base, ref Components) Components {
	var t Components
	switch {
	case ref.Scheme.IsDefined():
		t = ref.Clone()
		t.Path = RemoveDotSegments(ref.Path)
	case ref.Authority != nil:
		t = ref.Clone()
		t.Scheme = base.Scheme
		t.Path = RemoveDotSegments(ref.Path)
	default:
		t.Scheme = base.Scheme
		t.Authority = base.Clone().Authority
		switch {
		case ref.Path == "":
			t.Path = base.Path
			if ref.Query.IsDefined() {
				t.Query = ref.Query
			} else {
				t.Query = base.Query
			}
		case ref.Path[0] == '/':
			t.Path = RemoveDotSegments(ref.Path)
			t.Query = ref.Query
		default:
			t.Path = RemoveDotSegments(mergePaths(base, ref.Path))
			t.Query = ref.Query
		}
	}
	t.Fragment = ref.Fragment
	return t
}

// mergePaths implements RFC 3986 Section 5.2.3.
func mergePaths(base Components, ref string) string {
	if base.Authority != nil && base.Path == "" {
		return "/" + ref
	}
	i := strings.LastIndexByte(base.Path, '/')
	return base.Path[:i+1] + ref
}
