package uri

import (
	"strings"

	"github.com/ghettovoice/rfc3986/internal/grammar"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// Normalize returns the syntax-based normal form of c (RFC 3986 Section 6.2.2):
//   - scheme and host are lower-cased;
//   - percent-encoded unreserved characters are decoded and the hex digits
//     of the remaining triplets are upper-cased in every component;
//   - dot-segments are removed from the path.
//
// A path that would be taken for an authority or a scheme after dot-segment removal
// is prefixed with "/." or "./" (RFC 3986 Sections 4.2 and 5.2.4), so the result
// satisfies the same component rules as the input.
//
// Scheme-specific normalization, such as default port elision, is left to [Hook].
// Normalize expects valid components and never fails.
func Normalize(c Components) Components {
	c = c.Clone()
	c.Scheme = c.Scheme.apply(util.LCase[string])
	if a := c.Authority; a != nil {
		a.UserInfo = a.UserInfo.apply(grammar.NormalizeEscapes[string])
		a.Host = util.LCaseASCII(grammar.NormalizeEscapes(a.Host))
	}
	c.Path = disambiguatePath(c, RemoveDotSegments(grammar.NormalizeEscapes(c.Path)))
	c.Query = c.Query.apply(grammar.NormalizeEscapes[string])
	c.Fragment = c.Fragment.apply(grammar.NormalizeEscapes[string])
	return c
}

func disambiguatePath(c Components, path string) string {
	if c.Authority != nil {
		return path
	}
	switch {
	case strings.HasPrefix(path, "//"):
		return "/." + path
	case c.Scheme.IsAbsent() && firstSegmentHasColon(path):
		return "./" + path
	}
	return path
}

func firstSegmentHasColon(path string) bool {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return strings.IndexByte(path, ':') >= 0
}

// RemoveDotSegments removes "." and ".." segments from path (RFC 3986 Section 5.2.4).
//
// Segments are processed left to right with an output stack.
// A ".." pops the last output segment. When there is nothing to pop,
// it is dropped for a rooted path and kept for a rootless path, so
// "/../a" becomes "/a" and "a/../../b" becomes "../b".
// A trailing "/" is kept when the path ends with a dot-segment,
// a rootless path reduced to nothing becomes "./", so "a/.." and "." stay directory references.
func RemoveDotSegments(path string) string {
	if path == "" || strings.IndexByte(path, '.') < 0 {
		return path
	}

	rooted := path[0] == '/'
	if rooted {
		path = path[1:]
	}

	segs := strings.Split(path, "/")
	// the empty segment after a trailing "/" only marks a directory.
	var trailing bool
	if n := len(segs); n > 1 && segs[n-1] == "" {
		segs, trailing = segs[:n-1], true
	}

	out := make([]string, 0, len(segs))
	var dirRef bool
	for _, seg := range segs {
		switch seg {
		case ".":
			dirRef = true
		case "..":
			dirRef = true
			switch {
			case len(out) > 0 && out[len(out)-1] != "..":
				out = out[:len(out)-1]
			case !rooted:
				out = append(out, "..")
			}
		default:
			dirRef = false
			out = append(out, seg)
		}
	}
	dirRef = dirRef || trailing

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	switch {
	case rooted:
		sb.WriteByte('/')
	case len(out) > 0 && out[0] == "":
		// a leading empty segment would make the rootless path rooted.
		sb.WriteString("./")
	}
	for i, seg := range out {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(seg)
	}
	switch {
	case dirRef && len(out) > 0:
		sb.WriteByte('/')
	case dirRef && !rooted:
		sb.WriteString("./")
	}
	return sb.String()
}
