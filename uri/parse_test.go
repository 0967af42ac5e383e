package uri_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/rfc3986/internal/grammar"
	"github.com/ghettovoice/rfc3986/internal/grammar/rfc3986"
	"github.com/ghettovoice/rfc3986/uri"
)

func TestParseComponents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
		want  uri.Components
	}{
		{"empty", "", uri.Components{}},
		{
			"full",
			"foo://user@example.com:8042/over/there?name=ferret#nose",
			uri.Components{
				Scheme: uri.PartOf("foo"),
				Authority: &uri.Authority{
					UserInfo: uri.PartOf("user"),
					Host:     "example.com",
					Port:     uri.PartOf("8042"),
				},
				Path:     "/over/there",
				Query:    uri.PartOf("name=ferret"),
				Fragment: uri.PartOf("nose"),
			},
		},
		{
			"urn",
			"urn:example:animal:ferret:nose",
			uri.Components{Scheme: uri.PartOf("urn"), Path: "example:animal:ferret:nose"},
		},
		{"absent authority", "scheme:path", uri.Components{Scheme: uri.PartOf("scheme"), Path: "path"}},
		{
			"empty authority",
			"scheme:///path",
			uri.Components{Scheme: uri.PartOf("scheme"), Authority: &uri.Authority{}, Path: "/path"},
		},
		{
			"empty authority and path",
			"s://",
			uri.Components{Scheme: uri.PartOf("s"), Authority: &uri.Authority{}},
		},
		{"network-path reference", "//host", uri.Components{Authority: &uri.Authority{Host: "host"}}},
		{"empty query", "?", uri.Components{Query: uri.EmptyPart()}},
		{"empty fragment", "#", uri.Components{Fragment: uri.EmptyPart()}},
		{
			"empty port",
			"http://a:/",
			uri.Components{
				Scheme:    uri.PartOf("http"),
				Authority: &uri.Authority{Host: "a", Port: uri.EmptyPart()},
				Path:      "/",
			},
		},
		{
			"empty userinfo",
			"http://@a",
			uri.Components{
				Scheme:    uri.PartOf("http"),
				Authority: &uri.Authority{UserInfo: uri.EmptyPart(), Host: "a"},
			},
		},
		{
			"userinfo with password",
			"http://u:p@h",
			uri.Components{
				Scheme:    uri.PartOf("http"),
				Authority: &uri.Authority{UserInfo: uri.PartOf("u:p"), Host: "h"},
			},
		},
		{
			"IPv6 with port",
			"ldap://[2001:db8::7]:389/c=GB?objectClass?one",
			uri.Components{
				Scheme:    uri.PartOf("ldap"),
				Authority: &uri.Authority{Host: "[2001:db8::7]", Port: uri.PartOf("389")},
				Path:      "/c=GB",
				Query:     uri.PartOf("objectClass?one"),
			},
		},
		{
			"IPvFuture",
			"http://[v1.fe80::a+en1]/",
			uri.Components{
				Scheme:    uri.PartOf("http"),
				Authority: &uri.Authority{Host: "[v1.fe80::a+en1]"},
				Path:      "/",
			},
		},
		{
			"mailto",
			"mailto:John.Doe@example.com",
			uri.Components{Scheme: uri.PartOf("mailto"), Path: "John.Doe@example.com"},
		},
		{
			"raw case and encoding kept",
			"HTTP://Example.COM/%7e",
			uri.Components{
				Scheme:    uri.PartOf("HTTP"),
				Authority: &uri.Authority{Host: "Example.COM"},
				Path:      "/%7e",
			},
		},
		{"relative path with colon after slash", "a/b:c", uri.Components{Path: "a/b:c"}},
		{
			"query and fragment without path",
			"http://a?q#f",
			uri.Components{
				Scheme:    uri.PartOf("http"),
				Authority: &uri.Authority{Host: "a"},
				Query:     uri.PartOf("q"),
				Fragment:  uri.PartOf("f"),
			},
		},
		{
			"question mark in fragment",
			"http://a#f?x/y",
			uri.Components{
				Scheme:    uri.PartOf("http"),
				Authority: &uri.Authority{Host: "a"},
				Fragment:  uri.PartOf("f?x/y"),
			},
		},
		{
			"bytes input",
			[]byte("tel:+1-816-555-1212"),
			uri.Components{Scheme: uri.PartOf("tel"), Path: "+1-816-555-1212"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var (
				got uri.Components
				err error
			)
			switch in := c.input.(type) {
			case string:
				got, err = uri.ParseComponents(in)
			case []byte:
				got, err = uri.ParseComponents(in)
			}
			if err != nil {
				t.Fatalf("uri.ParseComponents(%q) error = %v, want nil", fmt.Sprintf("%s", c.input), err)
			}
			if !got.Equal(c.want) {
				t.Errorf("uri.ParseComponents(%q) = %+v, want %+v", fmt.Sprintf("%s", c.input), got, c.want)
			}
			if s := got.String(); s != fmt.Sprintf("%s", c.input) {
				t.Errorf("uri.ParseComponents(%q).String() = %q, want input back", fmt.Sprintf("%s", c.input), s)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		comp   string
		offset int
		cause  error
	}{
		{"scheme starts with digit", "1http://x", uri.CompScheme, 0, uri.ErrGrammarViolation},
		{"empty scheme", ":foo", uri.CompScheme, 0, uri.ErrGrammarViolation},
		{"scheme bad char", "ht~tp://x", uri.CompScheme, 2, uri.ErrGrammarViolation},
		{"scheme encoded", "h%74tp://x", uri.CompScheme, 1, uri.ErrGrammarViolation},
		{"userinfo with at", "http://u@s@h/", uri.CompUserInfo, 8, uri.ErrGrammarViolation},
		{"host with space", "http://a b/", uri.CompHost, 8, uri.ErrGrammarViolation},
		{"unterminated IP literal", "http://[::1/", uri.CompHost, 11, uri.ErrGrammarViolation},
		{"garbage after IP literal", "http://[::1]x/", uri.CompHost, 12, uri.ErrGrammarViolation},
		{"bad IPv6", "http://[::g]/", uri.CompHost, 8, uri.ErrGrammarViolation},
		{"IPv6 zone", "http://[fe80::1%25en0]/", uri.CompHost, 8, uri.ErrGrammarViolation},
		{"IPv4 in brackets", "http://[127.0.0.1]/", uri.CompHost, 8, uri.ErrGrammarViolation},
		{"IPvFuture without dot", "http://[v1]/", uri.CompHost, 8, uri.ErrGrammarViolation},
		{"IPvFuture bad char", "http://[v1.a[b]/", uri.CompHost, 12, uri.ErrGrammarViolation},
		{"port with letter", "http://x:8a/", uri.CompPort, 10, uri.ErrGrammarViolation},
		{"path with space", "http://x/a b", uri.CompPath, 10, uri.ErrGrammarViolation},
		{"path malformed encoding", "http://x/%zz", uri.CompPath, 9, uri.ErrMalformedEncoding},
		{"path trailing percent", "http://x/%", uri.CompPath, 9, uri.ErrMalformedEncoding},
		{"query with space", "http://x/?a b", uri.CompQuery, 11, uri.ErrGrammarViolation},
		{"query malformed encoding", "http://x?%4", uri.CompQuery, 9, uri.ErrMalformedEncoding},
		{"fragment with hash", "http://x/#a#b", uri.CompFragment, 11, uri.ErrGrammarViolation},
		{"userinfo malformed encoding", "http://a%2@h", uri.CompUserInfo, 8, uri.ErrMalformedEncoding},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Parse(c.input)
			if got != nil {
				t.Errorf("uri.Parse(%q) = %v, want nil", c.input, got)
			}
			if diff := cmp.Diff(err, error(uri.ErrInvalidURI), cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, uri.ErrInvalidURI, diff)
			}
			assertComponentErr(t, err, c.comp, c.offset, c.cause)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"scheme folded", "HTTP://x", "http://x"},
		{"host folded", "http://User@Example.COM:8080", "http://User@example.com:8080"},
		{"dot segments", "http://a/b/c/./../../g", "http://a/g"},
		{"unreserved decoded", "http://a/%7euser/%2f%41", "http://a/~user/%2FA"},
		{"host unreserved decoded", "http://Ex%41mple.com/", "http://example.com/"},
		{"host triplets upper", "http://%c3%a9cole.fr", "http://%C3%A9cole.fr"},
		{"IPv6 folded", "http://[2001:DB8::1]/", "http://[2001:db8::1]/"},
		{"IPvFuture folded", "http://[V1.ABC]/", "http://[v1.abc]/"},
		{"empty authority", "file:///etc/passwd", "file:///etc/passwd"},
		{"empty port kept", "http://a:/", "http://a:/"},
		{"default port kept", "http://a:80/", "http://a:80/"},
		{"empty query kept", "http://a/?", "http://a/?"},
		{"empty fragment kept", "http://a/#", "http://a/#"},
		{"query and fragment normalized", "s:p?%7e%3d#%7E%3f", "s:p?~%3D#~%3F"},
		{"path without authority dot slash", "s:/.//p", "s:/.//p"},
		{"relative colon path", "./a:b", "./a:b"},
		{"relative dots kept", "../../a", "../../a"},
		{"path taken for authority", "/.//a", "/.//a"},
		{"first segment taken for scheme", "a/../b:c", "./b:c"},
		{"dot directory", ".", "./"},
		{"dot directory after scheme", "x:./", "x:./"},
		{"collapsed directory after scheme", "x:a/..", "x:./"},
		{"rooted dot", "s:/.", "s:/"},
	}

	identity := uri.HookFunc(func(c uri.Components) (uri.Components, error) { return c, nil })
	hooked := uri.NewParser(uri.WithHooks(map[string]uri.Hook{
		"http": identity,
		"file": identity,
		"s":    identity,
		"x":    identity,
	}))

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Parse(c.input)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", c.input, err)
			}
			if s := got.CanonicalString(); s != c.want {
				t.Errorf("uri.Parse(%q).CanonicalString() = %q, want %q", c.input, s, c.want)
			}
			for _, s := range []string{c.input, got.CanonicalString()} {
				if !grammar.Match(rfc3986.Rules().URIReference, s) {
					t.Errorf("%q does not match URI-reference rule", s)
				}
			}

			rebuilt, err := got.Builder().Build()
			if err != nil {
				t.Fatalf("uri.Parse(%q).Builder().Build() error = %v, want nil", c.input, err)
			}
			if !rebuilt.Equal(got) {
				t.Errorf("uri.Parse(%q).Builder().Build() = %v, want %v", c.input, rebuilt, got)
			}

			viaHook, err := hooked.Parse(c.input)
			if err != nil {
				t.Fatalf("Parser.Parse(%q) with pass-through hook error = %v, want nil", c.input, err)
			}
			if !viaHook.Equal(got) {
				t.Errorf("Parser.Parse(%q) with pass-through hook = %v, want %v", c.input, viaHook, got)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"foo://user@example.com:8042/over/there?name=ferret#nose",
		"HTTP://EXAMPLE.com/A/%7e/./b/../%2f?Q=%41#%46",
		"file:///etc/passwd",
		"s:/.//p",
		"s:a/../..//b",
		"./a:b",
		"a/../../b",
		"//h/../p",
		"http://[V1.ABC]:/?#",
		"mailto:John.Doe@example.com",
		"?q",
		"#f",
		"a/..",
		"..",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			u1, err := uri.Parse(in)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", in, err)
			}
			u2, err := uri.Parse(u1.CanonicalString())
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", u1.CanonicalString(), err)
			}
			if u1.CanonicalString() != u2.CanonicalString() {
				t.Errorf("canonical string is not stable: %q -> %q", u1.CanonicalString(), u2.CanonicalString())
			}
			if diff := cmp.Diff(u2, u1); diff != "" {
				t.Errorf("reparsed URI differs: %+v, want %+v\ndiff (-got +want):\n%v", u2, u1, diff)
			}
			if n := uri.Normalize(u1.Components()); !n.Equal(u1.Components()) {
				t.Errorf("uri.Normalize(%+v) = %+v, not idempotent", u1.Components(), n)
			}
		})
	}
}

func TestParseRelative(t *testing.T) {
	t.Parallel()

	t.Run("colon in first segment", func(t *testing.T) {
		t.Parallel()

		_, err := uri.ParseRelative("a:b/c")
		assertComponentErr(t, err, uri.CompPath, 1, uri.ErrGrammarViolation)

		u, err := uri.Parse("a:b/c")
		if err != nil {
			t.Fatalf("uri.Parse(%q) error = %v, want nil", "a:b/c", err)
		}
		if got, want := u.Scheme(), "a"; got != want {
			t.Errorf("uri.Parse(%q).Scheme() = %q, want %q", "a:b/c", got, want)
		}
	})

	t.Run("relative references", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{"", "g", "./g:h", "../g", "//g/h", "?y", "#s", "/a/b"} {
			u, err := uri.ParseRelative(in)
			if err != nil {
				t.Errorf("uri.ParseRelative(%q) error = %v, want nil", in, err)
				continue
			}
			if u.HasScheme() {
				t.Errorf("uri.ParseRelative(%q).HasScheme() = true, want false", in)
			}
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("uri.MustParse(\"1:x\") did not panic")
		}
	}()
	uri.MustParse("1:x")
}

func BenchmarkParse(b *testing.B) {
	const in = "HTTP://User@Example.COM:8080/a/./b/../c/%7e?q=%41#frag"

	b.ResetTimer()
	for b.Loop() {
		if _, err := uri.Parse(in); err != nil {
			b.Fatalf("uri.Parse(%q) error = %v", in, err)
		}
	}
}
