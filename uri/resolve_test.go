package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/rfc3986/uri"
)

// RFC 3986 Section 5.4.
const rfcBase = "http://a/b/c/d;p?q"

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ref  string
		want string
	}{
		// normal examples
		{"g:h", "g:h"},
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"g?y#s", "http://a/b/c/g?y#s"},
		{";x", "http://a/b/c/;x"},
		{"g;x", "http://a/b/c/g;x"},
		{"g;x?y#s", "http://a/b/c/g;x?y#s"},
		{"", "http://a/b/c/d;p?q"},
		{".", "http://a/b/c/"},
		{"./", "http://a/b/c/"},
		{"..", "http://a/b/"},
		{"../", "http://a/b/"},
		{"../g", "http://a/b/g"},
		{"../..", "http://a/"},
		{"../../", "http://a/"},
		{"../../g", "http://a/g"},
		// abnormal examples
		{"../../../g", "http://a/g"},
		{"../../../../g", "http://a/g"},
		{"/./g", "http://a/g"},
		{"/../g", "http://a/g"},
		{"g.", "http://a/b/c/g."},
		{".g", "http://a/b/c/.g"},
		{"g..", "http://a/b/c/g.."},
		{"..g", "http://a/b/c/..g"},
		{"./../g", "http://a/b/g"},
		{"./g/.", "http://a/b/c/g/"},
		{"g/./h", "http://a/b/c/g/h"},
		{"g/../h", "http://a/b/c/h"},
		{"g;x=1/./y", "http://a/b/c/g;x=1/y"},
		{"g;x=1/../y", "http://a/b/c/y"},
		{"g?y/./x", "http://a/b/c/g?y/./x"},
		{"g?y/../x", "http://a/b/c/g?y/../x"},
		{"g#s/./x", "http://a/b/c/g#s/./x"},
		{"g#s/../x", "http://a/b/c/g#s/../x"},
		{"http:g", "http:g"},
		// normalization of the target
		{"G/%7E", "http://a/b/c/G/~"},
		{"HTTP://A/B", "http://a/B"},
	}

	base := uri.MustParse(rfcBase)
	for _, c := range cases {
		t.Run(c.ref, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Resolve(base, c.ref)
			if err != nil {
				t.Fatalf("uri.Resolve(%q, %q) error = %v, want nil", rfcBase, c.ref, err)
			}
			if s := got.CanonicalString(); s != c.want {
				t.Errorf("uri.Resolve(%q, %q) = %q, want %q", rfcBase, c.ref, s, c.want)
			}

			ref, err := uri.Parse(c.ref)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", c.ref, err)
			}
			got2, err := uri.ResolveReference(base, ref)
			if err != nil {
				t.Fatalf("uri.ResolveReference(%q, %q) error = %v, want nil", rfcBase, c.ref, err)
			}
			if diff := cmp.Diff(got2, got); diff != "" {
				t.Errorf("uri.ResolveReference(%q, %q) = %v, want %v\ndiff (-got +want):\n%v", rfcBase, c.ref, got2, got, diff)
			}
		})
	}
}

func TestResolve_BaseWithoutPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base, ref, want string
	}{
		{"http://a", "g", "http://a/g"},
		{"http://a", "", "http://a"},
		{"http://a", "?y", "http://a?y"},
		{"http://a", "../g", "http://a/g"},
		{"s:", "g", "s:g"},
		{"s:a/b", "../../c", "s:../c"},
		{"file:///", "etc", "file:///etc"},
		{"http://a/b?q#f", "", "http://a/b?q"},
	}

	for _, c := range cases {
		t.Run(c.base+" "+c.ref, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Resolve(uri.MustParse(c.base), c.ref)
			if err != nil {
				t.Fatalf("uri.Resolve(%q, %q) error = %v, want nil", c.base, c.ref, err)
			}
			if s := got.CanonicalString(); s != c.want {
				t.Errorf("uri.Resolve(%q, %q) = %q, want %q", c.base, c.ref, s, c.want)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	t.Run("relative base", func(t *testing.T) {
		t.Parallel()

		base := uri.MustParse("/a/b")
		_, err := uri.Resolve(base, "g")
		if diff := cmp.Diff(err, error(uri.ErrNonAbsoluteBase), cmpopts.EquateErrors()); diff != "" {
			t.Errorf("uri.Resolve(%q, %q) error = %v, want %v\ndiff (-got +want):\n%v", base, "g", err, uri.ErrNonAbsoluteBase, diff)
		}
		_, err = uri.ResolveReference(base, uri.MustParse("g"))
		if diff := cmp.Diff(err, error(uri.ErrNonAbsoluteBase), cmpopts.EquateErrors()); diff != "" {
			t.Errorf("uri.ResolveReference(%q, %q) error = %v, want %v\ndiff (-got +want):\n%v", base, "g", err, uri.ErrNonAbsoluteBase, diff)
		}
	})

	t.Run("nil base", func(t *testing.T) {
		t.Parallel()

		_, err := uri.Resolve(nil, "g")
		if diff := cmp.Diff(err, error(uri.ErrNonAbsoluteBase), cmpopts.EquateErrors()); diff != "" {
			t.Errorf("uri.Resolve(nil, %q) error = %v, want %v\ndiff (-got +want):\n%v", "g", err, uri.ErrNonAbsoluteBase, diff)
		}
	})

	t.Run("invalid reference", func(t *testing.T) {
		t.Parallel()

		_, err := uri.Resolve(uri.MustParse(rfcBase), "g h")
		if diff := cmp.Diff(err, error(uri.ErrInvalidURI), cmpopts.EquateErrors()); diff != "" {
			t.Errorf("uri.Resolve(%q, %q) error = %v, want %v\ndiff (-got +want):\n%v", rfcBase, "g h", err, uri.ErrInvalidURI, diff)
		}
		assertComponentErr(t, err, uri.CompPath, 1, uri.ErrGrammarViolation)
	})
}

func TestResolveReference_NilRef(t *testing.T) {
	t.Parallel()

	base := uri.MustParse(rfcBase + "#f")
	got, err := uri.ResolveReference(base, nil)
	if err != nil {
		t.Fatalf("uri.ResolveReference(%q, nil) error = %v, want nil", base, err)
	}
	if s, want := got.CanonicalString(), rfcBase; s != want {
		t.Errorf("uri.ResolveReference(%q, nil) = %q, want %q", base, s, want)
	}
}

func TestParser_Resolve_NonStrict(t *testing.T) {
	t.Parallel()

	p := uri.NewParser(uri.WithNonStrictResolution())
	base := uri.MustParse(rfcBase)

	cases := []struct {
		ref  string
		want string
	}{
		{"http:g", "http://a/b/c/g"},
		{"HTTP:g", "http://a/b/c/g"},
		{"https:g", "https:g"},
		{"http://x/g", "http://x/g"},
	}

	for _, c := range cases {
		t.Run(c.ref, func(t *testing.T) {
			t.Parallel()

			got, err := p.Resolve(base, c.ref)
			if err != nil {
				t.Fatalf("Parser.Resolve(%q, %q) error = %v, want nil", rfcBase, c.ref, err)
			}
			if s := got.CanonicalString(); s != c.want {
				t.Errorf("Parser.Resolve(%q, %q) = %q, want %q", rfcBase, c.ref, s, c.want)
			}
		})
	}
}

func TestResolveComponents(t *testing.T) {
	t.Parallel()

	base, err := uri.ParseComponents("HTTP://A/b/c/d;p?q")
	if err != nil {
		t.Fatalf("uri.ParseComponents() error = %v, want nil", err)
	}
	ref, err := uri.ParseComponents("../%7eg#S")
	if err != nil {
		t.Fatalf("uri.ParseComponents() error = %v, want nil", err)
	}

	got := uri.ResolveComponents(base, ref)
	want := uri.Components{
		Scheme:    uri.PartOf("HTTP"),
		Authority: &uri.Authority{Host: "A"},
		Path:      "/b/%7eg",
		Fragment:  uri.PartOf("S"),
	}
	if !got.Equal(want) {
		t.Errorf("uri.ResolveComponents() = %+v, want %+v", got, want)
	}
	if base.Authority == got.Authority {
		t.Error("uri.ResolveComponents() shares the base authority")
	}
}
