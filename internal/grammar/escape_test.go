package grammar_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ghettovoice/rfc3986/internal/grammar"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no unescape", "abc%ax%", "abc%ax%"},
		{"unescape all", "abc%E4%b8%96", "abc世"},
		{"trailing triplet", "a%41", "aA"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unescape(c.str), c.want; got != want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		want    []byte
		wantOff int
	}{
		{"empty", "", []byte{}, -1},
		{"plain", "abc", []byte("abc"), -1},
		{"triplets", "%41%2f%00", []byte{'A', '/', 0}, -1},
		{"bad hex", "ab%zz", nil, 2},
		{"truncated", "ab%4", nil, 2},
		{"lone percent", "%", nil, 0},
		{"second is bad", "%41%4g", nil, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.Decode(c.str)
			if c.wantOff < 0 {
				if err != nil {
					t.Fatalf("grammar.Decode(%q) error = %v, want nil", c.str, err)
				}
				if !bytes.Equal(got, c.want) {
					t.Errorf("grammar.Decode(%q) = %q, want %q", c.str, got, c.want)
				}
				return
			}

			if !errors.Is(err, grammar.ErrMalformedEncoding) {
				t.Fatalf("grammar.Decode(%q) error = %v, want %v", c.str, err, grammar.ErrMalformedEncoding)
			}
			var encErr *grammar.EncodingError
			if !errors.As(err, &encErr) {
				t.Fatalf("grammar.Decode(%q) error = %T, want *grammar.EncodingError", c.str, err)
			}
			if encErr.Offset != c.wantOff {
				t.Errorf("grammar.Decode(%q) error offset = %d, want %d", c.str, encErr.Offset, c.wantOff)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      []byte
		allowed func(byte) bool
		want    string
	}{
		{"empty", nil, nil, ""},
		{"unreserved", []byte("aZ0-._~"), nil, "aZ0-._~"},
		{"reserved", []byte("a/b?c"), nil, "a%2Fb%3Fc"},
		{"path allowed", []byte("a/b?c"), grammar.IsPathChar, "a/b%3Fc"},
		{"percent always", []byte("100%"), func(byte) bool { return true }, "100%25"},
		{"high bytes", []byte{0xe4, 0xb8, 0x96}, nil, "%E4%B8%96"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Encode(c.in, c.allowed), c.want; got != want {
				t.Errorf("grammar.Encode(%q) = %q, want %q", c.in, got, want)
			}
		})
	}
}

func TestNormalizeEscapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no triplets", "abc/def", "abc/def"},
		{"unreserved decoded", "%7Euser%2d%41", "~user-A"},
		{"reserved kept upper", "a%2fb%3a", "a%2Fb%3A"},
		{"mixed", "%61%2F%e4", "a%2F%E4"},
		{"malformed kept", "a%zz", "a%zz"},
		{"already normal", "a%2Fb", "a%2Fb"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.NormalizeEscapes(c.str)
			if got != c.want {
				t.Errorf("grammar.NormalizeEscapes(%q) = %q, want %q", c.str, got, c.want)
			}
			if again := grammar.NormalizeEscapes(got); again != got {
				t.Errorf("grammar.NormalizeEscapes(%q) = %q, not idempotent", got, again)
			}
		})
	}
}

func BenchmarkNormalizeEscapes(b *testing.B) {
	cases := []struct {
		name    string
		in, out any
	}{
		{"string", "%7Ea%2fb%E4", "~a%2Fb%E4"},
		{"bytes", []byte("%7Ea%2fb%E4"), []byte("~a%2Fb%E4")},
	}

	b.ResetTimer()
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				switch in := c.in.(type) {
				case string:
					want, _ := c.out.(string)
					if got := grammar.NormalizeEscapes(in); got != want {
						b.Errorf("grammar.NormalizeEscapes(%q) = %q, want %q", in, got, want)
					}
				case []byte:
					want, _ := c.out.([]byte)
					if got := grammar.NormalizeEscapes(in); !bytes.Equal(got, want) {
						b.Errorf("grammar.NormalizeEscapes(%q) = %q, want %q", in, got, want)
					}
				}
			}
		})
	}
}
